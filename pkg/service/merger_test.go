package service

import (
	"testing"

	"comments-ingest/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(videoID, quote string, likes int) model.CommentRecord {
	return model.CommentRecord{VideoID: videoID, Quote: quote, CommentLikes: likes}
}

func TestMergeDedup_KeepFirst(t *testing.T) {
	existing := []model.CommentRecord{rec("v1", "q1", 5)}
	// 同一个身份键但点赞数变了：首次入库的值保留
	fresh := []model.CommentRecord{rec("v1", "q1", 99), rec("v2", "q2", 1)}

	merged, added, duplicates := MergeDedup(existing, fresh)
	require.Len(t, merged, 2)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, duplicates)
	assert.Equal(t, 5, merged[0].CommentLikes)
}

func TestMergeDedup_OrderPreserved(t *testing.T) {
	existing := []model.CommentRecord{rec("v1", "q1", 0), rec("v2", "q2", 0)}
	fresh := []model.CommentRecord{rec("v3", "q3", 0), rec("v4", "q4", 0)}

	merged, added, duplicates := MergeDedup(existing, fresh)
	require.Len(t, merged, 4)
	assert.Equal(t, 2, added)
	assert.Zero(t, duplicates)
	for i, want := range []string{"v1", "v2", "v3", "v4"} {
		assert.Equal(t, want, merged[i].VideoID)
	}
}

func TestMergeDedup_DuplicateWithinFresh(t *testing.T) {
	fresh := []model.CommentRecord{rec("v1", "q1", 0), rec("v1", "q1", 3)}

	merged, added, duplicates := MergeDedup(nil, fresh)
	require.Len(t, merged, 1)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, duplicates)
	assert.Zero(t, merged[0].CommentLikes)
}

func TestMergeDedup_SameQuoteDifferentVideo(t *testing.T) {
	// 身份键是 (video_id, quote) 组合，只有 quote 相同不算重复
	fresh := []model.CommentRecord{rec("v1", "same", 0), rec("v2", "same", 0)}

	merged, added, duplicates := MergeDedup(nil, fresh)
	assert.Len(t, merged, 2)
	assert.Equal(t, 2, added)
	assert.Zero(t, duplicates)
}

func TestMergeDedup_Empty(t *testing.T) {
	merged, added, duplicates := MergeDedup(nil, nil)
	assert.Empty(t, merged)
	assert.Zero(t, added)
	assert.Zero(t, duplicates)
}
