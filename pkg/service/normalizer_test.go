package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FullRecord(t *testing.T) {
	rows := []map[string]interface{}{{
		"video_id":      "v1",
		"video_title":   "标题",
		"channel_title": "频道",
		"publish_date":  "2024-03-01",
		"topic":         "battery",
		"quote":         "great range",
		"comment_likes": float64(12), // json 数字解析出来是 float64
	}}

	records, skipped := NewRecordNormalizer().Normalize(rows, "a_COMMENTS.txt")
	require.Len(t, records, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "v1", records[0].VideoID)
	assert.Equal(t, 12, records[0].CommentLikes)
}

func TestNormalize_MissingFieldsDefault(t *testing.T) {
	rows := []map[string]interface{}{{
		"video_id": "v1",
		"quote":    "q",
	}}

	records, skipped := NewRecordNormalizer().Normalize(rows, "a_COMMENTS.txt")
	require.Len(t, records, 1)
	assert.Zero(t, skipped)
	assert.Empty(t, records[0].VideoTitle)
	assert.Empty(t, records[0].ChannelTitle)
	assert.Empty(t, records[0].PublishDate)
	assert.Empty(t, records[0].Topic)
	assert.Zero(t, records[0].CommentLikes)
}

func TestNormalize_LikesCoercion(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
	}{
		{"28", 28},
		{"n/a", 0},
		{nil, 0},
		{float64(7), 7},
		{-3, 0},
	}
	for _, tc := range cases {
		rows := []map[string]interface{}{{
			"video_id":      "v1",
			"quote":         "q",
			"comment_likes": tc.in,
		}}
		records, _ := NewRecordNormalizer().Normalize(rows, "a_COMMENTS.txt")
		require.Len(t, records, 1)
		assert.Equal(t, tc.want, records[0].CommentLikes, "comment_likes=%v", tc.in)
	}
}

func TestNormalize_DropMissingIdentity(t *testing.T) {
	rows := []map[string]interface{}{
		{"video_title": "t", "quote": "q"}, // 缺 video_id
		{"video_id": "v1"},                 // 缺 quote
		{"video_id": "v1", "quote": "q"},
	}

	records, skipped := NewRecordNormalizer().Normalize(rows, "a_COMMENTS.txt")
	require.Len(t, records, 1)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "v1", records[0].VideoID)
}
