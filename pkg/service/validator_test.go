package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommentRows_Valid(t *testing.T) {
	rows, err := ParseCommentRows(`[{"video_id":"a"},{"video_id":"b"}]`, "x_COMMENTS.txt")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0]["video_id"])
}

func TestParseCommentRows_EmptyArray(t *testing.T) {
	rows, err := ParseCommentRows(`[]`, "x_COMMENTS.txt")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCommentRows_ParseError(t *testing.T) {
	_, err := ParseCommentRows(`[{"video_id":`, "x_COMMENTS.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON 解析失败")
}

func TestParseCommentRows_NotAnArray(t *testing.T) {
	_, err := ParseCommentRows(`{"video_id":"a"}`, "x_COMMENTS.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不是 JSON 数组")
}

func TestParseCommentRows_ElementNotObject(t *testing.T) {
	// 校验是整个文件全有或全无：一个坏元素就整体无效
	_, err := ParseCommentRows(`[{"video_id":"a"}, 42]`, "x_COMMENTS.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不是对象")
}
