package service

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ParseCommentRows 严格解析清洗后的文本。
// 成功条件：顶层是 JSON 数组，且每个元素都是对象。
// 任何结构性问题都整体判为无效并返回原因，不会只接受文件的一部分；
// 记录级的容错（缺字段、类型不对）由 Normalize 处理
func ParseCommentRows(cleaned string, filename string) ([]map[string]interface{}, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, errors.Wrapf(err, "JSON 解析失败: %s", filename)
	}

	arr, ok := parsed.([]interface{})
	if !ok {
		return nil, errors.Errorf("%s 顶层不是 JSON 数组", filename)
	}

	rows := make([]map[string]interface{}, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("%s 第 %d 个元素不是对象", filename, i)
		}
		rows = append(rows, obj)
	}
	return rows, nil
}
