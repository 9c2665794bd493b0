package service

import (
	"html"
	"regexp"
	"strings"
)

var (
	// 代码围栏行：``` 或 ```json 独占一行
	codeFenceRegex = regexp.MustCompile("(?im)^```[a-z]*[ \t]*\r?\n?")
	// } 或 ] 前的多余逗号
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)
	// 控制字符（保留 \t \n \r）
	controlCharRegex = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
)

// CleanJSONText 清洗 LLM 输出里常见的 JSON 问题：
//  1. 去掉 ```json ... ``` 代码围栏
//  2. 删除 } 或 ] 前的多余逗号
//  3. 去掉控制字符
//  4. 解码 HTML 实体（如 &amp; 转为 &）
//  5. 丢弃非法 UTF-8 字节
//
// 清洗只做尽力而为的修复，任何输入都不会报错，坏文本原样往后传
func CleanJSONText(raw string) string {
	text := codeFenceRegex.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)
	text = trailingCommaRegex.ReplaceAllString(text, "$1")
	text = controlCharRegex.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.ToValidUTF8(text, "")
}
