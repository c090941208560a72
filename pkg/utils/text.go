package utils

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ==================== 文本提取 ====================

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ExtractText 从 HTML 中提取纯文本
// 使用 tokenizer 遍历，跳过 script/style 内容
func ExtractText(htmlStr string) string {
	z := html.NewTokenizer(strings.NewReader(htmlStr))

	var sb strings.Builder
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// 输入结束（或残缺标记），返回已收集的文本
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkippableTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkippableTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.WriteString(string(z.Text()))
				sb.WriteByte(' ')
			}
		}
	}
}

func isSkippableTag(name string) bool {
	return name == "script" || name == "style"
}

// StripTags 用正则去除所有标签
// 保留原版“把 HTML 当扁平文本”的行为，供打分等路径使用
func StripTags(htmlStr string) string {
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(htmlStr, " ")), " ")
}

// ==================== 统计 ====================

// CountWords 统计单词数 (按空白切分)
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountOccurrences 统计关键词出现次数 (不区分大小写)
func CountOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
}

// ==================== 截断 ====================

// TruncateRunes 按字符数截断 (不按字节，土耳其语字符安全)
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ==================== Slug ====================

// 土耳其语字符到 ASCII 的固定转换表
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "C",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ş", "s", "Ş", "S",
	"ü", "u", "Ü", "U",
)

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Transliterate 转写土耳其语重音字符
func Transliterate(s string) string {
	return turkishReplacer.Replace(s)
}

// Slugify 生成 URL/文件名安全的 slug
// 例: "Schengen Vizesi" -> "schengen-vizesi"
func Slugify(s string) string {
	s = strings.ToLower(Transliterate(s))
	s = nonSlugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
