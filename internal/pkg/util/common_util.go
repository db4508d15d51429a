package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML 去除富文本字段中的标签，只保留纯文本
func StripHTML(s string) string {
	if s == "" || !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// ParseTruthy 解析宽松的布尔参数，接受 1/true/yes/y
func ParseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}
