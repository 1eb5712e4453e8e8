package utils

import (
	"strings"
	"unicode/utf8"
)

// DebugCharWidth / DebugLineHeight 是 ebitenutil.DebugPrint 位图字体的字符宽度和行高
const (
	DebugCharWidth  = 6
	DebugLineHeight = 16
)

// WrapText 将文本按最大列数自动换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大列数时强制断行
//   - 原文中的换行符保留
func WrapText(textStr string, maxCols int) []string {
	if textStr == "" || maxCols <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxCols)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxCols int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		// 超长单词先切块
		for utf8.RuneCountInString(word) > maxCols {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:maxCols]))
			word = string(runes[maxCols:])
		}

		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= maxCols:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// MeasureDebugText 返回调试字体下文本的像素宽度（按最长一行计）
func MeasureDebugText(textStr string) float64 {
	longest := 0
	for _, line := range strings.Split(textStr, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return float64(longest * DebugCharWidth)
}
