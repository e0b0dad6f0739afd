package region

import "strings"

// 法语城市名常见变音字符的折叠表
var diacriticFold = map[rune]rune{
	'à': 'a', 'â': 'a', 'ä': 'a', 'á': 'a', 'ã': 'a',
	'ç': 'c',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'î': 'i', 'ï': 'i', 'í': 'i',
	'ô': 'o', 'ö': 'o', 'ó': 'o', 'õ': 'o',
	'û': 'u', 'ü': 'u', 'ù': 'u', 'ú': 'u',
	'ÿ': 'y',
	'œ': 'o', 'æ': 'a',
}

// Normalize 归一化城市 / 国家名：小写、折叠变音符、连字符转空格、压缩空白。
// 比较永远在归一化后的字符串上进行。
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if folded, ok := diacriticFold[r]; ok {
			r = folded
		}
		if r == '-' || r == '\'' {
			r = ' '
		}
		sb.WriteRune(r)
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// LooseContains 归一化后双向包含，容忍 "paris" 与 "paris 15e" 这类差异
func LooseContains(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
