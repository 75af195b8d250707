package parser

import "unicode"

// ToGoName конвертирует snake_case и lowerCamel в CamelCase
func ToGoName(s string) string {
	b := []rune(s)
	out := make([]rune, 0, len(b))
	capNext := true
	for _, r := range b {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			capNext = true
			continue
		}
		if capNext {
			r = unicode.ToUpper(r)
			capNext = false
		}
		out = append(out, r)
	}
	return string(out)
}
