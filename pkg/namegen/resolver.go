package namegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndustryWords resolves free-text industry input into words using the
// industry keyword table. See resolve for the matching rules.
func (b *WordBank) IndustryWords(industry string) []string {
	return resolve(b.Industries, industry)
}

// ThemeWords resolves free-text theme input into words using the theme
// keyword table. See resolve for the matching rules.
func (b *WordBank) ThemeWords(theme string) []string {
	return resolve(b.Themes, theme)
}

// resolve lowercases input, splits it on whitespace and, for every token,
// appends the words of each keyword contained in that token. Keywords are
// visited in table order and repeated matches are kept. When no token matches
// any keyword the capitalised tokens are returned instead.
func resolve(table []Keyword, input string) []string {
	tokens := strings.Fields(strings.ToLower(input))
	if len(tokens) == 0 {
		return []string{}
	}

	var matched []string
	for _, token := range tokens {
		for _, kw := range table {
			if strings.Contains(token, kw.Key) {
				matched = append(matched, kw.Words...)
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}

	capitalised := make([]string, len(tokens))
	for i, token := range tokens {
		capitalised[i] = capitalise(token)
	}
	return capitalised
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
