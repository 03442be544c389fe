package namegen

import "strings"

// ParseAttributes splits a comma-separated attribute list, trims every piece
// and drops the empty ones. Order is preserved; the result is never nil.
func ParseAttributes(attributes string) []string {
	words := []string{}
	for piece := range strings.SplitSeq(attributes, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			words = append(words, piece)
		}
	}
	return words
}
