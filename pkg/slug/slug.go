package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength  int
	separator  string
	lowercase  bool
	splitCamel bool
	replacer   *strings.Replacer
}

// MaxLength truncates the slug to at most n bytes, cutting at a word
// boundary when one exists. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// SplitCamel treats lower-to-upper case transitions as word boundaries.
func SplitCamel(enabled bool) Option {
	return func(c *config) { c.splitCamel = enabled }
}

// CustomReplace applies literal replacements before slugification, for
// example {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		pairs := make([]string, 0, len(replacements)*2)
		for k, v := range replacements {
			pairs = append(pairs, k, " "+v+" ")
		}
		c.replacer = strings.NewReplacer(pairs...)
	}
}

// Make returns the slug for s. The result contains only ASCII letters,
// digits and the separator, never starts or ends with the separator, and may
// be empty.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.replacer != nil {
		s = cfg.replacer.Replace(s)
	}
	s = fold(s)

	words := split(s, cfg.splitCamel)
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		if cfg.lowercase {
			w = strings.ToLower(w)
		}
		n := len(w)
		if b.Len() > 0 {
			n += len(cfg.separator)
		}
		if cfg.maxLength > 0 && b.Len()+n > cfg.maxLength {
			if b.Len() == 0 {
				b.WriteString(w[:cfg.maxLength])
			}
			break
		}
		if b.Len() > 0 {
			b.WriteString(cfg.separator)
		}
		b.WriteString(w)
	}
	return b.String()
}

// fold strips combining marks. A transformer is stateful, so each call
// builds its own chain.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func split(s string, camel bool) []string {
	var (
		words []string
		cur   []byte
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		if !isAlnum(r) {
			flush()
			prev = 0
			continue
		}
		if camel && isUpper(r) && (isLower(prev) || isDigit(prev)) {
			flush()
		}
		cur = append(cur, byte(r))
		prev = r
	}
	flush()
	return words
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlnum(r rune) bool { return isUpper(r) || isLower(r) || isDigit(r) }
