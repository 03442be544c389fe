package namegen

import (
	"fmt"
	"strings"
)

// BatchSize is the number of candidates produced by a single Generate call.
const BatchSize = 8

// Style selects the template used to combine words into a name.
type Style uint8

// Supported naming styles.
const (
	Modern Style = iota
	Quirky
	Professional
	Creative
)

// DefaultStyle is used when a request does not name a style.
const DefaultStyle = Modern

var styleNames = [...]string{
	Modern:       "modern",
	Quirky:       "quirky",
	Professional: "professional",
	Creative:     "creative",
}

var styleLabels = [...]string{
	Modern:       "Modern & Sleek",
	Quirky:       "Fun & Quirky",
	Professional: "Professional",
	Creative:     "Creative & Artistic",
}

// Styles returns all supported styles in display order.
func Styles() []Style {
	return []Style{Modern, Quirky, Professional, Creative}
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	return int(s) < len(styleNames)
}

// String returns the wire name of the style ("modern", "quirky", ...).
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
	return styleNames[s]
}

// Label returns the human-readable label shown in the style selector.
func (s Style) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return styleLabels[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStyle converts a style name into a Style. Matching is case-insensitive
// and ignores surrounding whitespace. An empty value yields DefaultStyle.
func ParseStyle(v string) (Style, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return DefaultStyle, nil
	}
	for i, name := range styleNames {
		if name == v {
			return Style(i), nil
		}
	}
	return DefaultStyle, fmt.Errorf("%w: %q", ErrUnknownStyle, v)
}

// Request describes the project a batch of names is generated for.
// Zero value is valid and produces a modern batch from the fallback pools.
type Request struct {
	Industry   string
	Theme      string
	Attributes string // comma-separated
	Style      Style
}
