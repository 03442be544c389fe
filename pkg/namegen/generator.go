package namegen

import "strings"

// Generator produces batches of candidate names from a WordBank.
type Generator struct {
	bank   *WordBank
	picker Picker
}

// New returns a Generator. A nil bank selects DefaultWordBank and a nil picker
// selects DefaultPicker.
func New(bank *WordBank, picker Picker) *Generator {
	if bank == nil {
		bank = DefaultWordBank()
	}
	if picker == nil {
		picker = DefaultPicker
	}
	return &Generator{bank: bank, picker: picker}
}

// Bank returns the vocabulary the generator draws from.
func (g *Generator) Bank() *WordBank {
	return g.bank
}

// Generate returns exactly BatchSize non-empty candidates for req. An invalid
// Style is treated as DefaultStyle.
func (g *Generator) Generate(req Request) []string {
	style := req.Style
	if !style.Valid() {
		style = DefaultStyle
	}

	pools := g.pools(style, req)
	names := make([]string, 0, BatchSize)
	for range BatchSize {
		name := pools.combine(g.picker)
		if strings.TrimSpace(name) == "" {
			name = g.fallback()
		}
		names = append(names, name)
	}
	return names
}

// fallback joins a random prefix with a random suffix.
func (g *Generator) fallback() string {
	return g.picker.Pick(g.bank.Prefixes) + g.picker.Pick(g.bank.Suffixes)
}

// template holds the two word pools a style draws from and how the picked
// words are joined. required marks a first pool whose empty pick voids the
// whole name instead of leaving a dangling separator.
type template struct {
	first, second []string
	sep           string
	required      bool
}

func (t template) combine(p Picker) string {
	a := p.Pick(t.first)
	if a == "" && t.required {
		return ""
	}
	return a + t.sep + p.Pick(t.second)
}

// pools resolves the request once and builds the word pools for style, so the
// per-candidate loop only picks.
func (g *Generator) pools(style Style, req Request) template {
	b := g.bank
	industry := b.IndustryWords(req.Industry)
	theme := b.ThemeWords(req.Theme)
	attributes := ParseAttributes(req.Attributes)

	switch style {
	case Modern:
		return template{
			first:  concat(b.Prefixes, industry),
			second: concat(b.Suffixes, theme),
		}
	case Quirky:
		return template{
			first:  concat(attributes, b.QuirkyAdjectives),
			second: concat(industry, theme, b.QuirkyNouns),
			sep:    " ",
		}
	case Professional:
		return template{
			first:    industry,
			second:   concat(theme, attributes, b.BusinessNouns),
			sep:      " ",
			required: true,
		}
	case Creative:
		return template{
			first:  b.CreativeVerbs,
			second: concat(industry, theme, attributes),
		}
	default:
		panic("namegen: unhandled style " + style.String())
	}
}

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
