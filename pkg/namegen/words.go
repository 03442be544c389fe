package namegen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed wordbank.yaml
var defaultWordBankYAML []byte

// Keyword maps a lowercase keyword to the words it contributes when matched.
type Keyword struct {
	Key   string   `yaml:"key"`
	Words []string `yaml:"words,flow"`
}

// WordBank is the vocabulary used by the resolvers and the generator.
// A bank must not be modified after it has been handed to a Generator.
type WordBank struct {
	Industries []Keyword `yaml:"industries"`
	Themes     []Keyword `yaml:"themes"`

	// Prefixes and Suffixes form the fallback pool and feed modern names.
	Prefixes []string `yaml:"prefixes,flow"`
	Suffixes []string `yaml:"suffixes,flow"`

	QuirkyAdjectives []string `yaml:"quirky_adjectives,flow"`
	QuirkyNouns      []string `yaml:"quirky_nouns,flow"`
	BusinessNouns    []string `yaml:"business_nouns,flow"`
	CreativeVerbs    []string `yaml:"creative_verbs,flow"`
}

var defaultWordBank = sync.OnceValue(func() *WordBank {
	bank, err := LoadWordBank(bytes.NewReader(defaultWordBankYAML))
	if err != nil {
		panic(fmt.Sprintf("namegen: embedded word bank: %v", err))
	}
	return bank
})

// DefaultWordBank returns the built-in vocabulary. It is parsed on first use
// and the same instance is returned on every call; treat it as read-only.
func DefaultWordBank() *WordBank {
	return defaultWordBank()
}

// LoadWordBank decodes a YAML word bank from r and validates it.
func LoadWordBank(r io.Reader) (*WordBank, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bank WordBank
	if err := dec.Decode(&bank); err != nil {
		return nil, errors.Join(ErrLoadWordBank, err)
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// LoadWordBankFile reads a YAML word bank from path.
func LoadWordBankFile(path string) (*WordBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoadWordBank, err)
	}
	defer f.Close()

	return LoadWordBank(f)
}

// Encode writes the bank as YAML.
func (b *WordBank) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the invariants the generator relies on: every fixed pool is
// non-empty, keywords are non-empty lowercase strings without duplicates, and
// no list contains a blank word.
func (b *WordBank) Validate() error {
	var errs []error

	pools := []struct {
		name  string
		words []string
	}{
		{"prefixes", b.Prefixes},
		{"suffixes", b.Suffixes},
		{"quirky_adjectives", b.QuirkyAdjectives},
		{"quirky_nouns", b.QuirkyNouns},
		{"business_nouns", b.BusinessNouns},
		{"creative_verbs", b.CreativeVerbs},
	}
	for _, p := range pools {
		if len(p.words) == 0 {
			errs = append(errs, fmt.Errorf("%s: must not be empty", p.name))
			continue
		}
		if err := checkWords(p.words); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.name, err))
		}
	}

	errs = append(errs, checkKeywords("industries", b.Industries)...)
	errs = append(errs, checkKeywords("themes", b.Themes)...)

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidWordBank}, errs...)...)
	}
	return nil
}

func checkKeywords(table string, keywords []Keyword) []error {
	var errs []error
	seen := make(map[string]struct{}, len(keywords))
	for i, kw := range keywords {
		switch {
		case strings.TrimSpace(kw.Key) == "":
			errs = append(errs, fmt.Errorf("%s[%d]: empty key", table, i))
			continue
		case kw.Key != strings.ToLower(kw.Key) || strings.ContainsFunc(kw.Key, isSpace):
			errs = append(errs, fmt.Errorf("%s[%d]: key %q must be a single lowercase token", table, i, kw.Key))
		}
		if _, dup := seen[kw.Key]; dup {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate key %q", table, i, kw.Key))
		}
		seen[kw.Key] = struct{}{}

		if len(kw.Words) == 0 {
			errs = append(errs, fmt.Errorf("%s[%d]: key %q has no words", table, i, kw.Key))
			continue
		}
		if err := checkWords(kw.Words); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", table, i, err))
		}
	}
	return errs
}

func checkWords(words []string) error {
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("blank word at index %d", i)
		}
	}
	return nil
}
