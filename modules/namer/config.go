package namer

import (
	"time"

	"github.com/dmitrymomot/ideabloom/pkg/namegen"
	"github.com/dmitrymomot/ideabloom/pkg/ratelimiter"
)

// Config holds the name generator settings.
type Config struct {
	// UIDelay is waited before answering browser requests, so the loading
	// indicator is visible. API requests are answered immediately.
	UIDelay time.Duration `env:"NAMEGEN_UI_DELAY" envDefault:"1500ms"`
	// WordBankPath points to a YAML word bank. Empty selects the built-in one.
	WordBankPath string `env:"NAMEGEN_WORDBANK_PATH"`

	RateCapacity int           `env:"NAMEGEN_RATE_CAPACITY" envDefault:"30"`
	RateRefill   int           `env:"NAMEGEN_RATE_REFILL" envDefault:"1"`
	RateInterval time.Duration `env:"NAMEGEN_RATE_INTERVAL" envDefault:"2s"`
}

// RateLimit returns the token bucket settings for generate requests.
func (c Config) RateLimit() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.RateCapacity,
		RefillRate:     c.RateRefill,
		RefillInterval: c.RateInterval,
	}
}

// WordBank loads the configured word bank.
func (c Config) WordBank() (*namegen.WordBank, error) {
	if c.WordBankPath == "" {
		return namegen.DefaultWordBank(), nil
	}
	return namegen.LoadWordBankFile(c.WordBankPath)
}
