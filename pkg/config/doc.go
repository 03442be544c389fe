// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// Structs declare their variables with caarlos0/env tags:
//
//	type Config struct {
//		UIDelay time.Duration `env:"NAMEGEN_UI_DELAY" envDefault:"1500ms"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load reads ./.env once per process (a missing file is not an error) and
// caches the parsed value per struct type, so every package can load its own
// config without coordinating with main. LoadEnv seeds extra .env files and
// must run before the first Load of any type it affects.
package config
