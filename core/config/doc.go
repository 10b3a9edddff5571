// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use
// (existing environment variables win) and uses the caarlos0/env library for
// parsing environment variables into struct fields. Any field type that
// implements encoding.TextUnmarshaler, such as generate.Lang or slog.Level,
// is decoded through it.
//
// Basic usage:
//
//	import "github.com/luperfect/utils/core/config"
//
//	type GeneratorConfig struct {
//		Length int           `env:"GENERATE_LENGTH" envDefault:"12"`
//		Lang   generate.Lang `env:"GENERATE_LANG" envDefault:"ru"`
//	}
//
//	func main() {
//		var cfg GeneratorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GeneratorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeneratorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Failed loads are not cached.
package config
