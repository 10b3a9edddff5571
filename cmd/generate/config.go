package main

import (
	"log/slog"

	"github.com/luperfect/utils/pkg/generate"
)

// Config is read from the environment (and .env) before flags are applied.
type Config struct {
	Kind    string        `env:"GENERATE_KIND" envDefault:"password"`
	Length  int           `env:"GENERATE_LENGTH" envDefault:"12"`
	Lang    generate.Lang `env:"GENERATE_LANG" envDefault:"ru"`
	Charset string        `env:"GENERATE_CHARSET"`
	Min     int           `env:"GENERATE_MIN" envDefault:"0"`
	Max     int           `env:"GENERATE_MAX" envDefault:"100"`
	Phrase  string        `env:"GENERATE_PHRASE"`

	AppEnv    string     `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}
