// Command generate prints a single slug, code, number, password or random string.
//
//	generate --kind password --length 16
//	generate --kind string --lang en --length 8
//	generate --kind string --charset abc --length 10
//	generate --kind int --min=-5 --max 5
//	generate --kind slug "Hello   World!!"
//
// Every flag has an environment counterpart (GENERATE_KIND, GENERATE_LENGTH, ...).
// Logs go to stderr, the generated value to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/luperfect/utils/core/config"
	"github.com/luperfect/utils/core/logger"
	"github.com/luperfect/utils/pkg/generate"
)

const serviceName = "generate"

var errUnknownKind = errors.New("unknown kind")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	app := newCommand(&cfg, func(cfg Config) error {
		return emit(cfg, stdout, stderr)
	})
	app.Writer = stdout
	app.ErrWriter = stderr

	return app.Run(context.Background(), append([]string{serviceName}, args...))
}

// newCommand binds flags on top of the environment config in cfg and hands the
// merged result to action.
func newCommand(cfg *Config, action func(Config) error) *cli.Command {
	return &cli.Command{
		Name:      serviceName,
		Usage:     "print a slug, code, number, password or random string",
		ArgsUsage: "[phrase]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "slug, digits, int, digit, password or string",
				Value:       cfg.Kind,
				Destination: &cfg.Kind,
			},
			&cli.IntFlag{
				Name:        "length",
				Usage:       "output length",
				Value:       cfg.Length,
				Destination: &cfg.Length,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "alphabet for --kind string: en or ru",
				Value: cfg.Lang.String(),
			},
			&cli.StringFlag{
				Name:        "charset",
				Usage:       "custom character set for --kind string",
				Value:       cfg.Charset,
				Destination: &cfg.Charset,
			},
			&cli.IntFlag{
				Name:        "min",
				Usage:       "inclusive lower bound for --kind int",
				Value:       cfg.Min,
				Destination: &cfg.Min,
			},
			&cli.IntFlag{
				Name:        "max",
				Usage:       "exclusive upper bound for --kind int",
				Value:       cfg.Max,
				Destination: &cfg.Max,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.IsSet("lang") {
				lang, err := generate.ParseLang(cmd.String("lang"))
				if err != nil {
					return err
				}
				cfg.Lang = lang
			}
			if cmd.Args().Len() > 0 {
				cfg.Phrase = strings.Join(cmd.Args().Slice(), " ")
			}
			return action(*cfg)
		},
	}
}

func emit(cfg Config, stdout, stderr io.Writer) error {
	log := newLogger(cfg, stderr).With(logger.CorrelationID(uuid.NewString()))

	start := time.Now()
	value, err := produce(cfg)
	if err != nil {
		log.Error("generation failed",
			logger.Component(serviceName),
			logger.Action(cfg.Kind),
			logger.Result("failure"),
			logger.Error(err),
		)
		return err
	}

	log.Debug("value generated",
		logger.Component(serviceName),
		logger.Action(cfg.Kind),
		logger.Result("success"),
		logger.Count("length", len([]rune(value))),
		logger.Elapsed(start),
	)

	_, err = fmt.Fprintln(stdout, value)
	return err
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(serviceName)}
	if cfg.AppEnv == "production" {
		opts = []logger.Option{logger.WithProduction(serviceName)}
	}
	switch cfg.LogFormat {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}
	return logger.New(append(opts, logger.WithLevel(cfg.LogLevel), logger.WithOutput(w))...)
}

func produce(cfg Config) (string, error) {
	switch cfg.Kind {
	case "slug":
		return generate.Slug(cfg.Phrase), nil
	case "digits":
		return generate.DigitCode(cfg.Length)
	case "digit":
		d, err := generate.RandomDigit()
		return fmt.Sprint(d), err
	case "int":
		n, err := generate.RandomIntegerRange(cfg.Min, cfg.Max)
		return fmt.Sprint(n), err
	case "password":
		return generate.Password(cfg.Length)
	case "string":
		if cfg.Charset != "" {
			return generate.RandomStringFromString(cfg.Length, cfg.Charset)
		}
		return generate.RandomString(cfg.Length, cfg.Lang)
	}
	return "", fmt.Errorf("%w: %q", errUnknownKind, cfg.Kind)
}
