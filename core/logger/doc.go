// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers environment-specific configurations and a set of nil-safe attribute helpers.
//
// # Basic Usage
//
//	import "github.com/luperfect/utils/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("generate"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("generate"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("value generated",
//		logger.Component("generate"),
//		logger.Action("password"),
//		logger.Count("length", 12),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog omits:
//
//	log.Error("generation failed",
//		logger.Error(err),          // omitted when err == nil
//		logger.CorrelationID(runID), // omitted when runID == ""
//		logger.Elapsed(start),
//	)
//
// # Testing
//
// Direct output into a buffer and parse it:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
