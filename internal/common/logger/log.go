package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultLogLevel = zerolog.InfoLevel

type Logger struct {
	logger *zerolog.Logger
}

func InitLogger(fields map[string]string) *Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: true,
		FormatLevel: func(i any) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "DEBUG":
				return "\033[36m" + level + "\033[0m" // Cyan
			case "INFO":
				return "\033[32m" + level + "\033[0m" // Green
			case "WARN":
				return "\033[33m" + level + "\033[0m" // Yellow
			case "ERROR":
				return "\033[31m" + level + "\033[0m" // Red
			case "FATAL":
				return "\033[35m" + level + "\033[0m" // Magenta
			default:
				return level
			}
		},
	}
	entry := zerolog.New(consoleWriter).With().Timestamp().Logger()
	if fields != nil {
		withFields := entry.With()
		for k, v := range fields {
			withFields = withFields.Str(k, v)
		}
		entry = withFields.Logger()
	}
	return &Logger{logger: &entry}
}

func ParseLogLevel(level string) {
	if len(level) == 0 {
		return
	}
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse log level -> set InfoLevel")
		zerolog.SetGlobalLevel(DefaultLogLevel)
		return
	}
	zerolog.SetGlobalLevel(logLevel)
}

func (l *Logger) Trace(format string, args ...any) {
	l.logger.Trace().Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l *Logger) Fatal(format string, args ...any) {
	l.logger.Fatal().Msgf(format, args...)
}
