package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	logger zerolog.Logger
	label  string
}

func NewZerologLogger(ctx context.Context,
	label string,
	level string,
	pretty bool,
	writer io.Writer) *Logger {

	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: "15:04:05.000000",
		}
	}

	l := &Logger{
		logger: zerolog.New(writer).Level(lvl).With().Timestamp().Logger(),
		label:  label,
	}

	l.Info(ctx).Msgf("Logger started, level: %s, pretty: %t", lvl, pretty)

	return l
}

func (l *Logger) Debug(ctx context.Context) *zerolog.Event {
	return l.enrich(l.logger.Debug().Ctx(ctx))
}

func (l *Logger) Info(ctx context.Context) *zerolog.Event {
	return l.enrich(l.logger.Info().Ctx(ctx))
}

func (l *Logger) Warn(ctx context.Context) *zerolog.Event {
	return l.enrich(l.logger.Warn().Ctx(ctx))
}

func (l *Logger) Error(ctx context.Context, err error) *zerolog.Event {
	return l.enrich(l.logger.Error().Ctx(ctx).Err(err))
}

func (l *Logger) Fatal(ctx context.Context, err error) *zerolog.Event {
	return l.enrich(l.logger.Fatal().Ctx(ctx).Err(err))
}

func (l *Logger) enrich(e *zerolog.Event) *zerolog.Event {
	return e.Str("label", l.label)
}

func (l *Logger) Wrap(err error, msg string) error {
	return fmt.Errorf("[%s] %s - %w", l.label, msg, err)
}

func (l *Logger) Wrapf(err error, format string, v ...any) error {
	return fmt.Errorf("[%s] %s - %w", l.label, fmt.Sprintf(format, v...), err)
}

// SubLogger shares hooks and output with the parent, only the label differs.
func (l *Logger) SubLogger(label string) *Logger {
	return &Logger{
		logger: l.logger,
		label:  label,
	}
}

// ContextField extracts one key/value pair from a request context.
// An empty value leaves the field out.
type ContextField func(ctx context.Context) (key, value string)

// RegisterHook must be called before any SubLogger is derived,
// sub-loggers copy the hook chain at creation.
func (l *Logger) RegisterHook(fields ...ContextField) {
	l.logger = l.logger.Hook(hook{fields: fields})
}

type hook struct {
	fields []ContextField
}

func (h hook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	for _, field := range h.fields {
		key, val := field(ctx)
		if key != "" && val != "" {
			e.Str(key, val)
		}
	}
}
