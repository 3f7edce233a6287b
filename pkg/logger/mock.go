package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// NewMockLogger discards everything, for tests.
func NewMockLogger() *Logger {
	return &Logger{
		logger: zerolog.New(io.Discard),
		label:  "mock",
	}
}
