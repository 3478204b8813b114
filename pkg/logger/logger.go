package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// Options represents options for logger.
type Options struct {
	// LogLevel is one of zerolog levels (trace, debug, info, warn, error, ...). Empty means debug.
	LogLevel string
	// LogFile enables an additional rotated log file.
	LogFile string
	// PrettyLogOutput switches console output to human readable format.
	PrettyLogOutput bool
	// Output replaces stdout as the console writer.
	Output io.Writer
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100,
		MaxBackups: 3,
	}
}

// New returns a new instance of logger.
func New(opts Options) (*Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	// By default create console writer
	writers := []io.Writer{out}

	if opts.PrettyLogOutput {
		writers[0] = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Stamp}
	}

	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile))
	}

	level := zerolog.DebugLevel
	if opts.LogLevel != "" {
		parsedLevel, err := zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}

		level = parsedLevel
	}

	zeroLogger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().
		Logger()

	return &Logger{&zeroLogger}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	zeroLogger := zerolog.Nop()
	return &Logger{&zeroLogger}
}
