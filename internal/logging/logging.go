package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Options struct {
	Debug bool
	File  string
}

// Output is where a configured logger writes
type Output struct {
	// Trace receives HTTP traces; nil unless debug logging is on
	Trace io.Writer
	file  *os.File
}

// Close releases the log file, if any
func (o *Output) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}

// Setup configures logger to write to console, and to opts.File when set
func Setup(logger *log.Logger, console io.Writer, opts Options) (*Output, error) {
	// Millisecond precision in timestamps helps when comparing against HTTP traces.
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02T15:04:05.999Z07:00"
	formatter.FullTimestamp = true
	logger.SetFormatter(formatter)

	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	out := &Output{}
	w := console
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out.file = f
		w = io.MultiWriter(console, f)
	}
	logger.SetOutput(w)

	if opts.Debug {
		out.Trace = w
		logger.Debug("debug logging enabled")
	}
	return out, nil
}
