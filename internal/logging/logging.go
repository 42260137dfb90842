// Package logging builds the JSON line loggers used across the service.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Options configures New. Zero values fall back to stdout, info level and UTC.
type Options struct {
	Level    string
	Output   io.Writer
	Location *time.Location
}

// New returns a JSON logger named name. Timestamps are rendered in opts.Location.
func New(name string, opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: true,
		TimeFormat: time.RFC3339Nano,
		TimeFn: func() time.Time {
			return time.Now().In(loc)
		},
	})
}
