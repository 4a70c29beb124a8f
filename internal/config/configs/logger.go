package configs

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger configures the service logger. Format "json" targets log
// collectors; anything else selects the colourised tint text handler.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// TimeFormat is the timestamp layout of the text handler.
	TimeFormat string `env:"TIME_FORMAT" envDefault:"15:04:05.000"`
}

// SlogLevel parses Level the way slog does ("debug", "WARN", "info+2").
// "warning" and "err" are accepted too. Anything else is info.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch name {
	case "warning":
		name = "warn"
	case "err":
		name = "error"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	if strings.EqualFold(c.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()})
	}
	return tint.NewHandler(w, &tint.Options{Level: c.SlogLevel(), TimeFormat: c.TimeFormat})
}
