package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const timeFormat = "01-02|15:04:05.000"

// TerminalHandler renders records as aligned, human-readable terminal lines:
//
//	INFO [08-30|17:41:02.150] collected results          module=collect_mod n=12
type TerminalHandler struct {
	mu    sync.Mutex
	wr    io.Writer
	lvl   slog.Level
	color bool
	attrs []slog.Attr
}

func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:    wr,
		lvl:   lvl,
		color: useColor,
	}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	lvl := LevelAlignedString(r.Level)
	if h.color {
		if c := levelColor(r.Level); c != "" {
			lvl = c + lvl + "\033[0m"
		}
	}
	sb.WriteString(lvl)
	sb.WriteString("[")
	sb.WriteString(r.Time.Format(timeFormat))
	sb.WriteString("] ")
	sb.WriteString(r.Message)

	// pad short messages so attrs line up
	if n := len(r.Message); n < 40 {
		sb.WriteString(strings.Repeat(" ", 40-n))
	}

	for _, attr := range h.attrs {
		writeAttr(&sb, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.wr, sb.String())
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:    h.wr,
		lvl:   h.lvl,
		color: h.color,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	return h
}

func writeAttr(sb *strings.Builder, attr slog.Attr) {
	sb.WriteString(" ")
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	val := attr.Value.Resolve()
	switch val.Kind() {
	case slog.KindTime:
		sb.WriteString(val.Time().Format(time.RFC3339))
	default:
		s := fmt.Sprint(val.Any())
		if strings.ContainsAny(s, " \t") {
			s = fmt.Sprintf("%q", s)
		}
		sb.WriteString(s)
	}
}

func levelColor(l slog.Level) string {
	switch {
	case l >= LevelCrit:
		return "\033[35m" // magenta
	case l >= slog.LevelError:
		return "\033[31m" // red
	case l >= slog.LevelWarn:
		return "\033[33m" // yellow
	case l >= slog.LevelInfo:
		return "\033[32m" // green
	default:
		return "\033[36m" // cyan
	}
}

type discardHandler struct{}

// DiscardHandler returns a handler that drops everything, used before InitLogger runs.
func DiscardHandler() slog.Handler {
	return discardHandler{}
}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
