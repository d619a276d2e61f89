package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/slnver/internal/ui/output"
	"go.trai.ch/slnver/internal/ui/style"
)

// PrettyHandler is a slog.Handler rendering one colored line per record,
// prefixed with the level glyph and followed by key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w. The level in opts is
// consulted on every record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, profile func() termenv.Profile, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{
		out:   output.New(w, profile),
		level: slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color := style.ForLevel(r.Level)

	var line strings.Builder
	if glyph != "" {
		line.WriteString(glyph + " ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&line, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&line, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

func (h *PrettyHandler) appendAttr(line *strings.Builder, attr slog.Attr) {
	line.WriteByte(' ')
	if h.group != "" {
		line.WriteString(h.group + ".")
	}
	line.WriteString(attr.Key + "=" + attr.Value.String())
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &clone
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}
