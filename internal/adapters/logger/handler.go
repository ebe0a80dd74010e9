package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rehost/internal/ui/output"
	"go.trai.ch/rehost/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminal output. The first line of a
// record carries the level icon and color; continuation lines, such as the
// causes and metadata of an error chain, and attributes are muted.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// levelMark returns the icon prefix and the color of the first line.
func levelMark(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", style.Red
	case level >= slog.LevelWarn:
		return style.Warning + " ", style.Yellow
	default:
		return "", style.Slate
	}
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark, color := levelMark(r.Level)
	head, rest, multiline := strings.Cut(r.Message, "\n")

	var b strings.Builder
	b.WriteString(h.out.String(mark + head).Foreground(termenv.RGBColor(string(color))).String())

	attrs := h.attrs
	r.Attrs(func(attr slog.Attr) bool {
		attrs = appendAttr(attrs, h.groups, attr)
		return true
	})
	if len(attrs) > 0 {
		b.WriteString(" " + h.muted(strings.Join(attrs, " ")))
	}

	if multiline {
		for _, line := range strings.Split(rest, "\n") {
			b.WriteString("\n" + h.muted(line))
		}
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *PrettyHandler) muted(s string) string {
	if s == "" {
		return s
	}
	return h.out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).Faint().String()
}

// WithAttrs returns a new Handler with attrs rendered after every message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	rendered := append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		rendered = appendAttr(rendered, h.groups, attr)
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  rendered,
		groups: h.groups,
	}
}

// WithGroup returns a new Handler nesting subsequent keys under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
	}
}

// appendAttr renders attr as key=value, flattening group values and quoting
// values that contain spaces or are empty.
func appendAttr(dst, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := groups
		if attr.Key != "" {
			nested = append(append([]string(nil), groups...), attr.Key)
		}
		for _, inner := range attr.Value.Group() {
			dst = appendAttr(dst, nested, inner)
		}
		return dst
	}

	key := strings.Join(append(append([]string(nil), groups...), attr.Key), ".")
	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\"") {
		value = strconv.Quote(value)
	}
	return append(dst, key+"="+value)
}
