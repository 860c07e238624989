package recorder

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// slog has no notice, critical, alert and emergency levels, these fill the
// gaps around the built-in ones.
const (
	LevelNotice    slog.Level = 2
	LevelCritical  slog.Level = 12
	LevelAlert     slog.Level = 16
	LevelEmergency slog.Level = 20
)

// SlogLevel returns the standard level key for a slog level. Levels are
// mapped by bands, e.g. everything in [Warn, Error) is a warning.
func SlogLevel(l slog.Level) Key {
	switch {
	case l < slog.LevelInfo:
		return debugKey
	case l < LevelNotice:
		return infoKey
	case l < slog.LevelWarn:
		return noticeKey
	case l < slog.LevelError:
		return warningKey
	case l < LevelCritical:
		return errorKey
	case l < LevelAlert:
		return criticalKey
	case l < LevelEmergency:
		return alertKey
	default:
		return emergencyKey
	}
}

var _ slog.Handler = (*Handler)(nil)

// Handler is a slog.Handler writing into a Recorder.
type Handler struct {
	rec     *Recorder
	channel string
	attrs   []slog.Attr
	groups  []string
}

// Handler returns a slog handler writing into the recorder. Every level is
// enabled.
func (r *Recorder) Handler(channel string) *Handler {
	if channel == "" {
		channel = r.channel
	}

	return &Handler{
		rec:     r,
		channel: channel,
	}
}

// SlogLogger returns a slog logger writing into the recorder.
func (r *Recorder) SlogLogger(channel string) *slog.Logger {
	return slog.New(r.Handler(channel))
}

func (h *Handler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	// record attrs belong to the innermost group, WithAttrs ones were
	// already qualified when they were added
	fields := make(map[string]any, len(h.attrs)+len(attrs))
	convAttrs("", h.attrs, fields)
	convAttrs(joinGroups(h.groups), attrs, fields)

	var traceID, spanID string
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		traceID = sc.TraceID().String()
		spanID = sc.SpanID().String()
	}

	h.rec.add(SlogLevel(r.Level), r.Message, fields, h.channel, traceID, spanID)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	qualified := attrs
	if len(h.groups) > 0 {
		qualified = []slog.Attr{{Key: joinGroups(h.groups), Value: slog.GroupValue(attrs...)}}
	}

	return &Handler{
		rec:     h.rec,
		channel: h.channel,
		attrs:   append(slices.Clip(h.attrs), qualified...),
		groups:  h.groups,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &Handler{
		rec:     h.rec,
		channel: h.channel,
		attrs:   h.attrs,
		groups:  append(slices.Clip(h.groups), name),
	}
}

func joinGroups(groups []string) string {
	out := ""
	for _, g := range groups {
		out = joinKey(out, g)
	}

	return out
}
