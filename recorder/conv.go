package recorder

import (
	"log/slog"

	"go.uber.org/zap/zapcore"
)

// convFields encodes zap fields into a record context.
func convFields(fields []zapcore.Field) map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for i := 0; i < len(fields); i++ {
		fields[i].AddTo(enc)
	}

	return enc.Fields
}

// convAttrs flattens slog attributes into a record context, group names are
// joined into the key with a dot: {"req": {"id": 1}} becomes "req.id".
func convAttrs(prefix string, attrs []slog.Attr, curr map[string]any) {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if a.Value.Kind() == slog.KindGroup {
			g := a.Value.Group()
			if len(g) == 0 {
				continue
			}
			// empty group key means inline
			if a.Key == "" {
				convAttrs(prefix, g, curr)
				continue
			}
			convAttrs(joinKey(prefix, a.Key), g, curr)
			continue
		}

		curr[joinKey(prefix, a.Key)] = a.Value.Any()
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
