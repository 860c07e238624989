package recorder

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLevels maps zap levels onto the standard levels
var zapLevels = map[zapcore.Level]Key{ //nolint:gochecknoglobals
	zapcore.DebugLevel:  debugKey,
	zapcore.InfoLevel:   infoKey,
	zapcore.WarnLevel:   warningKey,
	zapcore.ErrorLevel:  errorKey,
	zapcore.DPanicLevel: criticalKey,
	zapcore.PanicLevel:  alertKey,
	zapcore.FatalLevel:  emergencyKey,
}

// ZapLevel returns the standard level key for a zap level.
func ZapLevel(l zapcore.Level) Key {
	if k, ok := zapLevels[l]; ok {
		return k
	}

	return Code(int(l))
}

var _ zapcore.Core = (*core)(nil)

type core struct {
	rec     *Recorder
	channel string
	context []zapcore.Field
}

// Core returns a zap core writing into the recorder. Every level is enabled.
func (r *Recorder) Core(channel string) zapcore.Core {
	if channel == "" {
		channel = r.channel
	}

	return &core{
		rec:     r,
		channel: channel,
	}
}

// ZapLogger returns a zap logger writing into the recorder. The logger name
// is used as the record channel; fatal entries panic after being recorded
// instead of terminating the process.
func (r *Recorder) ZapLogger(channel string) *zap.Logger {
	if channel == "" {
		channel = r.channel
	}

	return zap.New(r.Core(""), zap.WithFatalHook(zapcore.WriteThenPanic)).Named(channel)
}

func (c *core) Enabled(zapcore.Level) bool {
	return true
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{
		rec:     c.rec,
		channel: c.channel,
		context: append(c.context[:len(c.context):len(c.context)], fields...),
	}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(fields)+len(c.context))
	all = append(all, c.context...)
	all = append(all, fields...)

	channel := c.channel
	if ent.LoggerName != "" {
		channel = ent.LoggerName
	}

	c.rec.add(ZapLevel(ent.Level), ent.Message, convFields(all), channel, "", "")
	return nil
}

func (c *core) Sync() error {
	return nil
}
