package recorder

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/smithy-go/logging"
	"go.opentelemetry.io/otel/trace"
)

var (
	_ logging.Logger        = (*SmithyLogger)(nil)
	_ logging.ContextLogger = (*SmithyLogger)(nil)
)

// SmithyLogger captures the output of smithy-go based clients (the AWS SDK
// among them). WARN entries become warnings, DEBUG entries debug records,
// other classifications are kept under their lower-cased name.
type SmithyLogger struct {
	rec     *Recorder
	channel string
	traceID string
	spanID  string
}

// SmithyLogger returns a smithy-go logger writing into the recorder.
func (r *Recorder) SmithyLogger(channel string) *SmithyLogger {
	if channel == "" {
		channel = r.channel
	}

	return &SmithyLogger{
		rec:     r,
		channel: channel,
	}
}

func (s *SmithyLogger) Logf(classification logging.Classification, format string, v ...any) {
	var key Key
	switch classification {
	case logging.Warn:
		key = warningKey
	case logging.Debug:
		key = debugKey
	default:
		key = Name(strings.ToLower(string(classification)))
	}

	s.rec.add(key, fmt.Sprintf(format, v...), nil, s.channel, s.traceID, s.spanID)
}

// WithContext returns a logger which tags records with the span found in ctx.
func (s *SmithyLogger) WithContext(ctx context.Context) logging.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return s
	}

	return &SmithyLogger{
		rec:     s.rec,
		channel: s.channel,
		traceID: sc.TraceID().String(),
		spanID:  sc.SpanID().String(),
	}
}
