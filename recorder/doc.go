// Package recorder implements an in-memory logging double for tests.
//
// The central type is [Recorder], which satisfies the leveled [Logger]
// contract (Debug, Info, Notice, Warning, Error, Critical, Alert, Emergency
// and the generic Log) and keeps every call as a [Record]. Records are
// indexed twice: in insertion order and grouped by their normalized level
// [Key], so tests can ask whether a record of a given level was logged.
//
// Queries come in a generic form taking the level as an argument
// (HasRecord, HasRecords, HasRecordThatContains, HasRecordThatMatches,
// HasRecordThatPasses) and as fixed per-level shortcuts such as HasDebug,
// HasWarningRecords or HasErrorThatContains. Call keeps code written against
// the older method-name convention working and logs a deprecation warning
// for every use.
//
// Besides the native contract, a Recorder captures zap ([Recorder.ZapLogger]),
// slog ([Recorder.SlogLogger]) and smithy-go ([Recorder.SmithyLogger])
// output. Adapters that see an OpenTelemetry span in the context attach its
// trace and span IDs to the record.
package recorder
