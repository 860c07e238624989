package recorder

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/roadrunner-server/errors"
	"go.uber.org/zap"
)

// Logger is the leveled logging contract: one generic entry point and a
// method per standard level, each delegating to Log with the level fixed.
type Logger interface {
	Log(level any, message string, context map[string]any) error
	Debug(message string, context map[string]any)
	Info(message string, context map[string]any)
	Notice(message string, context map[string]any)
	Warning(message string, context map[string]any)
	Error(message string, context map[string]any)
	Critical(message string, context map[string]any)
	Alert(message string, context map[string]any)
	Emergency(message string, context map[string]any)
}

var _ Logger = (*Recorder)(nil)

// Recorder keeps every log call in memory for later inspection.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	records []Record
	byLevel map[Key][]Record

	interpolate bool
	channel     string
	log         *zap.Logger
}

// New creates a Recorder. A nil cfg means the default configuration, a nil
// log discards the recorder's own diagnostics (deprecation warnings).
func New(cfg *Config, log *zap.Logger) *Recorder {
	var conf Config
	if cfg != nil {
		conf = *cfg
	}
	conf.InitDefault()

	if log == nil {
		log = zap.NewNop()
	}

	return &Recorder{
		byLevel:     make(map[Key][]Record),
		interpolate: conf.InterpolateOnLog,
		channel:     conf.Channel,
		log:         log,
	}
}

// Log records a message at the given level. The only possible error is an
// *InvalidLevelError (wrapped), in which case nothing is recorded.
func (r *Recorder) Log(level any, message string, context map[string]any) error {
	const op = errors.Op("recorder_log")

	key, err := NormalizeLevel(level)
	if err != nil {
		return errors.E(op, err)
	}

	r.add(key, message, context, r.channel, "", "")
	return nil
}

// LogStringer records a message with a String method.
func (r *Recorder) LogStringer(level any, message fmt.Stringer, context map[string]any) error {
	const op = errors.Op("recorder_log_stringer")
	if message == nil {
		return errors.E(op, errors.Str("message should not be nil"))
	}

	return r.Log(level, message.String(), context)
}

func (r *Recorder) Debug(message string, context map[string]any) {
	r.add(debugKey, message, context, r.channel, "", "")
}

func (r *Recorder) Info(message string, context map[string]any) {
	r.add(infoKey, message, context, r.channel, "", "")
}

func (r *Recorder) Notice(message string, context map[string]any) {
	r.add(noticeKey, message, context, r.channel, "", "")
}

func (r *Recorder) Warning(message string, context map[string]any) {
	r.add(warningKey, message, context, r.channel, "", "")
}

func (r *Recorder) Error(message string, context map[string]any) {
	r.add(errorKey, message, context, r.channel, "", "")
}

func (r *Recorder) Critical(message string, context map[string]any) {
	r.add(criticalKey, message, context, r.channel, "", "")
}

func (r *Recorder) Alert(message string, context map[string]any) {
	r.add(alertKey, message, context, r.channel, "", "")
}

func (r *Recorder) Emergency(message string, context map[string]any) {
	r.add(emergencyKey, message, context, r.channel, "", "")
}

// add is the single ingestion point for the native contract and every adapter.
func (r *Recorder) add(key Key, message string, context map[string]any, channel, traceID, spanID string) {
	if r.interpolate {
		message = Interpolate(message, context)
	}

	rec := Record{
		ID:      uuid.NewString(),
		Level:   key,
		Message: message,
		Context: copyContext(context),
		Channel: channel,
		TraceID: traceID,
		SpanID:  spanID,
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.byLevel[key] = append(r.byLevel[key], rec)
	r.mu.Unlock()
}

// Records returns a copy of all records in insertion order.
func (r *Recorder) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRecords(r.records)
}

// RecordsOf returns a copy of the records logged at the given level.
func (r *Recorder) RecordsOf(level any) ([]Record, error) {
	const op = errors.Op("recorder_records_of")

	key, err := NormalizeLevel(level)
	if err != nil {
		return nil, errors.E(op, err)
	}

	return cloneRecords(r.bucket(key)), nil
}

// cloneRecords copies records together with their contexts, callers may
// modify the result freely.
func cloneRecords(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i := range recs {
		out[i] = recs[i]
		out[i].Context = copyContext(recs[i].Context)
	}

	return out
}

// Len returns the number of records.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Reset drops all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	n := len(r.records)
	// fresh storage, snapshots taken by running queries stay intact
	r.records = nil
	r.byLevel = make(map[Key][]Record)
	r.mu.Unlock()

	r.log.Debug("records were reset", zap.Int("dropped", n))
}

// HasRecords reports whether anything was logged at the given level.
func (r *Recorder) HasRecords(level any) (bool, error) {
	const op = errors.Op("recorder_has_records")

	key, err := NormalizeLevel(level)
	if err != nil {
		return false, errors.E(op, err)
	}

	return r.hasRecords(key), nil
}

// HasRecord reports whether a record matching the expectation was logged
// at the given level.
func (r *Recorder) HasRecord(record Expectation, level any) (bool, error) {
	const op = errors.Op("recorder_has_record")

	key, err := NormalizeLevel(level)
	if err != nil {
		return false, errors.E(op, err)
	}

	if record == nil {
		return false, errors.E(op, errors.Str("expectation should not be nil"))
	}

	return r.hasRecord(record, key), nil
}

// HasRecordThatContains reports whether a record whose message contains
// the substring was logged at the given level. The match is literal and
// case-sensitive.
func (r *Recorder) HasRecordThatContains(substring string, level any) (bool, error) {
	const op = errors.Op("recorder_has_record_that_contains")

	key, err := NormalizeLevel(level)
	if err != nil {
		return false, errors.E(op, err)
	}

	return r.hasRecordThatContains(substring, key), nil
}

// HasRecordThatMatches reports whether a record whose message matches the
// regular expression was logged at the given level. Patterns use the RE2
// syntax, the delimited form /pattern/flags is accepted as well.
func (r *Recorder) HasRecordThatMatches(pattern string, level any) (bool, error) {
	const op = errors.Op("recorder_has_record_that_matches")

	key, err := NormalizeLevel(level)
	if err != nil {
		return false, errors.E(op, err)
	}

	re, err := compilePattern(pattern)
	if err != nil {
		return false, errors.E(op, err)
	}

	return r.hasRecordThatMatches(re, key), nil
}

// HasRecordThatPasses reports whether the predicate returns true for at
// least one record of the given level. Records are visited in insertion
// order and the first match stops the iteration.
func (r *Recorder) HasRecordThatPasses(predicate Predicate, level any) (bool, error) {
	const op = errors.Op("recorder_has_record_that_passes")

	key, err := NormalizeLevel(level)
	if err != nil {
		return false, errors.E(op, err)
	}

	if predicate == nil {
		return false, errors.E(op, errors.Str("predicate should not be nil"))
	}

	return r.hasRecordThatPasses(predicate, key), nil
}

// bucket returns the current bucket of the level. Buckets are append-only
// between resets, so the returned slice can be read without the lock.
func (r *Recorder) bucket(key Key) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byLevel[key]
}

func (r *Recorder) hasRecords(key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byLevel[key]
	return ok
}

func (r *Recorder) hasRecordThatPasses(predicate Predicate, key Key) bool {
	bucket := r.bucket(key)
	for i := 0; i < len(bucket); i++ {
		if predicate(bucket[i], i) {
			return true
		}
	}

	return false
}

func (r *Recorder) hasRecord(record Expectation, key Key) bool {
	exp := record.expectation()
	return r.hasRecordThatPasses(func(rec Record, _ int) bool {
		return exp.matches(rec)
	}, key)
}

func (r *Recorder) hasRecordThatContains(substring string, key Key) bool {
	return r.hasRecordThatPasses(func(rec Record, _ int) bool {
		return strings.Contains(rec.Message, substring)
	}, key)
}

func (r *Recorder) hasRecordThatMatches(re *regexp.Regexp, key Key) bool {
	return r.hasRecordThatPasses(func(rec Record, _ int) bool {
		return re.MatchString(rec.Message)
	}, key)
}
