package recorder

// Fixed per-level shortcuts. Each delegates to the generic query with the
// level set, so none of them can fail on level normalization.

// HasDebug reports whether a record matching the expectation was logged at the debug level.
func (r *Recorder) HasDebug(record Expectation) bool {
	return record != nil && r.hasRecord(record, debugKey)
}

// HasInfo reports whether a record matching the expectation was logged at the info level.
func (r *Recorder) HasInfo(record Expectation) bool {
	return record != nil && r.hasRecord(record, infoKey)
}

// HasNotice reports whether a record matching the expectation was logged at the notice level.
func (r *Recorder) HasNotice(record Expectation) bool {
	return record != nil && r.hasRecord(record, noticeKey)
}

// HasWarning reports whether a record matching the expectation was logged at the warning level.
func (r *Recorder) HasWarning(record Expectation) bool {
	return record != nil && r.hasRecord(record, warningKey)
}

// HasError reports whether a record matching the expectation was logged at the error level.
func (r *Recorder) HasError(record Expectation) bool {
	return record != nil && r.hasRecord(record, errorKey)
}

// HasCritical reports whether a record matching the expectation was logged at the critical level.
func (r *Recorder) HasCritical(record Expectation) bool {
	return record != nil && r.hasRecord(record, criticalKey)
}

// HasAlert reports whether a record matching the expectation was logged at the alert level.
func (r *Recorder) HasAlert(record Expectation) bool {
	return record != nil && r.hasRecord(record, alertKey)
}

// HasEmergency reports whether a record matching the expectation was logged at the emergency level.
func (r *Recorder) HasEmergency(record Expectation) bool {
	return record != nil && r.hasRecord(record, emergencyKey)
}

func (r *Recorder) HasDebugRecords() bool {
	return r.hasRecords(debugKey)
}

func (r *Recorder) HasInfoRecords() bool {
	return r.hasRecords(infoKey)
}

func (r *Recorder) HasNoticeRecords() bool {
	return r.hasRecords(noticeKey)
}

func (r *Recorder) HasWarningRecords() bool {
	return r.hasRecords(warningKey)
}

func (r *Recorder) HasErrorRecords() bool {
	return r.hasRecords(errorKey)
}

func (r *Recorder) HasCriticalRecords() bool {
	return r.hasRecords(criticalKey)
}

func (r *Recorder) HasAlertRecords() bool {
	return r.hasRecords(alertKey)
}

func (r *Recorder) HasEmergencyRecords() bool {
	return r.hasRecords(emergencyKey)
}

func (r *Recorder) HasDebugThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, debugKey)
}

func (r *Recorder) HasInfoThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, infoKey)
}

func (r *Recorder) HasNoticeThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, noticeKey)
}

func (r *Recorder) HasWarningThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, warningKey)
}

func (r *Recorder) HasErrorThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, errorKey)
}

func (r *Recorder) HasCriticalThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, criticalKey)
}

func (r *Recorder) HasAlertThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, alertKey)
}

func (r *Recorder) HasEmergencyThatContains(substring string) bool {
	return r.hasRecordThatContains(substring, emergencyKey)
}

// The ThatMatches shortcuts panic when the pattern does not compile, the
// same way regexp.MustCompile does.

func (r *Recorder) HasDebugThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), debugKey)
}

func (r *Recorder) HasInfoThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), infoKey)
}

func (r *Recorder) HasNoticeThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), noticeKey)
}

func (r *Recorder) HasWarningThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), warningKey)
}

func (r *Recorder) HasErrorThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), errorKey)
}

func (r *Recorder) HasCriticalThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), criticalKey)
}

func (r *Recorder) HasAlertThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), alertKey)
}

func (r *Recorder) HasEmergencyThatMatches(pattern string) bool {
	return r.hasRecordThatMatches(mustCompilePattern(pattern), emergencyKey)
}

func (r *Recorder) HasDebugThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, debugKey)
}

func (r *Recorder) HasInfoThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, infoKey)
}

func (r *Recorder) HasNoticeThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, noticeKey)
}

func (r *Recorder) HasWarningThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, warningKey)
}

func (r *Recorder) HasErrorThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, errorKey)
}

func (r *Recorder) HasCriticalThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, criticalKey)
}

func (r *Recorder) HasAlertThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, alertKey)
}

func (r *Recorder) HasEmergencyThatPasses(predicate Predicate) bool {
	return predicate != nil && r.hasRecordThatPasses(predicate, emergencyKey)
}
