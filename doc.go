// Package testlogger provides a RoadRunner logger plugin that records log
// entries in memory instead of writing them out.
//
// The plugin registers itself under the "testlogger" name and implements the
// Endure service container lifecycle (Init, Provides). Plugins collecting the
// Logger interface receive zap loggers backed by a shared
// [recorder.Recorder], so integration tests can assert on what the plugins
// logged through Recorder and clear the state between cases with Reset.
package testlogger
