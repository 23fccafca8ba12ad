// Package runs exposes the recorded comparison runs over HTTP.
//
// It is loaded as a feature by the serve command and provides a read-only
// view of the run history database:
//
//   - GET /runs      lists the most recent runs (limit query parameter)
//   - GET /runs/:id  returns a single run
//
// The feature stays disabled when the history database is unreachable, so
// the server still starts without one.
package runs
