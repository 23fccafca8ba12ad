// Package history persists comparison-run summaries.
//
// Each completed comparison is recorded as one Run row: input paths, xxh3
// content digests, instance and reconciliation counts, and wall-clock
// duration. The store is gorm-backed and supports a zero-setup sqlite file
// (the default) or a shared mysql database.
//
// History is strictly best-effort from the CLI's point of view: a failed
// connection or insert is logged as a warning and never fails the
// comparison itself.
package history
