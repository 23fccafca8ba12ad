// Package report renders comparison results into the output files consumed
// by downstream tooling.
//
// Two sinks exist: the comparison CSV (one row per matched key with raw
// values, difference, and percent deviation or equality verdict) and the
// missing-instances text report (banner-delimited lists of one-sided keys).
// Both reproduce the formats of the legacy comparer so existing consumers
// keep working, including the "inf" token for an undefined deviation.
//
// The package also merges the outputs of independent shard comparisons back
// into single final files (MergeComparisonCSVs, MergeMissingReports).
package report
