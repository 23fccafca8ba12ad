// Package reconcile compares two keyed datasets parsed from rail report
// files.
//
// Reconciliation happens in two pure, in-memory stages:
//
//  1. Reconcile partitions the union of the two key sets into matched keys,
//     keys missing from file 2, and keys missing from file 1, each list
//     sorted lexicographically so report output is deterministic.
//
//  2. BuildComparisons turns each matched key into a Comparison record:
//     numeric difference and percent deviation when both values parsed as
//     numbers, or a raw-token equality verdict otherwise. Division by a zero
//     file-2 value is modeled as an explicit DeviationInfinite state, never
//     a magic number.
//
// Neither stage performs I/O; both operate on datasets already merged by
// core/railfile.
package reconcile
