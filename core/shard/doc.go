// Package shard splits huge rail report files into smaller, independently
// comparable pieces.
//
// Lines are routed to shards by the hash of their instance key, so the same
// key always lands in the same shard index. Sharding both input files with
// the same key columns and shard count therefore guarantees that a key pair
// meets in exactly one shard pair, and the per-shard comparison outputs can
// be merged into the final reports with core/report.
package shard
