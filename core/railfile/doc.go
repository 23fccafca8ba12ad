// Package railfile parses whitespace-delimited rail report files into keyed
// datasets.
//
// A report file consists of metadata header lines (first token drawn from a
// fixed keyword vocabulary, e.g. VERSION or NOMINAL_VOLTAGE), comment lines
// starting with '#', and instance lines of whitespace-separated columns. The
// caller designates which columns form the instance key and which column
// holds the value; each surviving line becomes one (key, value) record.
//
// # Parallel loading
//
// Large reports are parsed in parallel. PlanChunks splits the file into
// line-aligned byte ranges, ParseChunk turns one range into a partial
// dataset, and LoadFile fans the chunks out over an errgroup and merges the
// partial results. Chunk tasks share nothing but read-only access to the
// file, so the parse phase needs no locking, and the merged dataset is
// identical for any worker count.
//
// # Values
//
// Record values are a two-variant union: a token that lexes fully as a float
// becomes numeric, anything else stays a string. Both forms carry the raw
// token, so downstream formatting never re-parses.
package railfile
