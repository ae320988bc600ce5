// Package snapshot provides a generic wrapper that adds snapshot-based incremental
// projection to any query handler. Projections over long charter or duty streams are
// cached in the journal's snapshot table and advanced with only the records appended
// since the last read.
package snapshot
