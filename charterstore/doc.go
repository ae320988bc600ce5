// Package charterstore provides core abstractions and types for journaling
// charter events with dynamic event streams.
//
// This package defines the fundamental interfaces and types used across
// different journal implementations, including scopes, records, snapshots,
// and common error definitions.
//
// The journal supports dynamic scoping of records based on:
//   - Event types
//   - JSON payload tags
//   - Time ranges (occurred from/until)
//   - A sequence number floor (for incremental projection updates)
//
// Key types:
//   - Scope: Defines which records belong to a charter stream
//   - Record: Represents an event that can be journaled and retrieved
//   - Records: Collection of records
//   - Snapshot: A cached projection state keyed by scope identity
//
// Common usage pattern:
//
//	// Create a scope for multiple event types with a tag
//	scope := BuildScope().
//		Matching().
//		AnyEventTypeOf(
//			core.ChargeRecordedEventType,
//			core.ChargeRemovedEventType).
//		AndAnyTagOf(T("ReserveNumber", reserveNumber)).
//		Finalize()
//
//	records, maxSeq, err := journal.Query(ctx, scope)
//	if err != nil {
//		// handle error
//	}
//
//	newRecord, err := charterstore.BuildRecord(eventType, time.Now(), payload, metadata)
//	if err != nil {
//		// handle error
//	}
//
//	err = journal.Append(ctx, scope, maxSeq, newRecord)
package charterstore
