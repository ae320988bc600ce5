// Package memoryengine provides an in-memory implementation of the charter journal.
//
// It mirrors the semantics of the Postgres engine, including the optimistic
// first-committer-wins append guard, and is intended for tests, demos, and
// local tooling. It is safe for concurrent use.
package memoryengine

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
)

type storedRecord struct {
	record         charterstore.Record
	sequenceNumber charterstore.MaxSequenceUint
}

// Journal is an in-memory store for charter events with the same append guard
// semantics as the Postgres engine.
type Journal struct {
	mu           sync.RWMutex
	records      []storedRecord
	lastSequence charterstore.MaxSequenceUint
	snapshots    map[string]charterstore.Snapshot
}

// NewJournal creates an empty in-memory Journal.
func NewJournal() *Journal {
	return &Journal{
		snapshots: make(map[string]charterstore.Snapshot),
	}
}

// Query retrieves records matching the given charterstore.Scope in sequence order
// and returns them along with the MaxSequenceUint for this dynamic charter stream
// at the time of the query.
func (j *Journal) Query(_ context.Context, scope charterstore.Scope) (
	charterstore.Records,
	charterstore.MaxSequenceUint,
	error,
) {

	j.mu.RLock()
	defer j.mu.RUnlock()

	recordStream := make(charterstore.Records, 0)
	maxSequenceNumber := charterstore.MaxSequenceUint(0)

	for _, stored := range j.records {
		if !matchesScope(stored, scope) {
			continue
		}

		recordStream = append(recordStream, stored.record)
		maxSequenceNumber = stored.sequenceNumber
	}

	return recordStream, maxSequenceNumber, nil
}

// Append attempts to append one or multiple charterstore.Record(s) onto the journal.
// It fails with charterstore.ErrSequenceConflict when the stream described by the
// Scope has advanced past the expected MaxSequenceUint.
func (j *Journal) Append(
	_ context.Context,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
	record charterstore.Record,
	additionalRecords ...charterstore.Record,
) error {

	j.mu.Lock()
	defer j.mu.Unlock()

	currentMax := charterstore.MaxSequenceUint(0)

	for _, stored := range j.records {
		if matchesScope(stored, scope) {
			currentMax = stored.sequenceNumber
		}
	}

	if currentMax != expectedMaxSequenceNumber {
		return charterstore.ErrSequenceConflict
	}

	allRecords := charterstore.Records{record}
	allRecords = append(allRecords, additionalRecords...)

	for _, r := range allRecords {
		j.lastSequence++
		j.records = append(j.records, storedRecord{record: r, sequenceNumber: j.lastSequence})
	}

	return nil
}

// SaveSnapshot stores a projection snapshot, replacing any existing snapshot for the
// same projection type and scope hash.
func (j *Journal) SaveSnapshot(_ context.Context, snapshot charterstore.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.snapshots[snapshotKey(snapshot.ProjectionType, snapshot.ScopeHash)] = snapshot

	return nil
}

// LoadSnapshot retrieves the snapshot for the given projection type and scope hash.
// It returns nil without error when no snapshot exists.
func (j *Journal) LoadSnapshot(_ context.Context, projectionType string, scopeHash string) (
	*charterstore.Snapshot,
	error,
) {

	j.mu.RLock()
	defer j.mu.RUnlock()

	snapshot, ok := j.snapshots[snapshotKey(projectionType, scopeHash)]
	if !ok {
		return nil, nil
	}

	return &snapshot, nil
}

// DeleteSnapshot removes the snapshot for the given projection type and scope hash.
// Deleting a snapshot that does not exist is not an error.
func (j *Journal) DeleteSnapshot(_ context.Context, projectionType string, scopeHash string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.snapshots, snapshotKey(projectionType, scopeHash))

	return nil
}

func snapshotKey(projectionType string, scopeHash string) string {
	return projectionType + "|" + scopeHash
}

func matchesScope(stored storedRecord, scope charterstore.Scope) bool {
	if !scope.OccurredFrom().IsZero() && stored.record.OccurredAt.Before(scope.OccurredFrom()) {
		return false
	}

	if !scope.OccurredUntil().IsZero() && stored.record.OccurredAt.After(scope.OccurredUntil()) {
		return false
	}

	if scope.SequenceHigherThan() > 0 && stored.sequenceNumber <= scope.SequenceHigherThan() {
		return false
	}

	clauses := scope.Clauses()
	if len(clauses) == 0 {
		return true
	}

	for _, clause := range clauses {
		if matchesClause(stored.record, clause) {
			return true
		}
	}

	return false
}

func matchesClause(record charterstore.Record, clause charterstore.ScopeClause) bool {
	if len(clause.EventTypes()) > 0 {
		found := false

		for _, eventType := range clause.EventTypes() {
			if record.EventType == eventType {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	tags := clause.Tags()
	if len(tags) == 0 {
		return true
	}

	if clause.AllTagsMustMatch() {
		for _, tag := range tags {
			if !payloadHasTag(record.PayloadJSON, tag) {
				return false
			}
		}

		return true
	}

	for _, tag := range tags {
		if payloadHasTag(record.PayloadJSON, tag) {
			return true
		}
	}

	return false
}

// payloadHasTag checks JSON containment the same way the Postgres engine does with
// the @> operator on a single string field.
func payloadHasTag(payload []byte, tag charterstore.Tag) bool {
	value := jsoniter.ConfigFastest.Get(payload, tag.Key())
	if value.LastError() != nil {
		return false
	}

	return value.ToString() == tag.Val()
}
