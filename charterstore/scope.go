package charterstore

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
	"time"
)

/***** Scope *****/

// Scope describes which journal records belong to a dynamic charter stream:
// one or more clauses (event types and/or payload tags), optionally bounded
// by an occurred-at range and a sequence number floor.
type Scope struct {
	clauses            []ScopeClause
	occurredFrom       time.Time
	occurredUntil      time.Time
	sequenceHigherThan MaxSequenceUint
}

func (s Scope) Clauses() []ScopeClause {
	return s.clauses
}

// OccurredFrom returns the inclusive lower occurred-at bound, zero if unbounded.
func (s Scope) OccurredFrom() time.Time {
	return s.occurredFrom
}

// OccurredUntil returns the inclusive upper occurred-at bound, zero if unbounded.
func (s Scope) OccurredUntil() time.Time {
	return s.occurredUntil
}

// SequenceHigherThan returns the exclusive sequence number floor, zero if unbounded.
func (s Scope) SequenceHigherThan() MaxSequenceUint {
	return s.sequenceHigherThan
}

// ResumeAfterSequence returns a copy of the Scope that only matches records with
// a sequence number higher than the given one.
//
// It is used for incremental projection updates on top of a stored snapshot.
func (s Scope) ResumeAfterSequence(sequenceNumber MaxSequenceUint) Scope {
	resumed := s
	resumed.sequenceHigherThan = sequenceNumber

	return resumed
}

// Hash returns a deterministic identity for this Scope in the form "sha256:<hex>".
//
// Scopes with the same clauses and bounds hash identically, so the hash can be
// used as a snapshot lookup key.
func (s Scope) Hash() string {
	var sb strings.Builder

	for _, clause := range s.clauses {
		sb.WriteString("types=")
		sb.WriteString(strings.Join(clause.eventTypes, ","))

		if clause.allTagsMustMatch {
			sb.WriteString(";all-tags=")
		} else {
			sb.WriteString(";any-tags=")
		}

		for _, tag := range clause.tags {
			sb.WriteString(tag.key)
			sb.WriteString("=")
			sb.WriteString(tag.val)
			sb.WriteString(",")
		}

		sb.WriteString("|")
	}

	sb.WriteString("from=")
	if !s.occurredFrom.IsZero() {
		sb.WriteString(s.occurredFrom.UTC().Format(time.RFC3339Nano))
	}

	sb.WriteString(";until=")
	if !s.occurredUntil.IsZero() {
		sb.WriteString(s.occurredUntil.UTC().Format(time.RFC3339Nano))
	}

	sb.WriteString(";seq>")
	sb.WriteString(strconv.FormatUint(uint64(s.sequenceHigherThan), 10))

	sum := sha256.Sum256([]byte(sb.String()))

	return "sha256:" + hex.EncodeToString(sum[:])
}

/***** ScopeClause *****/

// ScopeClause matches records whose event type is any of EventTypes (when present)
// and whose payload matches the Tags (any or all, when present).
type ScopeClause struct {
	eventTypes       []string
	tags             []Tag
	allTagsMustMatch bool
}

func (sc ScopeClause) EventTypes() []string {
	return sc.eventTypes
}

func (sc ScopeClause) Tags() []Tag {
	return sc.tags
}

func (sc ScopeClause) AllTagsMustMatch() bool {
	return sc.allTagsMustMatch
}

/***** Tag *****/

// Tag is a key/value pair matched against the JSON payload of a record,
// e.g. T("ReserveNumber", "RES-00042").
type Tag struct {
	key string
	val string
}

func T(key string, val string) Tag {
	return Tag{key: key, val: val}
}

func (t Tag) Key() string {
	return t.key
}

func (t Tag) Val() string {
	return t.val
}

/***** ScopeBuilder *****/

// ScopeBuilder builds a generic stream scope to be used by store engines to build
// queries in their specific query language.
// It is designed to only allow useful combinations for charter workflows:
//
//   - empty scope
//   - (eventType OR eventType...)
//   - (tag OR tag...) / (tag AND tag...)
//   - ((eventType OR eventType...) AND (tag OR tag...))
//   - ((eventType OR eventType...) AND (tag AND tag...))
//   - ((eventType AND tag) OR (eventType AND tag)...) -> multiple ScopeClause(s)
//
// plus optional occurred-at bounds and a sequence number floor on the whole Scope.
type ScopeBuilder interface {
	// Matching starts a new ScopeClause.
	Matching() EmptyClauseBuilder

	// MatchingAnyEvent directly creates an empty Scope.
	MatchingAnyEvent() Scope
}

type EmptyClauseBuilder interface {
	// AnyEventTypeOf adds one or multiple event types to the current ScopeClause.
	//
	// It sanitizes the input:
	//	- removing empty event types ("")
	//	- sorting the event types
	//	- removing duplicate event types
	AnyEventTypeOf(eventType string, eventTypes ...string) ClauseBuilderLackingTags

	// AnyTagOf adds one or multiple Tag(s) to the current ScopeClause.
	//
	// It sanitizes the input:
	//	- removing empty/partial Tag(s) (key or val is "")
	//	- sorting the Tag(s)
	//	- removing duplicate Tag(s)
	AnyTagOf(tag Tag, tags ...Tag) ClauseBuilderLackingEventTypes

	AllTagsOf(tag Tag, tags ...Tag) ClauseBuilderLackingEventTypes
}

type ClauseBuilderLackingTags interface {
	AndAnyTagOf(tag Tag, tags ...Tag) CompletedClauseBuilder

	AndAllTagsOf(tag Tag, tags ...Tag) CompletedClauseBuilder

	// OrMatching finalizes the current ScopeClause and starts a new one.
	OrMatching() EmptyClauseBuilder

	// OccurredFrom bounds the whole Scope to records that occurred at or after the given time.
	OccurredFrom(from time.Time) OccurredBoundsBuilder

	// WithSequenceHigherThan bounds the whole Scope to records above the given sequence number.
	WithSequenceHigherThan(sequenceNumber MaxSequenceUint) BoundedScopeBuilder

	// Finalize returns the Scope once it has at least one ScopeClause with at least one event type OR one Tag.
	Finalize() Scope
}

type ClauseBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType string, eventTypes ...string) CompletedClauseBuilder

	// OrMatching finalizes the current ScopeClause and starts a new one.
	OrMatching() EmptyClauseBuilder

	OccurredFrom(from time.Time) OccurredBoundsBuilder

	WithSequenceHigherThan(sequenceNumber MaxSequenceUint) BoundedScopeBuilder

	Finalize() Scope
}

type CompletedClauseBuilder interface {
	// OrMatching finalizes the current ScopeClause and starts a new one.
	OrMatching() EmptyClauseBuilder

	OccurredFrom(from time.Time) OccurredBoundsBuilder

	WithSequenceHigherThan(sequenceNumber MaxSequenceUint) BoundedScopeBuilder

	Finalize() Scope
}

type OccurredBoundsBuilder interface {
	// AndOccurredUntil bounds the whole Scope to records that occurred at or before the given time.
	AndOccurredUntil(until time.Time) BoundedScopeBuilder

	WithSequenceHigherThan(sequenceNumber MaxSequenceUint) BoundedScopeBuilder

	Finalize() Scope
}

type BoundedScopeBuilder interface {
	Finalize() Scope
}

// scopeBuilder implements all the interfaces of ScopeBuilder
type scopeBuilder struct {
	scope         Scope
	currentClause ScopeClause
}

// BuildScope creates a ScopeBuilder which must eventually be finalized with Finalize() or MatchingAnyEvent().
func BuildScope() ScopeBuilder {
	return scopeBuilder{}
}

// Matching starts a new ScopeClause.
func (sb scopeBuilder) Matching() EmptyClauseBuilder {
	sb.currentClause = ScopeClause{}

	return sb
}

// AnyEventTypeOf adds one or multiple event types to the current ScopeClause expecting ANY of them to match.
//
// It sanitizes the input:
//   - removing empty event types ("")
//   - sorting the event types
//   - removing duplicate event types
func (sb scopeBuilder) AnyEventTypeOf(eventType string, eventTypes ...string) ClauseBuilderLackingTags {
	sb.currentClause.eventTypes = append(
		sb.currentClause.eventTypes,
		sb.sanitizeEventTypes(eventType, eventTypes...)...,
	)

	return sb
}

// AndAnyEventTypeOf adds one or multiple event types to the current ScopeClause expecting ANY of them to match.
//
// It sanitizes the input the same way as AnyEventTypeOf.
func (sb scopeBuilder) AndAnyEventTypeOf(eventType string, eventTypes ...string) CompletedClauseBuilder {
	sb.currentClause.eventTypes = append(
		sb.currentClause.eventTypes,
		sb.sanitizeEventTypes(eventType, eventTypes...)...,
	)

	return sb
}

func (sb scopeBuilder) sanitizeEventTypes(eventType string, eventTypes ...string) []string {
	allEventTypes := append([]string{eventType}, eventTypes...)
	allEventTypes = slices.DeleteFunc(
		allEventTypes,
		func(e string) bool {
			return e == ""
		})
	slices.Sort(allEventTypes)
	allEventTypes = slices.Compact(allEventTypes)
	allEventTypes = slices.Clip(allEventTypes)

	return allEventTypes
}

// AnyTagOf adds one or multiple Tag(s) to the current ScopeClause expecting ANY Tag to match.
//
// It sanitizes the input:
//   - removing empty/partial Tag(s) (key or val is "")
//   - sorting the Tag(s)
//   - removing duplicate Tag(s)
func (sb scopeBuilder) AnyTagOf(tag Tag, tags ...Tag) ClauseBuilderLackingEventTypes {
	sb.currentClause.tags = append(
		sb.currentClause.tags,
		sb.sanitizeTags(tag, tags...)...,
	)

	return sb
}

// AndAnyTagOf adds one or multiple Tag(s) to the current ScopeClause expecting ANY Tag to match.
//
// It sanitizes the input the same way as AnyTagOf.
func (sb scopeBuilder) AndAnyTagOf(tag Tag, tags ...Tag) CompletedClauseBuilder {
	sb.currentClause.tags = append(
		sb.currentClause.tags,
		sb.sanitizeTags(tag, tags...)...,
	)

	return sb
}

// AllTagsOf adds one or multiple Tag(s) to the current ScopeClause expecting ALL Tags to match.
//
// It sanitizes the input the same way as AnyTagOf.
func (sb scopeBuilder) AllTagsOf(tag Tag, tags ...Tag) ClauseBuilderLackingEventTypes {
	sb.currentClause.allTagsMustMatch = true

	sb.currentClause.tags = append(
		sb.currentClause.tags,
		sb.sanitizeTags(tag, tags...)...,
	)

	return sb
}

// AndAllTagsOf adds one or multiple Tag(s) to the current ScopeClause expecting ALL Tags to match.
//
// It sanitizes the input the same way as AnyTagOf.
func (sb scopeBuilder) AndAllTagsOf(tag Tag, tags ...Tag) CompletedClauseBuilder {
	sb.currentClause.allTagsMustMatch = true

	sb.currentClause.tags = append(
		sb.currentClause.tags,
		sb.sanitizeTags(tag, tags...)...,
	)

	return sb
}

func (sb scopeBuilder) sanitizeTags(tag Tag, tags ...Tag) []Tag {
	allTags := append([]Tag{tag}, tags...)
	allTags = slices.DeleteFunc(allTags, func(t Tag) bool { return len(t.key) == 0 || len(t.val) == 0 })
	slices.SortFunc(
		allTags,
		func(a, b Tag) int {
			if a.key != b.key {
				return strings.Compare(a.key, b.key)
			}

			return strings.Compare(a.val, b.val)
		})

	allTags = slices.Compact(allTags)
	allTags = slices.Clip(allTags)

	return allTags
}

// OrMatching finalizes the current ScopeClause and starts a new one.
func (sb scopeBuilder) OrMatching() EmptyClauseBuilder {
	sb.scope.clauses = append(sb.scope.clauses, sb.currentClause)
	sb.currentClause = ScopeClause{}

	return sb
}

// OccurredFrom bounds the whole Scope to records that occurred at or after the given time.
func (sb scopeBuilder) OccurredFrom(from time.Time) OccurredBoundsBuilder {
	sb.scope.occurredFrom = from

	return sb
}

// AndOccurredUntil bounds the whole Scope to records that occurred at or before the given time.
func (sb scopeBuilder) AndOccurredUntil(until time.Time) BoundedScopeBuilder {
	sb.scope.occurredUntil = until

	return sb
}

// WithSequenceHigherThan bounds the whole Scope to records above the given sequence number.
func (sb scopeBuilder) WithSequenceHigherThan(sequenceNumber MaxSequenceUint) BoundedScopeBuilder {
	sb.scope.sequenceHigherThan = sequenceNumber

	return sb
}

// MatchingAnyEvent directly creates an empty Scope.
func (sb scopeBuilder) MatchingAnyEvent() Scope {
	return sb.scope
}

// Finalize returns the Scope once it has at least one ScopeClause with at least one event type OR one Tag.
func (sb scopeBuilder) Finalize() Scope {
	sb.scope.clauses = append(sb.scope.clauses, sb.currentClause)

	return sb.scope
}
