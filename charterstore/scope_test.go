package charterstore_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
)

//nolint:funlen
func Test_ScopeBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() charterstore.Scope
		validate func(t *testing.T, scope charterstore.Scope)
	}{
		{
			name: "matching_any_event_creates_empty_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().MatchingAnyEvent()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Empty(t, s.Clauses())
				assert.True(t, s.OccurredFrom().IsZero())
				assert.True(t, s.OccurredUntil().IsZero())
				assert.Equal(t, uint(0), s.SequenceHigherThan())
			},
		},
		{
			name: "single_event_type_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("CharterBooked").
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Equal(t, []string{"CharterBooked"}, s.Clauses()[0].EventTypes())
				assert.Empty(t, s.Clauses()[0].Tags())
				assert.False(t, s.Clauses()[0].AllTagsMustMatch())
			},
		},
		{
			name: "multiple_event_types_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("CharterBooked", "ChargeRecorded", "PaymentApplied").
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Equal(t,
					[]string{"ChargeRecorded", "CharterBooked", "PaymentApplied"},
					s.Clauses()[0].EventTypes(),
					"event types are sorted")
				assert.Empty(t, s.Clauses()[0].Tags())
			},
		},
		{
			name: "single_tag_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Empty(t, s.Clauses()[0].EventTypes())
				assert.Len(t, s.Clauses()[0].Tags(), 1)
				assert.Equal(t, "ReserveNumber", s.Clauses()[0].Tags()[0].Key())
				assert.Equal(t, "RES-00042", s.Clauses()[0].Tags()[0].Val())
				assert.False(t, s.Clauses()[0].AllTagsMustMatch())
			},
		},
		{
			name: "all_tags_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AllTagsOf(
						charterstore.T("ReserveNumber", "RES-00042"),
						charterstore.T("DriverID", "D-100")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Len(t, s.Clauses()[0].Tags(), 2)
				assert.True(t, s.Clauses()[0].AllTagsMustMatch())
			},
		},
		{
			name: "event_types_and_any_tag_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("ChargeRecorded", "ChargeRemoved").
					AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Equal(t, []string{"ChargeRecorded", "ChargeRemoved"}, s.Clauses()[0].EventTypes())
				assert.Len(t, s.Clauses()[0].Tags(), 1)
				assert.False(t, s.Clauses()[0].AllTagsMustMatch())
			},
		},
		{
			name: "tags_then_event_types_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyTagOf(charterstore.T("DriverID", "D-100")).
					AndAnyEventTypeOf("DutyDayRecorded").
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 1)
				assert.Equal(t, []string{"DutyDayRecorded"}, s.Clauses()[0].EventTypes())
				assert.Len(t, s.Clauses()[0].Tags(), 1)
			},
		},
		{
			name: "multiple_clauses_via_or_matching",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("PaymentApplied").
					AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
					OrMatching().
					AnyEventTypeOf("CreditApplied").
					AndAnyTagOf(charterstore.T("TargetReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses(), 2)
				assert.Equal(t, []string{"PaymentApplied"}, s.Clauses()[0].EventTypes())
				assert.Equal(t, "ReserveNumber", s.Clauses()[0].Tags()[0].Key())
				assert.Equal(t, []string{"CreditApplied"}, s.Clauses()[1].EventTypes())
				assert.Equal(t, "TargetReserveNumber", s.Clauses()[1].Tags()[0].Key())
			},
		},
		{
			name: "occurred_bounds_on_whole_scope",
			build: func() charterstore.Scope {
				from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				until := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("DutyDayRecorded").
					AndAnyTagOf(charterstore.T("DriverID", "D-100")).
					OccurredFrom(from).
					AndOccurredUntil(until).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), s.OccurredFrom())
				assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), s.OccurredUntil())
				assert.Equal(t, uint(0), s.SequenceHigherThan())
				assert.Len(t, s.Clauses(), 1)
			},
		},
		{
			name: "occurred_from_without_until",
			build: func() charterstore.Scope {
				from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("CharterBooked").
					OccurredFrom(from).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), s.OccurredFrom())
				assert.True(t, s.OccurredUntil().IsZero())
			},
		},
		{
			name: "sequence_floor_on_whole_scope",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("DutyDayRecorded").
					WithSequenceHigherThan(12345).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Equal(t, uint(12345), s.SequenceHigherThan())
				assert.True(t, s.OccurredFrom().IsZero())
				assert.True(t, s.OccurredUntil().IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := tt.build()
			tt.validate(t, scope)
		})
	}
}

//nolint:funlen
func Test_ScopeBuilder_InputSanitization(t *testing.T) {
	tests := []struct {
		name     string
		build    func() charterstore.Scope
		validate func(t *testing.T, scope charterstore.Scope)
	}{
		{
			name: "empty_event_types_are_removed",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("", "CharterBooked", "").
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Equal(t, []string{"CharterBooked"}, s.Clauses()[0].EventTypes())
			},
		},
		{
			name: "duplicate_event_types_are_removed",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyEventTypeOf("ChargeRecorded", "CharterBooked", "ChargeRecorded").
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Equal(t, []string{"ChargeRecorded", "CharterBooked"}, s.Clauses()[0].EventTypes())
			},
		},
		{
			name: "partial_tags_are_removed",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyTagOf(
						charterstore.T("", "RES-00042"),
						charterstore.T("ReserveNumber", ""),
						charterstore.T("ReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses()[0].Tags(), 1)
				assert.Equal(t, "ReserveNumber", s.Clauses()[0].Tags()[0].Key())
			},
		},
		{
			name: "duplicate_tags_are_removed",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyTagOf(
						charterstore.T("ReserveNumber", "RES-00042"),
						charterstore.T("ReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				assert.Len(t, s.Clauses()[0].Tags(), 1)
			},
		},
		{
			name: "tags_are_sorted_by_key_then_value",
			build: func() charterstore.Scope {
				return charterstore.BuildScope().
					Matching().
					AnyTagOf(
						charterstore.T("ReserveNumber", "RES-00043"),
						charterstore.T("DriverID", "D-100"),
						charterstore.T("ReserveNumber", "RES-00042")).
					Finalize()
			},
			validate: func(t *testing.T, s charterstore.Scope) {
				tags := s.Clauses()[0].Tags()
				assert.Len(t, tags, 3)
				assert.Equal(t, "DriverID", tags[0].Key())
				assert.Equal(t, "RES-00042", tags[1].Val())
				assert.Equal(t, "RES-00043", tags[2].Val())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := tt.build()
			tt.validate(t, scope)
		})
	}
}

func Test_Scope_Hash_Deterministic(t *testing.T) {
	// arrange
	build := func() charterstore.Scope {
		return charterstore.BuildScope().
			Matching().
			AnyEventTypeOf("ChargeRecorded", "ChargeRemoved").
			AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
			Finalize()
	}

	// act
	first := build().Hash()
	second := build().Hash()

	// assert
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "sha256:"))
}

func Test_Scope_Hash_DifferentScopes_DifferentHashes(t *testing.T) {
	// arrange
	base := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("ChargeRecorded").
		AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
		Finalize()

	otherCharter := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("ChargeRecorded").
		AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00043")).
		Finalize()

	otherEventType := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("ChargeRemoved").
		AndAnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
		Finalize()

	// act + assert
	assert.NotEqual(t, base.Hash(), otherCharter.Hash())
	assert.NotEqual(t, base.Hash(), otherEventType.Hash())
	assert.NotEqual(t, otherCharter.Hash(), otherEventType.Hash())
}

func Test_Scope_Hash_IgnoresInputOrder(t *testing.T) {
	// arrange
	oneOrder := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("CharterBooked", "ChargeRecorded").
		Finalize()

	otherOrder := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("ChargeRecorded", "CharterBooked").
		Finalize()

	// act + assert: sanitization sorts, so the order of inputs cannot matter
	assert.Equal(t, oneOrder.Hash(), otherOrder.Hash())
}

func Test_Scope_ResumeAfterSequence(t *testing.T) {
	// arrange
	original := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf("DutyDayRecorded").
		AndAnyTagOf(charterstore.T("DriverID", "D-100")).
		Finalize()

	// act
	resumed := original.ResumeAfterSequence(4711)

	// assert
	assert.Equal(t, uint(4711), resumed.SequenceHigherThan())
	assert.Equal(t, uint(0), original.SequenceHigherThan(), "the original scope is not mutated")
	assert.Equal(t, original.Clauses(), resumed.Clauses())
	assert.NotEqual(t, original.Hash(), resumed.Hash(), "the sequence floor is part of the identity")
}
