package helper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/postgresengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// GivenUniqueReserveNumber returns a reserve number no other test run uses, so
// tests against a shared database stay isolated without truncating tables.
func GivenUniqueReserveNumber(t testing.TB) core.ReserveNumberString {
	t.Helper()

	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return core.ReserveNumberString("RES-" + id.String())
}

// QueryMaxSequenceBeforeAppend reads the current stream maximum for the scope,
// as arrange step for appends.
func QueryMaxSequenceBeforeAppend(
	t testing.TB,
	ctx context.Context,
	journal postgresengine.Journal,
	scope charterstore.Scope,
) charterstore.MaxSequenceUint {

	t.Helper()

	_, maxSequenceBeforeAppend, err := journal.Query(ctx, scope)
	assert.NoError(t, err, "error in arranging test data")

	return maxSequenceBeforeAppend
}

// ScopeAllLifecycleEventsForOneCharter builds the scope covering the lifecycle
// events of a single charter, the shape command handlers use.
func ScopeAllLifecycleEventsForOneCharter(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterConfirmedEventType,
			core.DispatchAcknowledgedEventType,
			core.CharterCancelledEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}

// CleanUpCharterEvents removes all journal rows of one charter. Registered as
// t.Cleanup by tests that write through a pgx pool.
func CleanUpCharterEvents(t testing.TB, ctx context.Context, pool *pgxpool.Pool, reserveNumber core.ReserveNumberString) {
	t.Helper()

	_, err := pool.Exec(ctx,
		`DELETE FROM charter_journal WHERE payload @> jsonb_build_object('ReserveNumber', $1::text)`,
		string(reserveNumber))
	assert.NoError(t, err, "error in cleaning up test data")
}

// CleanUpSnapshots removes all snapshot rows of one projection type.
func CleanUpSnapshots(t testing.TB, ctx context.Context, pool *pgxpool.Pool, projectionType string) {
	t.Helper()

	_, err := pool.Exec(ctx,
		`DELETE FROM charter_snapshots WHERE projection_type = $1`,
		projectionType)
	assert.NoError(t, err, "error in cleaning up test data")
}
