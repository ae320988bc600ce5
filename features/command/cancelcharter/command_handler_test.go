package cancelcharter_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/cancelcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/completecharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/confirmcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/dispatchcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/progressservice"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
)

func Test_CommandHandler_Handle_Success_StrikesOpenCharges(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createCancelHandler(t, journal)

	fakeClock := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-70001")

	// arrange
	givenConfirmedCharterWithCharges(ctx, t, journal, reserveNumber, fakeClock)

	// act
	cancelCmd := cancelcharter.BuildCommand(
		reserveNumber,
		"booking.desk",
		"client called off the event",
		"CRD-RET-70001",
		fakeClock.Add(time.Hour),
	)
	result, err := handler.Handle(ctx, cancelCmd)

	// assert
	assert.NoError(t, err, "Should successfully cancel charter")
	assertNonIdempotentResult(t, result)
	verifyCancellationPersisted(ctx, t, journal, reserveNumber)

	cancelled := lastCancellationEvent(ctx, t, journal, reserveNumber)
	assert.Equal(t, 2, cancelled.RemovedChargeCount, "Cancellation should strike both open charges")
	assert.True(t, decimal.NewFromInt(900).Equal(cancelled.RemovedChargeTotal),
		"Struck total should cover both charge lines")
}

func Test_CommandHandler_Handle_Idempotent_CharterAlreadyCancelled(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createCancelHandler(t, journal)

	fakeClock := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-70002")

	// arrange
	givenConfirmedCharterWithCharges(ctx, t, journal, reserveNumber, fakeClock)

	cancelCmd := cancelcharter.BuildCommand(
		reserveNumber,
		"booking.desk",
		"client called off the event",
		"CRD-RET-70002",
		fakeClock.Add(time.Hour),
	)
	_, err := handler.Handle(ctx, cancelCmd)
	assert.NoError(t, err, "Should successfully cancel charter first time")

	recordCountAfterCancel := len(queryCharterRecords(ctx, t, journal, reserveNumber))

	// act
	result, err := handler.Handle(ctx, cancelCmd)

	// assert
	assert.NoError(t, err, "Should succeed (idempotent) when charter already cancelled")
	assertIdempotentResult(t, result)
	verifyNoNewEventsAppended(ctx, t, journal, reserveNumber, recordCountAfterCancel)
}

func Test_CommandHandler_Handle_Error_CompletedCharterLeavesAuditRecord(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createCancelHandler(t, journal)

	fakeClock := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-70003")

	// arrange
	givenCompletedCharter(ctx, t, journal, reserveNumber, fakeClock)

	// act
	cancelCmd := cancelcharter.BuildCommand(
		reserveNumber,
		"booking.desk",
		"client dispute",
		"CRD-RET-70003",
		fakeClock.Add(12*time.Hour),
	)
	result, err := handler.Handle(ctx, cancelCmd)

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidTransition, "Should refuse to cancel a completed charter")
	assertNonIdempotentResult(t, result)
	verifyRefusalRecorded(ctx, t, journal, reserveNumber)
}

func Test_CommandHandler_Handle_RetriesOnSequenceConflict(t *testing.T) {
	// setup
	ctx := context.Background()
	inner := memoryengine.NewJournal()

	fakeClock := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-70004")

	// arrange
	givenConfirmedCharterWithCharges(ctx, t, inner, reserveNumber, fakeClock)

	lateChargeHandler := createChargeHandler(t, inner)
	journal := &contendedJournal{
		Journal: inner,
		interfere: func(interfereCtx context.Context) error {
			lateChargeCmd := recordcharge.BuildCommand(
				reserveNumber,
				"CHG-70004-LATE",
				core.ChargeMisc,
				"Parking",
				decimal.NewFromInt(1),
				decimal.NewFromInt(12),
				false,
				fakeClock.Add(30*time.Minute),
			)
			_, interfereErr := lateChargeHandler.Handle(interfereCtx, lateChargeCmd)

			return interfereErr
		},
	}
	handler := createCancelHandler(t, journal)

	// act
	cancelCmd := cancelcharter.BuildCommand(
		reserveNumber,
		"booking.desk",
		"client called off the event",
		"CRD-RET-70004",
		fakeClock.Add(time.Hour),
	)
	result, err := handler.Handle(ctx, cancelCmd)

	// assert
	assert.NoError(t, err, "Should succeed after retrying the sequence conflict")
	assert.Equal(t, 2, result.RetryAttempts, "Should have needed a second attempt")
	assertNonIdempotentResult(t, result)

	cancelled := lastCancellationEvent(ctx, t, journal, reserveNumber)
	assert.Equal(t, 3, cancelled.RemovedChargeCount,
		"Retry should re-read history and strike the charge that won the race")
}

// Test helper functions

// contendedJournal lands a competing append between the handler's query and its
// own append, so the handler's first attempt fails with a sequence conflict.
type contendedJournal struct {
	*memoryengine.Journal
	interfere  func(ctx context.Context) error
	interfered bool
}

func (j *contendedJournal) Append(
	ctx context.Context,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
	record charterstore.Record,
	additionalRecords ...charterstore.Record,
) error {
	if !j.interfered {
		j.interfered = true

		if interfereErr := j.interfere(ctx); interfereErr != nil {
			return interfereErr
		}
	}

	return j.Journal.Append(ctx, scope, expectedMaxSequenceNumber, record, additionalRecords...)
}

func createCancelHandler(t *testing.T, journal cancelcharter.Journal) cancelcharter.CommandHandler {
	t.Helper()

	handler := cancelcharter.NewCommandHandler(journal)

	return handler
}

func createChargeHandler(t *testing.T, journal recordcharge.Journal) recordcharge.CommandHandler {
	t.Helper()

	handler := recordcharge.NewCommandHandler(journal)

	return handler
}

func givenConfirmedCharterWithCharges(
	ctx context.Context,
	t *testing.T,
	journal *memoryengine.Journal,
	reserveNumber core.ReserveNumberString,
	fakeClock time.Time,
) {
	t.Helper()

	bookCmd := bookcharter.BuildCommand(
		reserveNumber,
		"CL-1001",
		fakeClock.Add(48*time.Hour),
		"Arrow Limousine Base",
		"Rogers Place",
		decimal.NewFromInt(900),
		false,
		false,
		"",
		fakeClock,
	)
	_, err := bookcharter.NewCommandHandler(journal).Handle(ctx, bookCmd)
	assert.NoError(t, err, "Should successfully book charter")

	confirmCmd := confirmcharter.BuildCommand(
		reserveNumber,
		decimal.NewFromInt(200),
		fakeClock.Add(time.Minute),
	)
	_, err = confirmcharter.NewCommandHandler(journal).Handle(ctx, confirmCmd)
	assert.NoError(t, err, "Should successfully confirm charter")

	chargeHandler := recordcharge.NewCommandHandler(journal)

	firstChargeCmd := recordcharge.BuildCommand(
		reserveNumber,
		"CHG-1",
		core.ChargeCharterFee,
		"Charter service",
		decimal.NewFromInt(1),
		decimal.NewFromInt(500),
		false,
		fakeClock.Add(2*time.Minute),
	)
	_, err = chargeHandler.Handle(ctx, firstChargeCmd)
	assert.NoError(t, err, "Should successfully record first charge")

	secondChargeCmd := recordcharge.BuildCommand(
		reserveNumber,
		"CHG-2",
		core.ChargeExtraTime,
		"Extra time",
		decimal.NewFromInt(2),
		decimal.NewFromInt(200),
		false,
		fakeClock.Add(3*time.Minute),
	)
	_, err = chargeHandler.Handle(ctx, secondChargeCmd)
	assert.NoError(t, err, "Should successfully record second charge")
}

func givenCompletedCharter(
	ctx context.Context,
	t *testing.T,
	journal *memoryengine.Journal,
	reserveNumber core.ReserveNumberString,
	fakeClock time.Time,
) {
	t.Helper()

	givenConfirmedCharterWithCharges(ctx, t, journal, reserveNumber, fakeClock)

	dispatchCmd := dispatchcharter.BuildCommand(
		reserveNumber,
		"D-100",
		"V-7",
		fakeClock.Add(46*time.Hour),
	)
	_, err := dispatchcharter.NewCommandHandler(journal).Handle(ctx, dispatchCmd)
	assert.NoError(t, err, "Should successfully dispatch charter")

	onDutyCmd := progressservice.BuildCommand(
		reserveNumber,
		core.StatusOnDuty,
		fakeClock.Add(47*time.Hour),
	)
	_, err = progressservice.NewCommandHandler(journal).Handle(ctx, onDutyCmd)
	assert.NoError(t, err, "Should successfully report driver on duty")

	completeCmd := completecharter.BuildCommand(
		reserveNumber,
		fakeClock.Add(54*time.Hour),
		fakeClock.Add(54*time.Hour),
	)
	_, err = completecharter.NewCommandHandler(journal).Handle(ctx, completeCmd)
	assert.NoError(t, err, "Should successfully complete charter")
}

func queryCharterRecords(
	ctx context.Context,
	t *testing.T,
	journal cancelcharter.Journal,
	reserveNumber core.ReserveNumberString,
) charterstore.Records {
	t.Helper()

	records, _, err := journal.Query(ctx, cancelcharter.BuildCharterScope(reserveNumber))
	assert.NoError(t, err, "Should query charter records successfully")

	return records
}

func lastCancellationEvent(
	ctx context.Context,
	t *testing.T,
	journal cancelcharter.Journal,
	reserveNumber core.ReserveNumberString,
) core.CharterCancelled {
	t.Helper()

	records := queryCharterRecords(ctx, t, journal, reserveNumber)

	history, err := shell.DomainEventsFrom(records)
	assert.NoError(t, err, "Should unmarshal charter history successfully")

	for i := len(history) - 1; i >= 0; i-- {
		if cancelled, ok := history[i].(core.CharterCancelled); ok {
			return cancelled
		}
	}

	t.Fatal("Should have a CharterCancelled event in the charter history")

	return core.CharterCancelled{}
}

func verifyCancellationPersisted(
	ctx context.Context,
	t *testing.T,
	journal cancelcharter.Journal,
	reserveNumber core.ReserveNumberString,
) {
	t.Helper()

	records := queryCharterRecords(ctx, t, journal, reserveNumber)
	assert.Greater(t, len(records), 0, "Should have events persisted")

	if len(records) > 0 {
		lastRecord := records[len(records)-1]
		assert.Equal(t, core.CharterCancelledEventType, lastRecord.EventType,
			"Last event should be CharterCancelled")
	}
}

func verifyRefusalRecorded(
	ctx context.Context,
	t *testing.T,
	journal cancelcharter.Journal,
	reserveNumber core.ReserveNumberString,
) {
	t.Helper()

	records := queryCharterRecords(ctx, t, journal, reserveNumber)
	assert.Greater(t, len(records), 0, "Should have events persisted")

	if len(records) > 0 {
		lastRecord := records[len(records)-1]
		assert.Equal(t, core.CharterCancellationRefusedEventType, lastRecord.EventType,
			"Refused cancellation should leave a CharterCancellationRefused audit event")
	}
}

func verifyNoNewEventsAppended(
	ctx context.Context,
	t *testing.T,
	journal cancelcharter.Journal,
	reserveNumber core.ReserveNumberString,
	expectedCount int,
) {
	t.Helper()

	records := queryCharterRecords(ctx, t, journal, reserveNumber)
	assert.Equal(t, expectedCount, len(records),
		"Should have no new events for idempotent operation")
}

func assertIdempotentResult(t *testing.T, result shell.HandlerResult) {
	t.Helper()
	assert.True(t, result.Idempotent, "Operation should be idempotent")
}

func assertNonIdempotentResult(t *testing.T, result shell.HandlerResult) {
	t.Helper()
	assert.False(t, result.Idempotent, "Operation should not be idempotent")
}
