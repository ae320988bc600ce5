package applypayment_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applypayment"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/confirmcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/lockcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
)

const clientID = core.ClientIDString("CL-1001")

func Test_CommandHandler_Handle_Success_SplitsExcessIntoCredit(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createPaymentHandler(t, journal)

	fakeClock := time.Date(2025, 8, 4, 11, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-72001")

	// arrange
	givenConfirmedCharterWithCharge(ctx, t, journal, reserveNumber, fakeClock)

	// act
	paymentCmd := applypayment.BuildCommand(
		reserveNumber,
		"PAY-2025-0401",
		decimal.NewFromInt(450),
		"eft",
		"CRD-72001-1",
		core.CreditOverpay,
		fakeClock.Add(time.Hour),
	)
	result, err := handler.Handle(ctx, paymentCmd)

	// assert
	assert.NoError(t, err, "Should successfully apply payment")
	assertNonIdempotentResult(t, result)

	payment := lastPaymentEvent(ctx, t, journal, reserveNumber)
	assert.Equal(t, "PAY-2025-0401", payment.PaymentID, "Payment ID should be persisted")
	assert.True(t, decimal.NewFromInt(400).Equal(payment.AmountApplied),
		"Payment should settle the balance due")
	assert.True(t, decimal.NewFromInt(50).Equal(payment.ExcessAmount),
		"Amount beyond the balance should be flagged as excess")

	verifyExcessCreditIssued(ctx, t, journal, reserveNumber, decimal.NewFromInt(50))
}

func Test_CommandHandler_Handle_Idempotent_DuplicatePaymentID(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createPaymentHandler(t, journal)

	fakeClock := time.Date(2025, 8, 4, 11, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-72002")

	// arrange
	givenConfirmedCharterWithCharge(ctx, t, journal, reserveNumber, fakeClock)

	paymentCmd := applypayment.BuildCommand(
		reserveNumber,
		"PAY-2025-0402",
		decimal.NewFromInt(250),
		"eft",
		"CRD-72002-1",
		core.CreditOverpay,
		fakeClock.Add(time.Hour),
	)
	_, err := handler.Handle(ctx, paymentCmd)
	assert.NoError(t, err, "Should successfully apply payment first time")

	recordCountAfterPayment := len(queryCharterRecords(ctx, t, journal, reserveNumber))

	// act
	retriedCmd := applypayment.BuildCommand(
		reserveNumber,
		"PAY-2025-0402",
		decimal.NewFromInt(250),
		"eft",
		"CRD-72002-2",
		core.CreditOverpay,
		fakeClock.Add(2*time.Hour),
	)
	result, err := handler.Handle(ctx, retriedCmd)

	// assert
	assert.NoError(t, err, "Should succeed (idempotent) when payment ID was already applied")
	assertIdempotentResult(t, result)

	records := queryCharterRecords(ctx, t, journal, reserveNumber)
	assert.Equal(t, recordCountAfterPayment, len(records),
		"Should have no new events for idempotent operation")
}

func Test_CommandHandler_Handle_Error_CharterLocked(t *testing.T) {
	// setup
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	handler := createPaymentHandler(t, journal)

	fakeClock := time.Date(2025, 8, 4, 11, 0, 0, 0, time.UTC)
	reserveNumber := core.ReserveNumberString("RES-72003")

	// arrange
	givenConfirmedCharterWithCharge(ctx, t, journal, reserveNumber, fakeClock)

	lockCmd := lockcharter.BuildCommand(
		reserveNumber,
		"billing dispute under review",
		"ops.manager",
		fakeClock.Add(30*time.Minute),
	)
	_, err := lockcharter.NewCommandHandler(journal).Handle(ctx, lockCmd)
	assert.NoError(t, err, "Should successfully lock charter")

	recordCountAfterLock := len(queryCharterRecords(ctx, t, journal, reserveNumber))

	// act
	paymentCmd := applypayment.BuildCommand(
		reserveNumber,
		"PAY-2025-0403",
		decimal.NewFromInt(250),
		"eft",
		"CRD-72003-1",
		core.CreditOverpay,
		fakeClock.Add(time.Hour),
	)
	_, err = handler.Handle(ctx, paymentCmd)

	// assert
	assert.ErrorIs(t, err, core.ErrCharterLocked, "Should refuse a payment on a locked charter")

	records := queryCharterRecords(ctx, t, journal, reserveNumber)
	assert.Equal(t, recordCountAfterLock, len(records),
		"Refused payment should not append anything")
}

// Test helper functions

func createPaymentHandler(t *testing.T, journal applypayment.Journal) applypayment.CommandHandler {
	t.Helper()

	handler := applypayment.NewCommandHandler(journal)

	return handler
}

func givenConfirmedCharterWithCharge(
	ctx context.Context,
	t *testing.T,
	journal *memoryengine.Journal,
	reserveNumber core.ReserveNumberString,
	fakeClock time.Time,
) {
	t.Helper()

	bookCmd := bookcharter.BuildCommand(
		reserveNumber,
		clientID,
		fakeClock.Add(48*time.Hour),
		"Arrow Limousine Base",
		"Rogers Place",
		decimal.NewFromInt(400),
		false,
		false,
		"",
		fakeClock,
	)
	_, err := bookcharter.NewCommandHandler(journal).Handle(ctx, bookCmd)
	assert.NoError(t, err, "Should successfully book charter")

	confirmCmd := confirmcharter.BuildCommand(
		reserveNumber,
		decimal.Zero,
		fakeClock.Add(time.Minute),
	)
	_, err = confirmcharter.NewCommandHandler(journal).Handle(ctx, confirmCmd)
	assert.NoError(t, err, "Should successfully confirm charter")

	chargeCmd := recordcharge.BuildCommand(
		reserveNumber,
		"CHG-1",
		core.ChargeCharterFee,
		"Charter service",
		decimal.NewFromInt(1),
		decimal.NewFromInt(400),
		false,
		fakeClock.Add(2*time.Minute),
	)
	_, err = recordcharge.NewCommandHandler(journal).Handle(ctx, chargeCmd)
	assert.NoError(t, err, "Should successfully record charge")
}

func queryCharterRecords(
	ctx context.Context,
	t *testing.T,
	journal applypayment.Journal,
	reserveNumber core.ReserveNumberString,
) charterstore.Records {
	t.Helper()

	records, _, err := journal.Query(ctx, applypayment.BuildCharterScope(reserveNumber))
	assert.NoError(t, err, "Should query charter records successfully")

	return records
}

func lastPaymentEvent(
	ctx context.Context,
	t *testing.T,
	journal applypayment.Journal,
	reserveNumber core.ReserveNumberString,
) core.PaymentApplied {
	t.Helper()

	records := queryCharterRecords(ctx, t, journal, reserveNumber)

	history, err := shell.DomainEventsFrom(records)
	assert.NoError(t, err, "Should unmarshal charter history successfully")

	for i := len(history) - 1; i >= 0; i-- {
		if payment, ok := history[i].(core.PaymentApplied); ok {
			return payment
		}
	}

	t.Fatal("Should have a PaymentApplied event in the charter history")

	return core.PaymentApplied{}
}

// verifyExcessCreditIssued queries the client's credit stream directly since
// credits live outside the charter payment scope.
func verifyExcessCreditIssued(
	ctx context.Context,
	t *testing.T,
	journal applypayment.Journal,
	reserveNumber core.ReserveNumberString,
	expectedAmount decimal.Decimal,
) {
	t.Helper()

	creditScope := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.CreditIssuedEventType).
		AndAnyTagOf(charterstore.T("ClientID", clientID)).
		Finalize()

	records, _, err := journal.Query(ctx, creditScope)
	assert.NoError(t, err, "Should query credit records successfully")
	assert.Greater(t, len(records), 0, "Should have a credit issued for the excess")

	if len(records) == 0 {
		return
	}

	history, err := shell.DomainEventsFrom(records)
	assert.NoError(t, err, "Should unmarshal credit history successfully")

	credit, ok := history[len(history)-1].(core.CreditIssued)
	assert.True(t, ok, "Last credit record should be a CreditIssued event")
	assert.Equal(t, reserveNumber, credit.SourceReserveNumber,
		"Credit should reference the overpaid charter")
	assert.True(t, expectedAmount.Equal(credit.Amount), "Credit should carry the excess amount")
	assert.Equal(t, core.CreditOverpay, credit.ReasonCode, "Credit reason should be overpay")
}

func assertIdempotentResult(t *testing.T, result shell.HandlerResult) {
	t.Helper()
	assert.True(t, result.Idempotent, "Operation should be idempotent")
}

func assertNonIdempotentResult(t *testing.T, result shell.HandlerResult) {
	t.Helper()
	assert.False(t, result.Idempotent, "Operation should not be idempotent")
}
