package charterbalance_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applypayment"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/charterbalance"
)

func Test_QueryHandler_Handle_ReturnsBalanceAfterChargesAndPayment(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	fakeClock := time.Unix(0, 0).UTC()

	bookHandler := bookcharter.NewCommandHandler(journal)
	chargeHandler := recordcharge.NewCommandHandler(journal)
	paymentHandler := applypayment.NewCommandHandler(journal)
	queryHandler := charterbalance.NewQueryHandler(journal)

	bookCmd := bookcharter.BuildCommand("RES-00042", "CL-0007", fakeClock.Add(72*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900), false, false, "", fakeClock)
	_, err := bookHandler.Handle(ctx, bookCmd)
	assert.NoError(t, err, "Should book the charter")

	chargeCmd := recordcharge.BuildCommand("RES-00042", "CHG-1", core.ChargeCharterFee, "charter fee",
		decimal.NewFromInt(1), decimal.NewFromInt(500), true, fakeClock.Add(time.Hour))
	_, err = chargeHandler.Handle(ctx, chargeCmd)
	assert.NoError(t, err, "Should record the charge")

	paymentCmd := applypayment.BuildCommand("RES-00042", "PAY-1",
		decimal.NewFromInt(200), "visa", "CR-1", "", fakeClock.Add(2*time.Hour))
	_, err = paymentHandler.Handle(ctx, paymentCmd)
	assert.NoError(t, err, "Should apply the payment")

	// act
	result, err := queryHandler.Handle(ctx, charterbalance.BuildQuery("RES-00042"))

	// assert
	assert.NoError(t, err, "Query should succeed")
	assert.True(t, result.TotalCharges.Equal(decimal.NewFromInt(525)), "got %s", result.TotalCharges)
	assert.True(t, result.TotalPayments.Equal(decimal.NewFromInt(200)), "got %s", result.TotalPayments)
	assert.True(t, result.BalanceDue.Equal(decimal.NewFromInt(325)), "got %s", result.BalanceDue)
	assert.Greater(t, result.GetSequenceNumber(), uint(0), "projection should track the stream sequence")
}

func Test_QueryHandler_Handle_ReturnsZeros_WhenCharterWasNeverBooked(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	queryHandler := charterbalance.NewQueryHandler(journal)

	// act
	result, err := queryHandler.Handle(ctx, charterbalance.BuildQuery("RES-09999"))

	// assert
	assert.NoError(t, err, "Query should succeed")
	assert.True(t, result.TotalCharges.IsZero())
	assert.True(t, result.TotalPayments.IsZero())
	assert.True(t, result.BalanceDue.IsZero())
}

func Test_QueryHandler_Handle_IgnoresOtherCharters(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	fakeClock := time.Unix(0, 0).UTC()

	bookHandler := bookcharter.NewCommandHandler(journal)
	chargeHandler := recordcharge.NewCommandHandler(journal)
	queryHandler := charterbalance.NewQueryHandler(journal)

	for _, reserve := range []core.ReserveNumberString{"RES-00042", "RES-00043"} {
		bookCmd := bookcharter.BuildCommand(reserve, "CL-0007", fakeClock.Add(72*time.Hour),
			"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900), false, false, "", fakeClock)
		_, err := bookHandler.Handle(ctx, bookCmd)
		assert.NoError(t, err, "Should book %s", reserve)
	}

	chargeCmd := recordcharge.BuildCommand("RES-00043", "CHG-1", core.ChargeCharterFee, "charter fee",
		decimal.NewFromInt(1), decimal.NewFromInt(500), true, fakeClock.Add(time.Hour))
	_, err := chargeHandler.Handle(ctx, chargeCmd)
	assert.NoError(t, err, "Should record the charge on the sibling charter")

	// act
	result, err := queryHandler.Handle(ctx, charterbalance.BuildQuery("RES-00042"))

	// assert
	assert.NoError(t, err, "Query should succeed")
	assert.True(t, result.TotalCharges.IsZero(), "charges on RES-00043 must not leak, got %s", result.TotalCharges)
}
