package charterops_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/hossummary"
	"github.com/arrowlimo/arrow-limo-sub005/testutil/fakes"
)

func Test_Scheduler_ReconcilesTheFeedOnInterval(t *testing.T) {
	// arrange
	ctx := context.Background()
	fx := givenFixedClockService(t, opsStart())
	givenBookedCharter(ctx, t, fx, "RES-80001")

	_, err := fx.service.RecordCharge(ctx, "RES-80001", core.ChargeCharterFee, "Charter service",
		decimal.NewFromInt(1), decimal.NewFromInt(500), false)
	assert.NoError(t, err)

	feed := fakes.NewBankFeedFake()
	feed.AddPosting(charterops.BankPosting{
		PostingID:     "POST-S-001",
		ReserveNumber: "RES-80001",
		Amount:        decimal.NewFromInt(500),
		Method:        "eft",
		PostedAt:      opsStart().Add(-time.Hour),
	})

	scheduler := charterops.NewScheduler(fx.service, feed,
		charterops.WithReconcileInterval(10*time.Millisecond),
		charterops.WithHOSRefreshInterval(time.Hour))

	// act
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// assert
	assert.Eventually(t, func() bool {
		balance, balanceErr := fx.service.GetCharterBalance(ctx, "RES-80001")

		return balanceErr == nil && balance.BalanceDue.IsZero()
	}, 2*time.Second, 10*time.Millisecond, "the posting should settle the balance")
}

func Test_Scheduler_WarmsDutySummarySnapshots(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Date(2025, time.June, 6, 18, 0, 0, 0, time.UTC)
	fx := givenFixedClockService(t, now)

	onDutyAt := time.Date(2025, time.June, 6, 6, 0, 0, 0, time.UTC)
	offDutyAt := time.Date(2025, time.June, 6, 14, 0, 0, 0, time.UTC)
	err := fx.service.RecordDutyDay(ctx, "D-100", onDutyAt, offDutyAt, 30, false, "")
	assert.NoError(t, err)

	scheduler := charterops.NewScheduler(fx.service, fakes.NewBankFeedFake(),
		charterops.WithHOSRefreshInterval(10*time.Millisecond),
		charterops.WithReconcileInterval(time.Hour))

	// act
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// assert
	query := hossummary.BuildQuery("D-100", core.ToDutyDate(now))
	assert.Eventually(t, func() bool {
		saved, loadErr := fx.journal.LoadSnapshot(ctx, query.SnapshotType(), hossummary.BuildDutyScope(query).Hash())

		return loadErr == nil && saved != nil
	}, 2*time.Second, 10*time.Millisecond, "the refresh should persist the duty projection")
}

func Test_Scheduler_StopBeforeStartIsSafe(t *testing.T) {
	// arrange
	fx := givenFixedClockService(t, opsStart())
	scheduler := charterops.NewScheduler(fx.service, fakes.NewBankFeedFake())

	// act + assert: returns without blocking or panicking
	scheduler.Stop()
}

// givenFixedClockService builds a service whose clock always reads the same
// instant. Scheduler goroutines call the clock concurrently, so the tests
// here avoid the ticking closure the single-goroutine tests use.
func givenFixedClockService(t *testing.T, now time.Time) serviceFixture {
	t.Helper()

	journal := memoryengine.NewJournal()
	directory := fakes.NewEmployeeDirectoryFake()
	clients := fakes.NewClientDirectoryFake()
	vault := fakes.NewReceiptVaultFake()

	clients.AddClient(charterops.ClientRecord{ClientID: "CL-1001", Name: "Prairie Events Ltd."})
	directory.AddDriver("D-100", decimal.NewFromInt(30))

	service := charterops.NewService(journal, directory, clients, vault,
		charterops.WithClock(func() time.Time { return now }))

	return serviceFixture{
		journal:   journal,
		service:   service,
		directory: directory,
		clients:   clients,
		vault:     vault,
	}
}
