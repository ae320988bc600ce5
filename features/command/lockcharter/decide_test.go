package lockcharter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/lockcharter"
)

func Test_Decide_Success_LockIsOrthogonalToLifecycle(t *testing.T) {
	// arrange - even a completed charter can be locked
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildCharterConfirmed("RES-00042", decimal.NewFromInt(200), now),
		core.BuildDispatchAcknowledged("RES-00042", "EMP-0019", "VEH-12", now),
		core.BuildServiceCheckpointReached("RES-00042", core.StatusOnDuty, now),
		core.BuildCharterCompleted("RES-00042", now, now),
	}

	command := lockcharter.BuildCommand("RES-00042", "billing dispute", "acct.mgr", now)

	// act
	result := lockcharter.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	locked, ok := result.Events[0].(core.CharterLocked)
	assert.True(t, ok, "Expected CharterLocked event")
	assert.Equal(t, "billing dispute", locked.Reason)
	assert.Equal(t, "acct.mgr", locked.LockedBy)
}

func Test_Decide_Idempotent_WhenAlreadyLocked(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildCharterLocked("RES-00042", "dispute", "acct.mgr", now),
	}

	command := lockcharter.BuildCommand("RES-00042", "dispute again", "acct.mgr", now)

	// act
	result := lockcharter.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.Empty(t, result.Events)
}

func Test_Decide_Refused_WhenCharterUnknownOrArchived(t *testing.T) {
	now := time.Now()

	// unknown reserve number
	result := lockcharter.Decide(nil, lockcharter.BuildCommand("RES-99999", "x", "a", now))
	assert.ErrorIs(t, result.HasError(), core.ErrCharterNotFound)

	// archived charter
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildCharterCancelled("RES-00042", "no-show", 0, decimal.Zero, now),
		core.BuildCharterArchived("RES-00042", "acct.mgr", now),
	}
	result = lockcharter.Decide(history, lockcharter.BuildCommand("RES-00042", "x", "a", now))
	assert.ErrorIs(t, result.HasError(), core.ErrCharterArchived)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(48*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}
