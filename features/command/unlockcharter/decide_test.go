package unlockcharter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/unlockcharter"
)

func Test_Decide_Success_UnlockReleasesTheFreeze(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildCharterLocked("RES-00042", "dispute", "acct.mgr", now.Add(-time.Hour)),
	}

	command := unlockcharter.BuildCommand("RES-00042", "acct.mgr", now)

	// act
	result := unlockcharter.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	unlocked, ok := result.Events[0].(core.CharterUnlocked)
	assert.True(t, ok, "Expected CharterUnlocked event")
	assert.Equal(t, "acct.mgr", unlocked.UnlockedBy)

	view := core.ReduceCharter(append(history, result.Events...))
	assert.False(t, view.Locked)
}

func Test_Decide_Idempotent_WhenNotLocked(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	// act
	result := unlockcharter.Decide(history, unlockcharter.BuildCommand("RES-00042", "acct.mgr", now))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
}

func Test_Decide_Idempotent_AfterLockUnlockCycle(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildCharterLocked("RES-00042", "dispute", "acct.mgr", now.Add(-2*time.Hour)),
		core.BuildCharterUnlocked("RES-00042", "acct.mgr", now.Add(-time.Hour)),
	}

	// act
	result := unlockcharter.Decide(history, unlockcharter.BuildCommand("RES-00042", "acct.mgr", now))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(48*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}
