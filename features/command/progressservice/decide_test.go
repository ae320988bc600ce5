package progressservice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/progressservice"
)

func Test_Decide_Success_WalksCheckpointsStrictlyForward(t *testing.T) {
	// arrange - walk the full service flow one checkpoint at a time
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)

	checkpoints := []core.CharterStatus{
		core.StatusOnDuty,
		core.StatusOnLocation,
		core.StatusPassengersLoaded,
		core.StatusEnRoute,
		core.StatusAtEvent,
		core.StatusReturnJourney,
	}

	for i, checkpoint := range checkpoints {
		command := progressservice.BuildCommand("RES-00042", checkpoint, now.Add(time.Duration(i)*time.Minute))

		// act
		result := progressservice.Decide(history, command)

		// assert
		assert.Equal(t, "success", result.Outcome, "checkpoint %s should be reachable", checkpoint)

		reached, ok := result.Events[0].(core.ServiceCheckpointReached)
		assert.True(t, ok, "Expected ServiceCheckpointReached event")
		assert.Equal(t, checkpoint, reached.Checkpoint)

		history = append(history, result.Events[0])
	}
}

func Test_Decide_Refused_WhenCheckpointIsSkipped(t *testing.T) {
	// arrange - charter is on duty, en_route would skip two checkpoints
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)
	history = append(history, core.BuildServiceCheckpointReached("RES-00042", core.StatusOnDuty, now))

	command := progressservice.BuildCommand("RES-00042", core.StatusEnRoute, now.Add(time.Minute))

	// act
	result := progressservice.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Refused_WhenWalkingBackwards(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)
	history = append(history,
		core.BuildServiceCheckpointReached("RES-00042", core.StatusOnDuty, now),
		core.BuildServiceCheckpointReached("RES-00042", core.StatusOnLocation, now.Add(time.Minute)),
	)

	command := progressservice.BuildCommand("RES-00042", core.StatusOnDuty, now.Add(2*time.Minute))

	// act
	result := progressservice.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Idempotent_WhenCheckpointAlreadyReached(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)
	history = append(history, core.BuildServiceCheckpointReached("RES-00042", core.StatusOnDuty, now))

	command := progressservice.BuildCommand("RES-00042", core.StatusOnDuty, now.Add(time.Minute))

	// act
	result := progressservice.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.Empty(t, result.Events)
}

func Test_Decide_Refused_WhenCheckpointIsNotAServiceState(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)

	command := progressservice.BuildCommand("RES-00042", core.StatusInvoiced, now)

	// act
	result := progressservice.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Refused_WhenCharterIsLocked(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenDispatchedCharter(t, "RES-00042", now)
	history = append(history, core.BuildCharterLocked("RES-00042", "dispute", "ops.lead", now))

	command := progressservice.BuildCommand("RES-00042", core.StatusOnDuty, now.Add(time.Minute))

	// act
	result := progressservice.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrCharterLocked)
}

func givenDispatchedCharter(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		core.BuildCharterBooked(
			reserveNumber, "CL-0007", now.Add(2*time.Hour),
			"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
			false, false, "", now.Add(-48*time.Hour),
		),
		core.BuildCharterConfirmed(reserveNumber, decimal.NewFromInt(200), now.Add(-24*time.Hour)),
		core.BuildDispatchAcknowledged(reserveNumber, "EMP-0019", "VEH-12", now.Add(-1*time.Hour)),
	}
}
