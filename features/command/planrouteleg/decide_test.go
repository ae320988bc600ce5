package planrouteleg_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/planrouteleg"
)

func Test_Decide_Success_PlansLeg(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := planrouteleg.BuildCommand(
		"RES-00042", 1, "Garage", "Hotel Macdonald",
		now.Add(46*time.Hour), now.Add(47*time.Hour), decimal.NewFromInt(18), now,
	)

	// act
	result := planrouteleg.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	planned, ok := result.Events[0].(core.RouteLegPlanned)
	assert.True(t, ok, "Expected RouteLegPlanned event")
	assert.Equal(t, 1, planned.LegSequence)
	assert.Equal(t, "Garage", planned.FromLocation)
	assert.Equal(t, "Hotel Macdonald", planned.ToLocation)
	assert.True(t, planned.PlannedDistanceKm.Equal(decimal.NewFromInt(18)))
}

func Test_Decide_Refused_WhenSequenceNotPositive(t *testing.T) {
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	for _, sequence := range []int{0, -1} {
		command := planrouteleg.BuildCommand(
			"RES-00042", sequence, "Garage", "Hotel Macdonald",
			now.Add(46*time.Hour), now.Add(47*time.Hour), decimal.NewFromInt(18), now,
		)

		// act
		result := planrouteleg.Decide(history, command)

		// assert
		assert.Equal(t, "refused", result.Outcome)
		assert.ErrorIs(t, result.HasError(), core.ErrInvalidSequence)
	}
}

func Test_Decide_Refused_WhenSequenceAlreadyPlanned(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildRouteLegPlanned(
			"RES-00042", 1, "Garage", "Hotel Macdonald",
			now.Add(46*time.Hour), now.Add(47*time.Hour), decimal.NewFromInt(18), now.Add(-time.Hour),
		),
	}

	command := planrouteleg.BuildCommand(
		"RES-00042", 1, "Garage", "Airport",
		now.Add(46*time.Hour), now.Add(48*time.Hour), decimal.NewFromInt(35), now,
	)

	// act
	result := planrouteleg.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateSequence)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Success_AppendsSecondLeg(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildRouteLegPlanned(
			"RES-00042", 1, "Garage", "Hotel Macdonald",
			now.Add(46*time.Hour), now.Add(47*time.Hour), decimal.NewFromInt(18), now.Add(-time.Hour),
		),
	}

	command := planrouteleg.BuildCommand(
		"RES-00042", 2, "Hotel Macdonald", "Commonwealth Stadium",
		now.Add(47*time.Hour), now.Add(48*time.Hour), decimal.NewFromInt(9), now,
	)

	// act
	result := planrouteleg.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
}

func Test_Decide_Refused_BusinessRules(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		expectedErr error
	}{
		{
			name:        "charter does not exist",
			history:     core.DomainEvents{},
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name: "charter is locked",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			},
			expectedErr: core.ErrCharterLocked,
		},
		{
			name: "charter is archived",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildCharterCancelled("RES-00042", "client request", 0, decimal.Zero, now.Add(-time.Hour)),
				core.BuildCharterArchived("RES-00042", "acct.mgr", now.Add(-time.Minute)),
			},
			expectedErr: core.ErrCharterArchived,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := planrouteleg.BuildCommand(
				"RES-00042", 1, "Garage", "Hotel Macdonald",
				now.Add(46*time.Hour), now.Add(47*time.Hour), decimal.NewFromInt(18), now,
			)

			// act
			result := planrouteleg.Decide(tc.history, command)

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
		})
	}
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(48*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}
