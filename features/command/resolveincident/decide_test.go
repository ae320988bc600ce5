package resolveincident_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/resolveincident"
)

func Test_Decide_Success_ResolvesIncident(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenCharterWithMajorIncident(t, "RES-00042", "INC-1", now)

	command := resolveincident.BuildCommand("RES-00042", "INC-1", "ops.mgr", "spoke to client, goodwill credit agreed", now)

	// act
	result := resolveincident.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	resolved, ok := result.Events[0].(core.IncidentResolved)
	assert.True(t, ok, "Expected IncidentResolved event")
	assert.Equal(t, "INC-1", resolved.IncidentID)
	assert.Equal(t, "ops.mgr", resolved.ResolvedBy)

	view := core.ReduceCharter(append(history, result.Events...))
	assert.False(t, view.HasUnresolvedMajorIncidents(), "resolution must unblock finalization")
}

func Test_Decide_Idempotent_WhenAlreadyResolved(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenCharterWithMajorIncident(t, "RES-00042", "INC-1", now),
		core.BuildIncidentResolved("RES-00042", "INC-1", "ops.mgr", "done", now.Add(-time.Minute)),
	)

	command := resolveincident.BuildCommand("RES-00042", "INC-1", "ops.mgr", "done", now)

	// act
	result := resolveincident.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_BusinessRules(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		incidentID  string
		expectedErr error
	}{
		{
			name:        "charter does not exist",
			history:     core.DomainEvents{},
			incidentID:  "INC-1",
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name:        "incident was never recorded",
			history:     core.DomainEvents{givenBooked(t, "RES-00042", now)},
			incidentID:  "INC-9",
			expectedErr: core.ErrIncidentNotFound,
		},
		{
			name: "charter is locked",
			history: append(
				givenCharterWithMajorIncident(t, "RES-00042", "INC-1", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			),
			incidentID:  "INC-1",
			expectedErr: core.ErrCharterLocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := resolveincident.Decide(tc.history, resolveincident.BuildCommand("RES-00042", tc.incidentID, "ops.mgr", "", now))

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
		})
	}
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(-2*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}

func givenCharterWithMajorIncident(t *testing.T, reserveNumber core.ReserveNumberString, incidentID string, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		givenBooked(t, reserveNumber, now),
		core.BuildIncidentRecorded(
			reserveNumber, incidentID, "EMP-0019", core.IncidentComplaint, core.SeverityMajor,
			"client refused to ride with driver", decimal.Zero, true, true, now.Add(-time.Hour),
		),
	}
}
