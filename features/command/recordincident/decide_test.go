package recordincident_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordincident"
)

func Test_Decide_Success_MajorIncidentRequiresReview(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentBreakdown, core.SeverityMajor,
		"transmission failure on highway 2", decimal.Zero, "", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.Len(t, result.Events, 1)

	incident, ok := result.Events[0].(core.IncidentRecorded)
	assert.True(t, ok, "Expected IncidentRecorded event")
	assert.True(t, incident.RequiresManagerReview, "major severity must require review")
	assert.False(t, incident.GratuityForfeited)
}

func Test_Decide_Success_MajorComplaintForfeitsGratuity(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentComplaint, core.SeverityMajor,
		"client refused to ride with driver", decimal.Zero, "", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	incident := result.Events[0].(core.IncidentRecorded)
	assert.True(t, incident.GratuityForfeited)
	assert.True(t, incident.RequiresManagerReview)
}

func Test_Decide_Success_MinorReimbursementAppendsChargeAtomically(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentBreakdown, core.SeverityMinor,
		"client paid the tow, reimburse", decimal.NewFromFloat(75.50), "CHG-REIMB-1", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.Len(t, result.Events, 2, "incident and reimbursement charge must append together")

	incident := result.Events[0].(core.IncidentRecorded)
	assert.False(t, incident.RequiresManagerReview)

	charge, ok := result.Events[1].(core.ChargeRecorded)
	assert.True(t, ok, "Expected ChargeRecorded event")
	assert.Equal(t, "CHG-REIMB-1", charge.ChargeID)
	assert.Equal(t, core.ChargeBreakdownReimbursement, charge.ChargeType)
	assert.False(t, charge.Taxable, "reimbursements are non-taxable")
	assert.True(t, charge.LineTotal.Equal(decimal.NewFromFloat(75.50)))
	assert.True(t, charge.GSTAmount.IsZero())
}

func Test_Decide_Success_MajorReimbursementWaitsForReview(t *testing.T) {
	// arrange - major severity records the amount but appends no charge line
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentBreakdown, core.SeverityMajor,
		"vehicle fire, full refund expected", decimal.NewFromInt(900), "CHG-REIMB-1", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.Len(t, result.Events, 1)

	incident := result.Events[0].(core.IncidentRecorded)
	assert.True(t, incident.ReimbursementAmount.Equal(decimal.NewFromInt(900)))
}

func Test_Decide_Idempotent_WhenIncidentAlreadyOnFile(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildIncidentRecorded(
			"RES-00042", "INC-1", "EMP-0019", core.IncidentDelay, core.SeverityMinor,
			"flight delayed 40min", decimal.Zero, false, false, now.Add(-time.Hour),
		),
	}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentDelay, core.SeverityMinor,
		"flight delayed 40min", decimal.Zero, "", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_BusinessRules(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		command     recordincident.Command
		expectedErr error
	}{
		{
			name:    "charter does not exist",
			history: core.DomainEvents{},
			command: recordincident.BuildCommand(
				"RES-00042", "INC-1", "EMP-0019", core.IncidentDelay, core.SeverityMinor,
				"", decimal.Zero, "", false, now,
			),
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name:    "unknown incident type",
			history: core.DomainEvents{givenBooked(t, "RES-00042", now)},
			command: recordincident.BuildCommand(
				"RES-00042", "INC-1", "EMP-0019", "weather", core.SeverityMinor,
				"", decimal.Zero, "", false, now,
			),
			expectedErr: core.ErrUnknownIncidentType,
		},
		{
			name:    "unknown severity",
			history: core.DomainEvents{givenBooked(t, "RES-00042", now)},
			command: recordincident.BuildCommand(
				"RES-00042", "INC-1", "EMP-0019", core.IncidentDelay, "catastrophic",
				"", decimal.Zero, "", false, now,
			),
			expectedErr: core.ErrUnknownSeverity,
		},
		{
			name:    "negative reimbursement",
			history: core.DomainEvents{givenBooked(t, "RES-00042", now)},
			command: recordincident.BuildCommand(
				"RES-00042", "INC-1", "EMP-0019", core.IncidentBreakdown, core.SeverityMinor,
				"", decimal.NewFromInt(-50), "CHG-1", false, now,
			),
			expectedErr: core.ErrInvalidAmount,
		},
		{
			name: "charter is locked",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			},
			command: recordincident.BuildCommand(
				"RES-00042", "INC-1", "EMP-0019", core.IncidentDelay, core.SeverityMinor,
				"", decimal.Zero, "", false, now,
			),
			expectedErr: core.ErrCharterLocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := recordincident.Decide(tc.history, tc.command)

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.False(t, result.HasEventsToAppend())
		})
	}
}

func Test_Decide_Refused_WhenReimbursementHitsFinalizedInvoice(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildInvoiceFinalized(
			"RES-00042", "INV-RES-00042",
			decimal.NewFromInt(800), decimal.NewFromInt(40), decimal.Zero,
			decimal.NewFromInt(840), "", now.Add(-time.Hour),
		),
	}

	command := recordincident.BuildCommand(
		"RES-00042", "INC-1", "EMP-0019", core.IncidentBreakdown, core.SeverityMinor,
		"tow reimbursement", decimal.NewFromInt(75), "CHG-REIMB-1", false, now,
	)

	// act
	result := recordincident.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvoiceFinalized)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(-2*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}
