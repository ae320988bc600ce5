package bookcharter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
)

func Test_Decide_Success_WhenReserveNumberIsFree(t *testing.T) {
	// arrange
	now := time.Now()
	command := bookcharter.BuildCommand(
		"RES-00042",
		"CL-0007",
		now.Add(48*time.Hour),
		"Hotel Macdonald",
		"Commonwealth Stadium",
		decimal.NewFromInt(900),
		false,
		false,
		"wedding party",
		now,
	)

	// act
	result := bookcharter.Decide(nil, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())
	assert.Len(t, result.Events, 1)

	booked, ok := result.Events[0].(core.CharterBooked)
	assert.True(t, ok, "Expected CharterBooked event")
	assert.Equal(t, "RES-00042", booked.ReserveNumber)
	assert.Equal(t, "CL-0007", booked.ClientID)
	assert.False(t, booked.AuditArtifact)
}

func Test_Decide_Success_AuditArtifactBooksAsPlaceholder(t *testing.T) {
	// arrange
	now := time.Now()
	command := bookcharter.BuildCommand(
		"RES-00099",
		"CL-0007",
		now,
		"",
		"",
		decimal.Zero,
		false,
		true,
		"refund pair for RES-00042",
		now,
	)

	// act
	result := bookcharter.Decide(nil, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	booked, ok := result.Events[0].(core.CharterBooked)
	assert.True(t, ok, "Expected CharterBooked event")
	assert.True(t, booked.AuditArtifact)

	// A placeholder booking lands in audit review, not in the quote state.
	view := core.ReduceCharter(core.DomainEvents{booked})
	assert.Equal(t, core.StatusAuditReview, view.Status)
	assert.True(t, view.Status.IsPlaceholder())
}

func Test_Decide_Refused_WhenReserveNumberAlreadyBooked(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildCharterBooked(
			"RES-00042", "CL-0001", now.Add(-24*time.Hour),
			"Airport", "Downtown", decimal.NewFromInt(300),
			false, false, "", now.Add(-48*time.Hour),
		),
	}

	command := bookcharter.BuildCommand(
		"RES-00042",
		"CL-0007",
		now.Add(48*time.Hour),
		"Hotel Macdonald",
		"Commonwealth Stadium",
		decimal.NewFromInt(900),
		false,
		false,
		"",
		now,
	)

	// act
	result := bookcharter.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.Empty(t, result.Events, "A refused booking must not append anything")
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateReserveNumber)
}

func Test_Decide_Refused_EvenWhenExistingCharterIsCancelled(t *testing.T) {
	// arrange - a cancelled charter still owns its reserve number
	now := time.Now()
	history := core.DomainEvents{
		core.BuildCharterBooked(
			"RES-00042", "CL-0001", now.Add(-24*time.Hour),
			"Airport", "Downtown", decimal.NewFromInt(300),
			false, false, "", now.Add(-48*time.Hour),
		),
		core.BuildCharterCancelled("RES-00042", "client no-show", 0, decimal.Zero, now.Add(-12*time.Hour)),
	}

	command := bookcharter.BuildCommand(
		"RES-00042", "CL-0007", now.Add(48*time.Hour),
		"A", "B", decimal.NewFromInt(100), false, false, "", now,
	)

	// act
	result := bookcharter.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateReserveNumber)
}
