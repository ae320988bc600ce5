package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayState tracks the driver pay statement lifecycle within a charter.
type PayState string

const (
	PayNone     PayState = "none"
	PayPrepared PayState = "prepared"
	PayApproved PayState = "approved"
	PaySettled  PayState = "settled"
)

// ChargeLine is one billable line item on a charter.
type ChargeLine struct {
	ChargeID    string
	ChargeType  ChargeType
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Taxable     bool
	LineTotal   decimal.Decimal
	GSTAmount   decimal.Decimal
	Removed     bool
}

// RouteLeg is one leg of the itinerary, keyed by LegSequence within the charter.
type RouteLeg struct {
	LegSequence       int
	FromLocation      string
	ToLocation        string
	PlannedDepartAt   time.Time
	PlannedArriveAt   time.Time
	PlannedDistanceKm decimal.Decimal
	HasActuals        bool
	ActualDepartAt    time.Time
	ActualArriveAt    time.Time
	ActualDistanceKm  decimal.Decimal
}

// IncidentEntry is one logged incident on a charter.
type IncidentEntry struct {
	IncidentID            string
	IncidentType          IncidentType
	Severity              IncidentSeverity
	Description           string
	DriverID              DriverIDString
	ReimbursementAmount   decimal.Decimal
	GratuityForfeited     bool
	RequiresManagerReview bool
	Resolved              bool
	ResolvedBy            ActorString
}

// PayStatement is the driver pay statement attached to a charter.
type PayStatement struct {
	Status            PayState
	DriverID          DriverIDString
	PayRate           decimal.Decimal
	SuggestedHours    decimal.Decimal
	SuggestedGratuity decimal.Decimal
	Adjusted          bool
	PayableHours      decimal.Decimal
	GratuityOwed      decimal.Decimal
	CashTip           decimal.Decimal
	FloatReceived     decimal.Decimal
	ReceiptsSubmitted decimal.Decimal
	TotalPay          decimal.Decimal
	FloatBalance      decimal.Decimal
	NetAmountOwed     decimal.Decimal
	ApprovedBy        ActorString
	PaidVia           string
}

// PaymentEntry is one client payment applied to a charter.
type PaymentEntry struct {
	PaymentID      string
	AmountTendered decimal.Decimal
	AmountApplied  decimal.Decimal
	ExcessAmount   decimal.Decimal
	Method         string
	ReceivedOn     DutyDateString
}

// CreditUseEntry is a slice of an issued credit consumed against this charter.
type CreditUseEntry struct {
	CreditID            string
	SourceReserveNumber ReserveNumberString
	Amount              decimal.Decimal
}

// CharterView is the state of one charter folded from its event stream.
// It carries everything the command decisions and statement queries need;
// monetary aggregates are derived by methods, never stored twice.
type CharterView struct {
	Exists          bool
	ReserveNumber   ReserveNumberString
	ClientID        ClientIDString
	Status          CharterStatus
	Locked          bool
	AuditArtifact   bool
	OutOfTown       bool
	PickupAt        time.Time
	PickupLocation  string
	DropoffLocation string
	QuotedAmount    decimal.Decimal
	DepositRequired decimal.Decimal
	DriverID        DriverIDString
	VehicleID       VehicleIDString
	CompletedAt     time.Time
	OffDutyAt       time.Time

	InvoiceNumber    string
	InvoiceIssuedAt  time.Time
	InvoiceDueAt     time.Time
	InvoiceFinalized bool
	InvoiceVoided    bool
	FinalizedTotal   decimal.Decimal

	Charges     []ChargeLine
	Legs        []RouteLeg
	Incidents   []IncidentEntry
	Pay         PayStatement
	Payments    []PaymentEntry
	CreditsUsed []CreditUseEntry
}

// ReduceCharter folds a charter's event history into a CharterView.
// Events for other streams that leak into the history are ignored.
func ReduceCharter(history DomainEvents) CharterView { //nolint:gocognit,gocyclo // one case per event type of the charter stream
	v := CharterView{Pay: PayStatement{Status: PayNone}}

	for _, event := range history {
		switch e := event.(type) {
		case CharterBooked:
			v.Exists = true
			v.ReserveNumber = e.ReserveNumber
			v.ClientID = e.ClientID
			v.PickupAt = e.PickupAt
			v.PickupLocation = e.PickupLocation
			v.DropoffLocation = e.DropoffLocation
			v.QuotedAmount = e.QuotedAmount
			v.OutOfTown = e.OutOfTown
			v.AuditArtifact = e.AuditArtifact

			if e.AuditArtifact {
				v.Status = StatusAuditReview
			} else {
				v.Status = StatusQuote
			}

		case CharterConfirmed:
			v.Status = StatusConfirmed
			v.DepositRequired = e.DepositRequired

		case DispatchAcknowledged:
			v.Status = StatusDispatched
			v.DriverID = e.DriverID
			v.VehicleID = e.VehicleID

		case ServiceCheckpointReached:
			v.Status = e.Checkpoint

		case CharterCompleted:
			v.Status = StatusCompleted
			v.CompletedAt = e.OccurredAt
			v.OffDutyAt = e.OffDutyAt

		case InvoiceOpened:
			v.InvoiceNumber = e.InvoiceNumber
			v.InvoiceIssuedAt = e.IssuedAt
			v.InvoiceDueAt = e.DueAt

		case CharterCancelled:
			v.Status = StatusCancelled

			for i := range v.Charges {
				v.Charges[i].Removed = true
			}

		case CharterLocked:
			v.Locked = true

		case CharterUnlocked:
			v.Locked = false

		case CharterArchived:
			v.Status = StatusArchived

		case RouteLegPlanned:
			v.applyLegPlanned(e)

		case RouteLegActualsRecorded:
			v.applyLegActuals(e)

		case IncidentRecorded:
			v.Incidents = append(v.Incidents, IncidentEntry{
				IncidentID:            e.IncidentID,
				IncidentType:          e.IncidentType,
				Severity:              e.Severity,
				Description:           e.Description,
				DriverID:              e.DriverID,
				ReimbursementAmount:   e.ReimbursementAmount,
				GratuityForfeited:     e.GratuityForfeited,
				RequiresManagerReview: e.RequiresManagerReview,
			})

		case IncidentResolved:
			for i := range v.Incidents {
				if v.Incidents[i].IncidentID == e.IncidentID {
					v.Incidents[i].Resolved = true
					v.Incidents[i].ResolvedBy = e.ResolvedBy
				}
			}

		case DriverPayPrepared:
			v.Pay = PayStatement{
				Status:            PayPrepared,
				DriverID:          e.DriverID,
				PayRate:           e.PayRate,
				SuggestedHours:    e.SuggestedHours,
				SuggestedGratuity: e.SuggestedGratuity,
				FloatReceived:     e.FloatReceived,
			}

		case DriverPayAdjusted:
			v.Pay.Adjusted = true
			v.Pay.PayableHours = e.PayableHours
			v.Pay.GratuityOwed = e.GratuityOwed
			v.Pay.CashTip = e.CashTip
			v.Pay.FloatReceived = e.FloatReceived
			v.Pay.ReceiptsSubmitted = e.ReceiptsSubmitted
			v.Pay.TotalPay = e.TotalPay
			v.Pay.FloatBalance = e.FloatBalance
			v.Pay.NetAmountOwed = e.NetAmountOwed

		case DriverPayApproved:
			v.Pay.Status = PayApproved
			v.Pay.ApprovedBy = e.ApprovedBy

		case DriverPaySettled:
			v.Pay.Status = PaySettled
			v.Pay.PaidVia = e.PaidVia

		case ChargeRecorded:
			v.Charges = append(v.Charges, ChargeLine{
				ChargeID:    e.ChargeID,
				ChargeType:  e.ChargeType,
				Description: e.Description,
				Quantity:    e.Quantity,
				UnitPrice:   e.UnitPrice,
				Taxable:     e.Taxable,
				LineTotal:   e.LineTotal,
				GSTAmount:   e.GSTAmount,
			})

		case ChargeRemoved:
			for i := range v.Charges {
				if v.Charges[i].ChargeID == e.ChargeID {
					v.Charges[i].Removed = true
				}
			}

		case InvoiceFinalized:
			v.InvoiceFinalized = true
			v.FinalizedTotal = e.InvoiceTotal
			v.Status = StatusInvoiced

		case InvoiceVoided:
			v.InvoiceVoided = true

		case PaymentApplied:
			v.Payments = append(v.Payments, PaymentEntry{
				PaymentID:      e.PaymentID,
				AmountTendered: e.AmountTendered,
				AmountApplied:  e.AmountApplied,
				ExcessAmount:   e.ExcessAmount,
				Method:         e.Method,
				ReceivedOn:     e.ReceivedOn,
			})

		case CreditApplied:
			if e.TargetReserveNumber == v.ReserveNumber {
				v.CreditsUsed = append(v.CreditsUsed, CreditUseEntry{
					CreditID:            e.CreditID,
					SourceReserveNumber: e.SourceReserveNumber,
					Amount:              e.Amount,
				})
			}
		}
	}

	if v.Status == StatusInvoiced && !v.InvoiceVoided && v.BalanceDue().Sign() <= 0 {
		v.Status = StatusPaid
	}

	return v
}

func (v *CharterView) applyLegPlanned(e RouteLegPlanned) {
	leg := RouteLeg{
		LegSequence:       e.LegSequence,
		FromLocation:      e.FromLocation,
		ToLocation:        e.ToLocation,
		PlannedDepartAt:   e.PlannedDepartAt,
		PlannedArriveAt:   e.PlannedArriveAt,
		PlannedDistanceKm: e.PlannedDistanceKm,
	}

	// Re-planning a leg replaces the plan and invalidates previous actuals.
	for i := range v.Legs {
		if v.Legs[i].LegSequence == e.LegSequence {
			v.Legs[i] = leg
			return
		}
	}

	v.Legs = append(v.Legs, leg)
}

func (v *CharterView) applyLegActuals(e RouteLegActualsRecorded) {
	for i := range v.Legs {
		if v.Legs[i].LegSequence == e.LegSequence {
			v.Legs[i].HasActuals = true
			v.Legs[i].ActualDepartAt = e.ActualDepartAt
			v.Legs[i].ActualArriveAt = e.ActualArriveAt
			v.Legs[i].ActualDistanceKm = e.ActualDistanceKm

			return
		}
	}
}

// ChargeByID returns the charge line with the given ID, removed lines included.
func (v CharterView) ChargeByID(chargeID string) (ChargeLine, bool) {
	for _, charge := range v.Charges {
		if charge.ChargeID == chargeID {
			return charge, true
		}
	}

	return ChargeLine{}, false
}

// LegBySequence returns the route leg with the given sequence.
func (v CharterView) LegBySequence(legSequence int) (RouteLeg, bool) {
	for _, leg := range v.Legs {
		if leg.LegSequence == legSequence {
			return leg, true
		}
	}

	return RouteLeg{}, false
}

// IncidentByID returns the incident with the given ID.
func (v CharterView) IncidentByID(incidentID string) (IncidentEntry, bool) {
	for _, incident := range v.Incidents {
		if incident.IncidentID == incidentID {
			return incident, true
		}
	}

	return IncidentEntry{}, false
}

// PaymentByID returns the applied payment with the given ID.
func (v CharterView) PaymentByID(paymentID string) (PaymentEntry, bool) {
	for _, payment := range v.Payments {
		if payment.PaymentID == paymentID {
			return payment, true
		}
	}

	return PaymentEntry{}, false
}

// ActiveCharges returns the charge lines that have not been removed.
func (v CharterView) ActiveCharges() []ChargeLine {
	active := make([]ChargeLine, 0, len(v.Charges))

	for _, charge := range v.Charges {
		if !charge.Removed {
			active = append(active, charge)
		}
	}

	return active
}

// SubtotalTaxable sums the line totals of active taxable charges.
func (v CharterView) SubtotalTaxable() decimal.Decimal {
	sum := decimal.Zero

	for _, charge := range v.Charges {
		if !charge.Removed && charge.Taxable {
			sum = sum.Add(charge.LineTotal)
		}
	}

	return RoundMoney(sum)
}

// SubtotalNonTaxable sums the line totals of active non-taxable charges.
func (v CharterView) SubtotalNonTaxable() decimal.Decimal {
	sum := decimal.Zero

	for _, charge := range v.Charges {
		if !charge.Removed && !charge.Taxable {
			sum = sum.Add(charge.LineTotal)
		}
	}

	return RoundMoney(sum)
}

// GSTTotal sums the GST recorded on active charge lines.
func (v CharterView) GSTTotal() decimal.Decimal {
	sum := decimal.Zero

	for _, charge := range v.Charges {
		if !charge.Removed {
			sum = sum.Add(charge.GSTAmount)
		}
	}

	return RoundMoney(sum)
}

// InvoiceTotal is the full amount billable right now:
// taxable subtotal plus GST plus non-taxable subtotal.
func (v CharterView) InvoiceTotal() decimal.Decimal {
	return RoundMoney(v.SubtotalTaxable().Add(v.GSTTotal()).Add(v.SubtotalNonTaxable()))
}

// AmountPaid sums applied payments and consumed credits.
func (v CharterView) AmountPaid() decimal.Decimal {
	sum := decimal.Zero

	for _, payment := range v.Payments {
		sum = sum.Add(payment.AmountApplied)
	}

	for _, credit := range v.CreditsUsed {
		sum = sum.Add(credit.Amount)
	}

	return RoundMoney(sum)
}

// BalanceDue is the open amount on the charter. A cancelled charter and a
// voided invoice both settle at zero regardless of remaining lines.
func (v CharterView) BalanceDue() decimal.Decimal {
	if v.Status == StatusCancelled || v.InvoiceVoided {
		return decimal.Zero
	}

	return RoundMoney(v.InvoiceTotal().Sub(v.AmountPaid()))
}

// HasUnresolvedMajorIncidents reports whether any major incident is still open.
func (v CharterView) HasUnresolvedMajorIncidents() bool {
	for _, incident := range v.Incidents {
		if incident.Severity == SeverityMajor && !incident.Resolved {
			return true
		}
	}

	return false
}

// GratuityForfeited reports whether any incident forfeited the driver's gratuity.
func (v CharterView) GratuityForfeited() bool {
	for _, incident := range v.Incidents {
		if incident.GratuityForfeited {
			return true
		}
	}

	return false
}
