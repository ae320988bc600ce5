package charterops

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/adjustdriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applycredit"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applypayment"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/approvedriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/archivecharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/completecharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/confirmcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/dispatchcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/finalizeinvoice"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/planrouteleg"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/preparedriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/progressservice"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recorddutyday"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordincident"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordlegactuals"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/resolveincident"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/settledriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/voidinvoice"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/creditledger"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/hossummary"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/invoicestatement"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/paystatement"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/routeplan"
)

// BookCharter books a new charter after checking the client directory knows
// the client. An unknown client is refused before anything hits the journal.
func (s *Service) BookCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	clientID core.ClientIDString,
	pickupAt time.Time,
	pickupLocation string,
	dropoffLocation string,
	quotedAmount decimal.Decimal,
	outOfTown bool,
	auditArtifact bool,
	notes string,
) error {
	_, found, err := s.clients.ClientByID(ctx, clientID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownClient, clientID)
	}

	_, err = s.bookCharter.Handle(ctx, bookcharter.BuildCommand(
		reserveNumber, clientID, pickupAt, pickupLocation, dropoffLocation,
		quotedAmount, outOfTown, auditArtifact, notes, s.clock()))

	return err
}

// ConfirmCharter confirms a booked charter with the deposit it requires.
func (s *Service) ConfirmCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	depositRequired decimal.Decimal,
) error {
	_, err := s.confirmCharter.Handle(ctx, confirmcharter.BuildCommand(reserveNumber, depositRequired, s.clock()))

	return err
}

// DispatchCharter assigns a driver and vehicle to a confirmed charter.
func (s *Service) DispatchCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	driverID core.DriverIDString,
	vehicleID core.VehicleIDString,
) error {
	_, err := s.dispatchCharter.Handle(ctx, dispatchcharter.BuildCommand(reserveNumber, driverID, vehicleID, s.clock()))

	return err
}

// ProgressService advances a dispatched charter to the next service checkpoint.
func (s *Service) ProgressService(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	checkpoint core.CharterStatus,
) error {
	_, err := s.progressService.Handle(ctx, progressservice.BuildCommand(reserveNumber, checkpoint, s.clock()))

	return err
}

// CompleteCharter completes the service run and opens the invoice.
func (s *Service) CompleteCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	offDutyAt time.Time,
) error {
	_, err := s.completeCharter.Handle(ctx, completecharter.BuildCommand(reserveNumber, offDutyAt, s.clock()))

	return err
}

// ArchiveCharter moves a settled charter into the archive.
func (s *Service) ArchiveCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	archivedBy core.ActorString,
) error {
	_, err := s.archiveCharter.Handle(ctx, archivecharter.BuildCommand(reserveNumber, archivedBy, s.clock()))

	return err
}

// PlanRouteLeg adds a planned leg to the charter's route.
func (s *Service) PlanRouteLeg(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	legSequence int,
	fromLocation string,
	toLocation string,
	plannedDepartAt time.Time,
	plannedArriveAt time.Time,
	plannedDistanceKm decimal.Decimal,
) error {
	_, err := s.planRouteLeg.Handle(ctx, planrouteleg.BuildCommand(
		reserveNumber, legSequence, fromLocation, toLocation,
		plannedDepartAt, plannedArriveAt, plannedDistanceKm, s.clock()))

	return err
}

// RecordLegActuals records the driven times and distance for a planned leg.
func (s *Service) RecordLegActuals(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	legSequence int,
	actualDepartAt time.Time,
	actualArriveAt time.Time,
	actualDistanceKm decimal.Decimal,
) error {
	_, err := s.recordLegActuals.Handle(ctx, recordlegactuals.BuildCommand(
		reserveNumber, legSequence, actualDepartAt, actualArriveAt, actualDistanceKm, s.clock()))

	return err
}

// RecordIncident records a service incident against a charter and returns
// the minted incident id. When the incident carries a reimbursement the
// billing line id is minted alongside it.
func (s *Service) RecordIncident(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	driverID core.DriverIDString,
	incidentType core.IncidentType,
	severity core.IncidentSeverity,
	description string,
	reimbursementAmount decimal.Decimal,
	gratuityForfeited bool,
) (string, error) {
	incidentID := uuid.New().String()

	_, err := s.recordIncident.Handle(ctx, recordincident.BuildCommand(
		reserveNumber, incidentID, driverID, incidentType, severity, description,
		reimbursementAmount, uuid.New().String(), gratuityForfeited, s.clock()))
	if err != nil {
		return "", err
	}

	return incidentID, nil
}

// ResolveIncident marks a recorded incident as resolved.
func (s *Service) ResolveIncident(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	incidentID string,
	resolvedBy core.ActorString,
	notes string,
) error {
	_, err := s.resolveIncident.Handle(ctx, resolveincident.BuildCommand(
		reserveNumber, incidentID, resolvedBy, notes, s.clock()))

	return err
}

// RecordCharge adds a charge line to the charter's invoice and returns the
// minted charge id.
func (s *Service) RecordCharge(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	chargeType core.ChargeType,
	description string,
	quantity decimal.Decimal,
	unitPrice decimal.Decimal,
	taxable bool,
) (string, error) {
	chargeID := uuid.New().String()

	_, err := s.recordCharge.Handle(ctx, recordcharge.BuildCommand(
		reserveNumber, chargeID, chargeType, description, quantity, unitPrice, taxable, s.clock()))
	if err != nil {
		return "", err
	}

	return chargeID, nil
}

// FinalizeInvoice freezes the invoice. Above the approval threshold the
// approver is required and recorded.
func (s *Service) FinalizeInvoice(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	approvedBy core.ActorString,
) error {
	_, err := s.finalizeInvoice.Handle(ctx, finalizeinvoice.BuildCommand(reserveNumber, approvedBy, s.clock()))

	return err
}

// VoidInvoice voids the invoice. Payments already applied convert to client
// credit in the same append.
func (s *Service) VoidInvoice(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	reason string,
	voidedBy core.ActorString,
) error {
	_, err := s.voidInvoice.Handle(ctx, voidinvoice.BuildCommand(
		reserveNumber, reason, voidedBy, uuid.New().String(), s.clock()))

	return err
}

// ApplyPayment applies a client payment against the charter's balance. Any
// excess beyond the balance due becomes client credit under the given reason
// code; an empty reason code defaults to overpay.
func (s *Service) ApplyPayment(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	paymentID string,
	amountTendered decimal.Decimal,
	method string,
	reasonCode core.CreditReason,
) error {
	_, err := s.applyPayment.Handle(ctx, applypayment.BuildCommand(
		reserveNumber, paymentID, amountTendered, method, uuid.New().String(), reasonCode, s.clock()))

	return err
}

// ApplyCredit consumes a client's credit against a charter's balance.
func (s *Service) ApplyCredit(
	ctx context.Context,
	clientID core.ClientIDString,
	creditID string,
	targetReserveNumber core.ReserveNumberString,
	amount decimal.Decimal,
) error {
	_, err := s.applyCredit.Handle(ctx, applycredit.BuildCommand(
		clientID, creditID, targetReserveNumber, amount, s.clock()))

	return err
}

// PrepareDriverPay opens the pay record for a completed charter, pricing the
// driver's hours at the directory rate effective on the service date.
func (s *Service) PrepareDriverPay(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	floatReceived decimal.Decimal,
) error {
	_, err := s.prepareDriverPay.Handle(ctx, preparedriverpay.BuildCommand(reserveNumber, floatReceived, s.clock()))

	return err
}

// AdjustDriverPay corrects a prepared pay record. Receipts are stored in the
// vault first and their summed amount rides on the adjustment; the returned
// references point at the stored documents. Receipts already stored stay in
// the vault when a later store fails, and the adjustment is only recorded
// once every receipt is stored.
func (s *Service) AdjustDriverPay(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	payableHours decimal.Decimal,
	gratuityOwed decimal.Decimal,
	cashTip decimal.Decimal,
	floatReceived decimal.Decimal,
	receipts ...Receipt,
) ([]string, error) {
	if len(receipts) > 0 && s.vault == nil {
		return nil, errors.New("no receipt vault configured")
	}

	receiptRefs := make([]string, 0, len(receipts))
	receiptsSubmitted := decimal.Zero

	for _, receipt := range receipts {
		ref, err := s.vault.Store(ctx, reserveNumber, receipt)
		if err != nil {
			return receiptRefs, err
		}

		receiptRefs = append(receiptRefs, ref)
		receiptsSubmitted = receiptsSubmitted.Add(receipt.Amount)
	}

	_, err := s.adjustDriverPay.Handle(ctx, adjustdriverpay.BuildCommand(
		reserveNumber, payableHours, gratuityOwed, cashTip, floatReceived,
		core.RoundMoney(receiptsSubmitted), s.clock()))
	if err != nil {
		return receiptRefs, err
	}

	return receiptRefs, nil
}

// ApproveDriverPay approves a prepared pay record for settlement.
func (s *Service) ApproveDriverPay(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	approvedBy core.ActorString,
) error {
	_, err := s.approveDriverPay.Handle(ctx, approvedriverpay.BuildCommand(reserveNumber, approvedBy, s.clock()))

	return err
}

// SettleDriverPay pays out an approved pay record.
func (s *Service) SettleDriverPay(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	paidVia string,
) error {
	_, err := s.settleDriverPay.Handle(ctx, settledriverpay.BuildCommand(reserveNumber, paidVia, s.clock()))

	return err
}

// RecordDutyDay records one duty day for a driver, grading the trailing duty
// window as of that day.
func (s *Service) RecordDutyDay(
	ctx context.Context,
	driverID core.DriverIDString,
	onDutyAt time.Time,
	offDutyAt time.Time,
	breakMinutes int,
	exemptionApplied bool,
	exemptionNote string,
) error {
	_, err := s.recordDutyDay.Handle(ctx, recorddutyday.BuildCommand(
		driverID, onDutyAt, offDutyAt, breakMinutes, exemptionApplied, exemptionNote, s.clock()))

	return err
}

// GetInvoiceStatement renders the charter's invoice as of now, struck lines
// included.
func (s *Service) GetInvoiceStatement(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (invoicestatement.InvoiceStatement, error) {
	return s.invoiceStatements.Handle(ctx, invoicestatement.BuildQuery(reserveNumber, s.clock()))
}

// GetRoutePlan reports the charter's planned legs with actuals and variances.
func (s *Service) GetRoutePlan(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (routeplan.RoutePlan, error) {
	return s.routePlans.Handle(ctx, routeplan.BuildQuery(reserveNumber))
}

// GetPayStatement reports the driver pay record of a charter.
func (s *Service) GetPayStatement(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (paystatement.PayStatement, error) {
	return s.payStatements.Handle(ctx, paystatement.BuildQuery(reserveNumber))
}

// GetCreditLedger reports a client's credits and what remains on each.
func (s *Service) GetCreditLedger(
	ctx context.Context,
	clientID core.ClientIDString,
) (creditledger.ClientCreditLedger, error) {
	return s.creditLedgers.Handle(ctx, creditledger.BuildQuery(clientID))
}

// GetHOSSummary reports a driver's rolling duty window ending on the given
// date. On a snapshot capable journal the read refreshes the cached
// projection as a side effect.
func (s *Service) GetHOSSummary(
	ctx context.Context,
	driverID core.DriverIDString,
	windowEnd core.DutyDateString,
) (hossummary.HOSSummary, error) {
	return s.hosSummaries.Handle(ctx, hossummary.BuildQuery(driverID, windowEnd))
}
