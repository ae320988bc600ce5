package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/creditledger"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/invoicestatement"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/paystatement"
)

const (
	demoClient  = "CL-1001"
	demoDriver  = "D-100"
	demoVehicle = "V-7"

	mainCharter      = "RES-00042"
	shuttleCharter   = "RES-00043"
	galaCharter      = "RES-00044"
	cancelledCharter = "RES-00045"
)

// demo drives the worked scenario against one service instance. The base time
// sits a few days in the past so completed service runs and recorded duty days
// land on calendar days that already happened.
type demo struct {
	service *charterops.Service
	feed    bankStatement
	base    time.Time
}

func (d *demo) run(ctx context.Context) error {
	phases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"charter lifecycle", d.charterLifecycle},
		{"billing", d.billing},
		{"payment and credit", d.paymentAndCredit},
		{"bank reconciliation", d.bankReconciliation},
		{"driver pay", d.driverPay},
		{"duty compliance", d.dutyCompliance},
		{"administration", d.administration},
	}

	for _, phase := range phases {
		fmt.Printf("\n=== %s ===\n", phase.name)

		if err := phase.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", phase.name, err)
		}
	}

	return nil
}

// charterLifecycle walks the main charter from booking through completed
// service: confirmation, route planning, dispatch, the service checkpoints,
// one resolved incident and the recorded leg actuals.
func (d *demo) charterLifecycle(ctx context.Context) error {
	pickupAt := d.base.Add(48 * time.Hour)

	err := d.service.BookCharter(ctx, mainCharter, demoClient, pickupAt,
		"Arrow Base", "Rogers Place", decimal.NewFromInt(900), false, false,
		"Wedding party, 12 passengers")
	if err != nil {
		return err
	}

	fmt.Printf("booked %s for %s, pickup %s\n", mainCharter, demoClient, pickupAt.Format("2006-01-02 15:04"))

	if err = d.service.ConfirmCharter(ctx, mainCharter, decimal.NewFromInt(200)); err != nil {
		return err
	}

	fmt.Printf("confirmed with a $200.00 deposit\n")

	if err = d.service.PlanRouteLeg(ctx, mainCharter, 1, "Arrow Base", "Rogers Place",
		pickupAt, pickupAt.Add(time.Hour), decimal.NewFromFloat(25.5)); err != nil {
		return err
	}

	if err = d.service.PlanRouteLeg(ctx, mainCharter, 2, "Rogers Place", "Arrow Base",
		pickupAt.Add(5*time.Hour), pickupAt.Add(6*time.Hour), decimal.NewFromFloat(25.5)); err != nil {
		return err
	}

	if err = d.service.DispatchCharter(ctx, mainCharter, demoDriver, demoVehicle); err != nil {
		return err
	}

	fmt.Printf("dispatched driver %s with vehicle %s\n", demoDriver, demoVehicle)

	outboundCheckpoints := []core.CharterStatus{
		core.StatusOnDuty,
		core.StatusOnLocation,
		core.StatusPassengersLoaded,
		core.StatusEnRoute,
	}
	for _, checkpoint := range outboundCheckpoints {
		if err = d.service.ProgressService(ctx, mainCharter, checkpoint); err != nil {
			return err
		}
	}

	incidentID, err := d.service.RecordIncident(ctx, mainCharter, demoDriver,
		core.IncidentDelay, core.SeverityMinor, "Bridge closure added 20 minutes", decimal.Zero, false)
	if err != nil {
		return err
	}

	if err = d.service.ResolveIncident(ctx, mainCharter, incidentID, "dispatch.lead", "Rerouted via 97 Street"); err != nil {
		return err
	}

	fmt.Printf("recorded and resolved a minor delay incident\n")

	for _, checkpoint := range []core.CharterStatus{core.StatusAtEvent, core.StatusReturnJourney} {
		if err = d.service.ProgressService(ctx, mainCharter, checkpoint); err != nil {
			return err
		}
	}

	if err = d.service.RecordLegActuals(ctx, mainCharter, 1,
		pickupAt, pickupAt.Add(80*time.Minute), decimal.NewFromFloat(27.1)); err != nil {
		return err
	}

	if err = d.service.RecordLegActuals(ctx, mainCharter, 2,
		pickupAt.Add(5*time.Hour), pickupAt.Add(6*time.Hour), decimal.NewFromFloat(25.8)); err != nil {
		return err
	}

	if err = d.service.CompleteCharter(ctx, mainCharter, pickupAt.Add(6*time.Hour)); err != nil {
		return err
	}

	fmt.Printf("completed service, invoice opened\n")

	plan, err := d.service.GetRoutePlan(ctx, mainCharter)
	if err != nil {
		return err
	}

	for _, leg := range plan.Legs {
		fmt.Printf("  leg %d %s to %s: planned %s km, driven %s km, variance %+d min\n",
			leg.LegSequence, leg.FromLocation, leg.ToLocation,
			leg.PlannedDistanceKm.StringFixed(1), leg.ActualDistanceKm.StringFixed(1), leg.VarianceMinutes)
	}

	return nil
}

// billing puts the charge lines on the invoice, strikes one keyed against the
// wrong charter, prints the statement and finalizes it.
func (d *demo) billing(ctx context.Context) error {
	if _, err := d.service.RecordCharge(ctx, mainCharter, core.ChargeCharterFee,
		"Charter service, 6 hours", decimal.NewFromInt(1), decimal.NewFromInt(500), true); err != nil {
		return err
	}

	if _, err := d.service.RecordCharge(ctx, mainCharter, core.ChargeExtraTime,
		"Extra time beyond quote", decimal.NewFromInt(2), decimal.NewFromInt(150), true); err != nil {
		return err
	}

	if _, err := d.service.RecordCharge(ctx, mainCharter, core.ChargeGratuity,
		"Driver gratuity", decimal.NewFromInt(1), decimal.NewFromInt(80), false); err != nil {
		return err
	}

	miscChargeID, err := d.service.RecordCharge(ctx, mainCharter, core.ChargeMisc,
		"Cleaning fee", decimal.NewFromInt(1), decimal.NewFromInt(45), true)
	if err != nil {
		return err
	}

	deleted, err := d.service.DeleteCharge(ctx, mainCharter, miscChargeID, "billing.clerk",
		"keyed against the wrong charter")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", deleted.Message)

	statement, err := d.service.GetInvoiceStatement(ctx, mainCharter)
	if err != nil {
		return err
	}

	printStatement(statement)

	if err = d.service.FinalizeInvoice(ctx, mainCharter, "ops.manager"); err != nil {
		return err
	}

	fmt.Printf("invoice %s finalized\n", statement.InvoiceNumber)

	return nil
}

// paymentAndCredit settles the main charter with an overpayment, shows the
// minted credit, then consumes part of it against a small shuttle run.
func (d *demo) paymentAndCredit(ctx context.Context) error {
	err := d.service.ApplyPayment(ctx, mainCharter, "PAY-2025-0917",
		decimal.NewFromInt(1000), "eft", core.CreditOverpay)
	if err != nil {
		return err
	}

	balance, err := d.service.GetCharterBalance(ctx, mainCharter)
	if err != nil {
		return err
	}

	fmt.Printf("client paid $1000.00 by eft: charges %s, payments %s, balance %s\n",
		balance.TotalCharges.StringFixed(2), balance.TotalPayments.StringFixed(2),
		balance.BalanceDue.StringFixed(2))

	ledger, err := d.service.GetCreditLedger(ctx, demoClient)
	if err != nil {
		return err
	}

	printLedger(ledger)

	if err = d.bookAndComplete(ctx, shuttleCharter, d.base.Add(60*time.Hour), "Hotel Macdonald", "Airport"); err != nil {
		return err
	}

	if _, err = d.service.RecordCharge(ctx, shuttleCharter, core.ChargeCharterFee,
		"Airport shuttle", decimal.NewFromInt(1), decimal.NewFromInt(60), false); err != nil {
		return err
	}

	creditID := ledger.Credits[0].CreditID
	if err = d.service.ApplyCredit(ctx, demoClient, creditID, shuttleCharter, decimal.NewFromInt(60)); err != nil {
		return err
	}

	shuttleBalance, err := d.service.GetCharterBalance(ctx, shuttleCharter)
	if err != nil {
		return err
	}

	ledger, err = d.service.GetCreditLedger(ctx, demoClient)
	if err != nil {
		return err
	}

	fmt.Printf("applied $60.00 credit to %s: balance %s, credit remaining %s\n",
		shuttleCharter, shuttleBalance.BalanceDue.StringFixed(2), ledger.TotalRemaining.StringFixed(2))

	return nil
}

// bankReconciliation completes a third charter, settles it from the scripted
// bank feed, reruns the feed to show the idempotent second pass, then bills
// the returned-payment fee when the bank recalls the posting.
func (d *demo) bankReconciliation(ctx context.Context) error {
	err := d.bookAndComplete(ctx, galaCharter, d.base.Add(72*time.Hour), "Arrow Base", "Art Gallery of Alberta")
	if err != nil {
		return err
	}

	if _, err = d.service.RecordCharge(ctx, galaCharter, core.ChargeCharterFee,
		"Gala transfer", decimal.NewFromInt(1), decimal.NewFromInt(250), true); err != nil {
		return err
	}

	report, err := d.service.ReconcileBankFeed(ctx, d.feed, d.base)
	if err != nil {
		return err
	}

	fmt.Printf("first run: %d applied, %d already applied, %d skipped\n",
		report.Applied, report.AlreadyApplied, report.Skipped)

	report, err = d.service.ReconcileBankFeed(ctx, d.feed, d.base)
	if err != nil {
		return err
	}

	fmt.Printf("second run: %d applied, %d already applied, %d skipped\n",
		report.Applied, report.AlreadyApplied, report.Skipped)

	nfd, err := d.service.RecordNFDCharge(ctx, galaCharter)
	if err != nil {
		return err
	}

	fmt.Printf("bank recalled the posting: %s\n", nfd.Message)

	balance, err := d.service.GetCharterBalance(ctx, galaCharter)
	if err != nil {
		return err
	}

	fmt.Printf("%s balance after the returned-payment fee: %s\n", galaCharter, balance.BalanceDue.StringFixed(2))

	return nil
}

// driverPay prepares, adjusts, approves and settles the driver's pay for the
// main charter, with the expense receipts stored before the adjustment rides
// on the journal.
func (d *demo) driverPay(ctx context.Context) error {
	if err := d.service.PrepareDriverPay(ctx, mainCharter, decimal.NewFromInt(100)); err != nil {
		return err
	}

	statement, err := d.service.GetPayStatement(ctx, mainCharter)
	if err != nil {
		return err
	}

	fmt.Printf("prepared pay for driver %s: %s suggested hours at %s/h\n",
		statement.DriverID, statement.SuggestedHours.StringFixed(2), statement.PayRate.StringFixed(2))

	receiptRefs, err := d.service.AdjustDriverPay(ctx, mainCharter,
		decimal.NewFromFloat(6.5), decimal.NewFromInt(80), decimal.NewFromInt(20), decimal.NewFromInt(100),
		charterops.Receipt{Description: "Fuel", Amount: decimal.NewFromFloat(30.25), SubmittedAt: d.base.Add(55 * time.Hour)},
		charterops.Receipt{Description: "Car wash", Amount: decimal.NewFromFloat(19.75), SubmittedAt: d.base.Add(55 * time.Hour)},
	)
	if err != nil {
		return err
	}

	fmt.Printf("adjusted with %d stored receipts: %v\n", len(receiptRefs), receiptRefs)

	if err = d.service.ApproveDriverPay(ctx, mainCharter, "ops.manager"); err != nil {
		return err
	}

	if err = d.service.SettleDriverPay(ctx, mainCharter, "payroll eft"); err != nil {
		return err
	}

	statement, err = d.service.GetPayStatement(ctx, mainCharter)
	if err != nil {
		return err
	}

	printPayStatement(statement)

	return nil
}

// dutyCompliance records three duty days for the driver and grades the
// trailing window.
func (d *demo) dutyCompliance(ctx context.Context) error {
	for day := 0; day < 3; day++ {
		onDutyAt := d.base.Add(time.Duration(day) * 24 * time.Hour)

		err := d.service.RecordDutyDay(ctx, demoDriver, onDutyAt, onDutyAt.Add(9*time.Hour), 60, false, "")
		if err != nil {
			return err
		}
	}

	summary, err := d.service.GetHOSSummary(ctx, demoDriver, core.ToDutyDate(d.base.Add(72*time.Hour)))
	if err != nil {
		return err
	}

	fmt.Printf("driver %s: %d duty days recorded, %s hours in the %d-day window, standing %s\n",
		summary.DriverID, len(summary.Days), summary.WindowHours.StringFixed(2),
		summary.WindowDays, summary.Classification)

	return nil
}

// administration shows the lock guarding mutations, cancels a confirmed
// booking with open charge lines, and archives the settled main charter.
func (d *demo) administration(ctx context.Context) error {
	locked, err := d.service.LockCharter(ctx, mainCharter, "year-end review", "controller")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", locked.Message)

	_, chargeErr := d.service.RecordCharge(ctx, mainCharter, core.ChargeMisc,
		"Late fee", decimal.NewFromInt(1), decimal.NewFromInt(10), true)
	if chargeErr == nil {
		return errors.New("charge on a locked charter should have been refused")
	}

	fmt.Printf("charge while locked refused: %v\n", chargeErr)

	unlocked, err := d.service.UnlockCharter(ctx, mainCharter, "controller")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", unlocked.Message)

	if err = d.service.BookCharter(ctx, cancelledCharter, demoClient, d.base.Add(120*time.Hour),
		"Arrow Base", "Fort Edmonton Park", decimal.NewFromInt(400), false, false, ""); err != nil {
		return err
	}

	if err = d.service.ConfirmCharter(ctx, cancelledCharter, decimal.NewFromInt(100)); err != nil {
		return err
	}

	openLines := []struct {
		description string
		amount      int64
	}{
		{"Park transfer", 300},
		{"Decorations package", 75},
	}
	for _, line := range openLines {
		if _, err = d.service.RecordCharge(ctx, cancelledCharter, core.ChargeCharterFee,
			line.description, decimal.NewFromInt(1), decimal.NewFromInt(line.amount), true); err != nil {
			return err
		}
	}

	cancelResult, err := d.service.CancelCharter(ctx, cancelledCharter, "booking.desk", "client called off the event")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", cancelResult.Message)

	if err = d.service.ArchiveCharter(ctx, mainCharter, "controller"); err != nil {
		return err
	}

	status, err := d.service.GetCharterLockStatus(ctx, mainCharter)
	if err != nil {
		return err
	}

	fmt.Printf("archived %s, final status %s\n", mainCharter, status.Status)

	return nil
}

// bookAndComplete runs a charter straight through to completed service so
// the billing phases have something to settle.
func (d *demo) bookAndComplete(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	pickupAt time.Time,
	from string,
	to string,
) error {
	err := d.service.BookCharter(ctx, reserveNumber, demoClient, pickupAt, from, to,
		decimal.NewFromInt(150), false, false, "")
	if err != nil {
		return err
	}

	if err = d.service.ConfirmCharter(ctx, reserveNumber, decimal.Zero); err != nil {
		return err
	}

	if err = d.service.DispatchCharter(ctx, reserveNumber, demoDriver, demoVehicle); err != nil {
		return err
	}

	if err = d.service.ProgressService(ctx, reserveNumber, core.StatusOnDuty); err != nil {
		return err
	}

	return d.service.CompleteCharter(ctx, reserveNumber, pickupAt.Add(2*time.Hour))
}

func printStatement(statement invoicestatement.InvoiceStatement) {
	fmt.Printf("invoice %s for client %s\n", statement.InvoiceNumber, statement.ClientID)

	for _, line := range statement.Lines {
		marker := ""
		if line.Removed {
			marker = "  [struck]"
		}

		fmt.Printf("  %-28s %3s x %8s = %9s%s\n",
			line.Description, line.Quantity.String(), line.UnitPrice.StringFixed(2),
			line.LineTotal.StringFixed(2), marker)
	}

	fmt.Printf("  taxable %s + GST %s + non-taxable %s = %s, due %s\n",
		statement.SubtotalTaxable.StringFixed(2), statement.GSTAmount.StringFixed(2),
		statement.SubtotalNonTaxable.StringFixed(2), statement.InvoiceTotal.StringFixed(2),
		statement.DueAt.Format("2006-01-02"))
}

func printLedger(ledger creditledger.ClientCreditLedger) {
	for _, credit := range ledger.Credits {
		fmt.Printf("  credit %s: issued %s (%s), used %s, remaining %s\n",
			credit.CreditID, credit.IssuedAmount.StringFixed(2), credit.ReasonCode,
			credit.AmountUsed.StringFixed(2), credit.Remaining.StringFixed(2))
	}

	fmt.Printf("  total credit remaining: %s\n", ledger.TotalRemaining.StringFixed(2))
}

func printPayStatement(statement paystatement.PayStatement) {
	fmt.Printf("pay statement %s, driver %s, status %s\n",
		statement.ReserveNumber, statement.DriverID, statement.Status)
	fmt.Printf("  %s hours at %s/h, gratuity %s, receipts %s\n",
		statement.PayableHours.StringFixed(2), statement.PayRate.StringFixed(2),
		statement.GratuityOwed.StringFixed(2), statement.ReceiptsSubmitted.StringFixed(2))
	fmt.Printf("  total pay %s, float balance %s, net owed %s, paid via %s\n",
		statement.TotalPay.StringFixed(2), statement.FloatBalance.StringFixed(2),
		statement.NetAmountOwed.StringFixed(2), statement.PaidVia)
}
