package charterops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/adjustdriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applycredit"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/applypayment"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/approvedriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/archivecharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/bookcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/cancelcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/completecharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/confirmcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/dispatchcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/finalizeinvoice"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/lockcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/planrouteleg"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/preparedriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/progressservice"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recorddutyday"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordincident"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordlegactuals"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordnfdcharge"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/removecharge"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/resolveincident"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/settledriverpay"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/unlockcharter"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/voidinvoice"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/charterbalance"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/charterlockstatus"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/creditledger"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/hossummary"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/invoicestatement"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/paystatement"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/routeplan"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
	"github.com/arrowlimo/arrow-limo-sub005/shell/snapshot"
)

// Journal defines the journal surface the facade and every wrapped handler
// work against. Both the Postgres and the in-memory engine satisfy it.
type Journal interface {
	Query(ctx context.Context, scope charterstore.Scope) (
		charterstore.Records,
		charterstore.MaxSequenceUint,
		error,
	)
	Append(
		ctx context.Context,
		scope charterstore.Scope,
		expectedMaxSequenceNumber charterstore.MaxSequenceUint,
		record charterstore.Record,
		additionalRecords ...charterstore.Record,
	) error
}

// Service is the operations facade over the charter slices. One Service
// holds a handler per operation, all bound to the same journal and sharing
// the same fiscal period guard and business policies.
//
// The destructive operations return typed results instead of raw errors for
// business refusals. Thin pass-throughs exist for the rest of the command
// set, and getters for the projections.
type Service struct {
	journal   Journal
	directory EmployeeDirectory
	clients   ClientDirectory
	vault     ReceiptVault
	clock     func() time.Time

	periodGuard shell.FiscalPeriodGuard
	compliance  core.CompliancePolicy
	tax         core.TaxPolicy
	approval    core.ApprovalPolicy
	billing     core.BillingPolicy
	retryOpts   []shell.RetryOption

	bookCharter      bookcharter.CommandHandler
	confirmCharter   confirmcharter.CommandHandler
	dispatchCharter  dispatchcharter.CommandHandler
	progressService  progressservice.CommandHandler
	completeCharter  completecharter.CommandHandler
	cancelCharter    cancelcharter.CommandHandler
	lockCharter      lockcharter.CommandHandler
	unlockCharter    unlockcharter.CommandHandler
	archiveCharter   archivecharter.CommandHandler
	planRouteLeg     planrouteleg.CommandHandler
	recordLegActuals recordlegactuals.CommandHandler
	recordIncident   recordincident.CommandHandler
	resolveIncident  resolveincident.CommandHandler
	recordCharge     recordcharge.CommandHandler
	recordNFDCharge  recordnfdcharge.CommandHandler
	removeCharge     removecharge.CommandHandler
	finalizeInvoice  finalizeinvoice.CommandHandler
	voidInvoice      voidinvoice.CommandHandler
	applyPayment     applypayment.CommandHandler
	applyCredit      applycredit.CommandHandler
	prepareDriverPay preparedriverpay.CommandHandler
	adjustDriverPay  adjustdriverpay.CommandHandler
	approveDriverPay approvedriverpay.CommandHandler
	settleDriverPay  settledriverpay.CommandHandler
	recordDutyDay    recorddutyday.CommandHandler

	charterBalances   charterbalance.QueryHandler
	lockStatuses      charterlockstatus.QueryHandler
	invoiceStatements invoicestatement.QueryHandler
	routePlans        routeplan.QueryHandler
	payStatements     paystatement.QueryHandler
	creditLedgers     creditledger.QueryHandler
	hosSummaries      shell.CoreQueryHandler[hossummary.Query, hossummary.HOSSummary]
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp commands.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithPeriodGuard sets the fiscal period guard shared by every mutating handler.
func WithPeriodGuard(guard shell.FiscalPeriodGuard) Option {
	return func(s *Service) {
		s.periodGuard = guard
	}
}

// WithCompliancePolicy overrides the hours-of-service policy used when duty days are recorded.
func WithCompliancePolicy(compliance core.CompliancePolicy) Option {
	return func(s *Service) {
		s.compliance = compliance
	}
}

// WithTaxPolicy overrides the GST rate applied to taxable charge lines.
func WithTaxPolicy(tax core.TaxPolicy) Option {
	return func(s *Service) {
		s.tax = tax
	}
}

// WithApprovalPolicy overrides the threshold above which invoice finalization needs an approver.
func WithApprovalPolicy(approval core.ApprovalPolicy) Option {
	return func(s *Service) {
		s.approval = approval
	}
}

// WithBillingPolicy overrides invoice terms applied when service completes.
func WithBillingPolicy(billing core.BillingPolicy) Option {
	return func(s *Service) {
		s.billing = billing
	}
}

// WithRetryOptions sets the retry configuration shared by every command handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(s *Service) {
		s.retryOpts = opts
	}
}

// NewService wires one handler per operation against the given journal.
//
// The duty summary query runs behind the generic snapshot wrapper when the
// journal supports snapshots, so scheduled refreshes leave a warm cache for
// interactive reads. A journal without snapshot support falls back to full
// replay per query.
func NewService(
	journal Journal,
	directory EmployeeDirectory,
	clients ClientDirectory,
	vault ReceiptVault,
	opts ...Option,
) *Service {
	s := &Service{
		journal:    journal,
		directory:  directory,
		clients:    clients,
		vault:      vault,
		clock:      time.Now,
		compliance: core.DefaultCompliancePolicy(),
		tax:        core.DefaultTaxPolicy(),
		approval:   core.DefaultApprovalPolicy(),
		billing:    core.DefaultBillingPolicy(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.bookCharter = bookcharter.NewCommandHandler(journal,
		bookcharter.WithPeriodGuard(s.periodGuard), bookcharter.WithRetryOptions(s.retryOpts...))
	s.confirmCharter = confirmcharter.NewCommandHandler(journal,
		confirmcharter.WithPeriodGuard(s.periodGuard), confirmcharter.WithRetryOptions(s.retryOpts...))
	s.dispatchCharter = dispatchcharter.NewCommandHandler(journal,
		dispatchcharter.WithPeriodGuard(s.periodGuard), dispatchcharter.WithRetryOptions(s.retryOpts...))
	s.progressService = progressservice.NewCommandHandler(journal,
		progressservice.WithPeriodGuard(s.periodGuard), progressservice.WithRetryOptions(s.retryOpts...))
	s.completeCharter = completecharter.NewCommandHandler(journal,
		completecharter.WithPeriodGuard(s.periodGuard), completecharter.WithRetryOptions(s.retryOpts...),
		completecharter.WithBillingPolicy(s.billing))
	s.cancelCharter = cancelcharter.NewCommandHandler(journal,
		cancelcharter.WithPeriodGuard(s.periodGuard), cancelcharter.WithRetryOptions(s.retryOpts...))
	s.lockCharter = lockcharter.NewCommandHandler(journal,
		lockcharter.WithPeriodGuard(s.periodGuard), lockcharter.WithRetryOptions(s.retryOpts...))
	s.unlockCharter = unlockcharter.NewCommandHandler(journal,
		unlockcharter.WithPeriodGuard(s.periodGuard), unlockcharter.WithRetryOptions(s.retryOpts...))
	s.archiveCharter = archivecharter.NewCommandHandler(journal,
		archivecharter.WithPeriodGuard(s.periodGuard), archivecharter.WithRetryOptions(s.retryOpts...))
	s.planRouteLeg = planrouteleg.NewCommandHandler(journal,
		planrouteleg.WithPeriodGuard(s.periodGuard), planrouteleg.WithRetryOptions(s.retryOpts...))
	s.recordLegActuals = recordlegactuals.NewCommandHandler(journal,
		recordlegactuals.WithPeriodGuard(s.periodGuard), recordlegactuals.WithRetryOptions(s.retryOpts...))
	s.recordIncident = recordincident.NewCommandHandler(journal,
		recordincident.WithPeriodGuard(s.periodGuard), recordincident.WithRetryOptions(s.retryOpts...))
	s.resolveIncident = resolveincident.NewCommandHandler(journal,
		resolveincident.WithPeriodGuard(s.periodGuard), resolveincident.WithRetryOptions(s.retryOpts...))
	s.recordCharge = recordcharge.NewCommandHandler(journal,
		recordcharge.WithPeriodGuard(s.periodGuard), recordcharge.WithRetryOptions(s.retryOpts...),
		recordcharge.WithTaxPolicy(s.tax))
	s.recordNFDCharge = recordnfdcharge.NewCommandHandler(journal,
		recordnfdcharge.WithPeriodGuard(s.periodGuard), recordnfdcharge.WithRetryOptions(s.retryOpts...))
	s.removeCharge = removecharge.NewCommandHandler(journal,
		removecharge.WithPeriodGuard(s.periodGuard), removecharge.WithRetryOptions(s.retryOpts...))
	s.finalizeInvoice = finalizeinvoice.NewCommandHandler(journal,
		finalizeinvoice.WithPeriodGuard(s.periodGuard), finalizeinvoice.WithRetryOptions(s.retryOpts...),
		finalizeinvoice.WithApprovalPolicy(s.approval))
	s.voidInvoice = voidinvoice.NewCommandHandler(journal,
		voidinvoice.WithPeriodGuard(s.periodGuard), voidinvoice.WithRetryOptions(s.retryOpts...))
	s.applyPayment = applypayment.NewCommandHandler(journal,
		applypayment.WithPeriodGuard(s.periodGuard), applypayment.WithRetryOptions(s.retryOpts...))
	s.applyCredit = applycredit.NewCommandHandler(journal,
		applycredit.WithPeriodGuard(s.periodGuard), applycredit.WithRetryOptions(s.retryOpts...))
	s.prepareDriverPay = preparedriverpay.NewCommandHandler(journal, directory,
		preparedriverpay.WithPeriodGuard(s.periodGuard), preparedriverpay.WithRetryOptions(s.retryOpts...))
	s.adjustDriverPay = adjustdriverpay.NewCommandHandler(journal,
		adjustdriverpay.WithPeriodGuard(s.periodGuard), adjustdriverpay.WithRetryOptions(s.retryOpts...))
	s.approveDriverPay = approvedriverpay.NewCommandHandler(journal,
		approvedriverpay.WithPeriodGuard(s.periodGuard), approvedriverpay.WithRetryOptions(s.retryOpts...))
	s.settleDriverPay = settledriverpay.NewCommandHandler(journal,
		settledriverpay.WithPeriodGuard(s.periodGuard), settledriverpay.WithRetryOptions(s.retryOpts...))
	s.recordDutyDay = recorddutyday.NewCommandHandler(journal,
		recorddutyday.WithPeriodGuard(s.periodGuard), recorddutyday.WithRetryOptions(s.retryOpts...),
		recorddutyday.WithCompliancePolicy(s.compliance))

	s.charterBalances = charterbalance.NewQueryHandler(journal)
	s.lockStatuses = charterlockstatus.NewQueryHandler(journal)
	s.invoiceStatements = invoicestatement.NewQueryHandler(journal)
	s.routePlans = routeplan.NewQueryHandler(journal)
	s.payStatements = paystatement.NewQueryHandler(journal)
	s.creditLedgers = creditledger.NewQueryHandler(journal)

	hosBase := hossummary.NewQueryHandler(journal)
	s.hosSummaries = hosBase

	wrapped, err := snapshot.NewGenericSnapshotWrapper[hossummary.Query, hossummary.HOSSummary](
		hosBase, hossummary.ProjectHOSSummary, hossummary.BuildDutyScope)
	if err == nil {
		s.hosSummaries = wrapped
	}

	return s
}

// LockCharter places the administrative lock on a charter. While locked
// every mutation is refused until UnlockCharter lifts it.
func (s *Service) LockCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	reason string,
	lockedBy core.ActorString,
) (OperationResult, error) {
	handled, err := s.lockCharter.Handle(ctx, lockcharter.BuildCommand(reserveNumber, reason, lockedBy, s.clock()))

	return translateOutcome(handled, err,
		fmt.Sprintf("charter %s locked", reserveNumber),
		fmt.Sprintf("charter %s is already locked", reserveNumber))
}

// UnlockCharter lifts the administrative lock from a charter.
func (s *Service) UnlockCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	unlockedBy core.ActorString,
) (OperationResult, error) {
	handled, err := s.unlockCharter.Handle(ctx, unlockcharter.BuildCommand(reserveNumber, unlockedBy, s.clock()))

	return translateOutcome(handled, err,
		fmt.Sprintf("charter %s unlocked", reserveNumber),
		fmt.Sprintf("charter %s is not locked", reserveNumber))
}

// CancelCharter cancels a charter and strikes its open charge lines. The
// handler decides the refund-versus-retention split; the result reports how
// many lines the cancellation struck. A refused cancellation still leaves an
// audit record in the journal.
func (s *Service) CancelCharter(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	actor core.ActorString,
	reason string,
) (CancelResult, error) {
	command := cancelcharter.BuildCommand(reserveNumber, actor, reason, uuid.New().String(), s.clock())

	handled, err := s.cancelCharter.Handle(ctx, command)
	if err != nil {
		if isBusinessRefusal(err) {
			return CancelResult{Message: err.Error()}, nil
		}

		return CancelResult{}, err
	}

	if handled.Idempotent {
		return CancelResult{
			Success: true,
			Message: fmt.Sprintf("charter %s is already cancelled", reserveNumber),
		}, nil
	}

	cancelled, found, err := s.latestCancellation(ctx, reserveNumber)
	if err != nil {
		return CancelResult{}, err
	}

	result := CancelResult{
		Success: true,
		Message: fmt.Sprintf("charter %s cancelled", reserveNumber),
	}

	if found {
		result.DeletedChargeCount = cancelled.RemovedChargeCount
		if cancelled.RemovedChargeCount > 0 {
			result.Message = fmt.Sprintf("charter %s cancelled, %d charge lines struck",
				reserveNumber, cancelled.RemovedChargeCount)
		}
	}

	return result, nil
}

// DeleteCharge strikes one charge line from a charter's invoice. The result
// reports the gross amount removed. Deleting an already removed line is
// reported as success. A refused deletion still leaves an audit record in
// the journal.
func (s *Service) DeleteCharge(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	chargeID string,
	actor core.ActorString,
	reason string,
) (DeleteChargeResult, error) {
	handled, err := s.removeCharge.Handle(ctx, removecharge.BuildCommand(reserveNumber, chargeID, actor, reason, s.clock()))
	if err != nil {
		if isBusinessRefusal(err) {
			return DeleteChargeResult{Message: err.Error()}, nil
		}

		return DeleteChargeResult{}, err
	}

	removed, found, err := s.removedCharge(ctx, reserveNumber, chargeID)
	if err != nil {
		return DeleteChargeResult{}, err
	}

	result := DeleteChargeResult{Success: true}
	if found {
		result.DeletedAmount = removed.Amount
	}

	switch {
	case handled.Idempotent:
		result.Message = fmt.Sprintf("charge %s was already removed from charter %s", chargeID, reserveNumber)
	default:
		result.Message = fmt.Sprintf("charge %s removed from charter %s, %s struck from the invoice",
			chargeID, reserveNumber, result.DeletedAmount.StringFixed(2))
	}

	return result, nil
}

// RecordNFDCharge bills the flat returned-payment fee against a charter.
// The charge id is minted here and reported back so the line can be removed
// later if the bank recalls the return.
func (s *Service) RecordNFDCharge(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (NFDChargeResult, error) {
	chargeID := uuid.New().String()

	handled, err := s.recordNFDCharge.Handle(ctx, recordnfdcharge.BuildCommand(reserveNumber, chargeID, s.clock()))
	if err != nil {
		if isBusinessRefusal(err) {
			return NFDChargeResult{Message: err.Error()}, nil
		}

		return NFDChargeResult{}, err
	}

	if handled.Idempotent {
		return NFDChargeResult{
			Success: true,
			Message: fmt.Sprintf("returned-payment fee was already recorded on charter %s", reserveNumber),
		}, nil
	}

	return NFDChargeResult{
		Success:  true,
		ChargeID: chargeID,
		Message:  fmt.Sprintf("returned-payment fee recorded on charter %s", reserveNumber),
	}, nil
}

// GetCharterLockStatus reports the lock flag and the presented lifecycle
// status of a charter. A charter that was never booked reports an unlocked,
// empty status.
func (s *Service) GetCharterLockStatus(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (LockStatus, error) {
	status, err := s.lockStatuses.Handle(ctx, charterlockstatus.BuildQuery(reserveNumber))
	if err != nil {
		return LockStatus{}, err
	}

	return LockStatus{IsLocked: status.IsLocked, Status: status.Status}, nil
}

// GetCharterBalance reports the money position of a charter. A charter that
// was never booked reports all zeros.
func (s *Service) GetCharterBalance(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (Balance, error) {
	balance, err := s.charterBalances.Handle(ctx, charterbalance.BuildQuery(reserveNumber))
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		TotalCharges:  balance.TotalCharges,
		TotalPayments: balance.TotalPayments,
		BalanceDue:    balance.BalanceDue,
	}, nil
}

// ReconcileBankFeed applies postings settled since the given time as client
// payments, using the posting id as the payment id. Postings the journal has
// already seen count as AlreadyApplied; postings the domain refuses count as
// Skipped. An infrastructure failure aborts the run so the same window can
// be fetched again, which is safe because re-applying a posting is a no-op.
func (s *Service) ReconcileBankFeed(ctx context.Context, feed BankFeed, since time.Time) (ReconcileReport, error) {
	postings, err := feed.Postings(ctx, since)
	if err != nil {
		return ReconcileReport{}, err
	}

	report := ReconcileReport{}

	for _, posting := range postings {
		command := applypayment.BuildCommand(
			posting.ReserveNumber,
			posting.PostingID,
			posting.Amount,
			posting.Method,
			uuid.New().String(),
			core.CreditOverpay,
			posting.PostedAt,
		)

		handled, handleErr := s.applyPayment.Handle(ctx, command)
		if handleErr != nil {
			if isBusinessRefusal(handleErr) {
				report.Skipped++
				continue
			}

			return report, handleErr
		}

		if handled.Idempotent {
			report.AlreadyApplied++
			continue
		}

		report.Applied++
	}

	return report, nil
}

// translateOutcome folds a command handler outcome into an OperationResult.
// Business refusals become results with the refusal as the message;
// everything else stays an error.
func translateOutcome(handled shell.HandlerResult, err error, done, already string) (OperationResult, error) {
	if err != nil {
		if isBusinessRefusal(err) {
			return OperationResult{Message: err.Error()}, nil
		}

		return OperationResult{}, err
	}

	if handled.Idempotent {
		return OperationResult{Success: true, Message: already}, nil
	}

	return OperationResult{Success: true, Message: done}, nil
}

// latestCancellation reads the most recent cancellation record of a charter.
func (s *Service) latestCancellation(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
) (core.CharterCancelled, bool, error) {
	scope := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.CharterCancelledEventType).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()

	history, err := s.queryEvents(ctx, scope)
	if err != nil {
		return core.CharterCancelled{}, false, err
	}

	for i := len(history) - 1; i >= 0; i-- {
		if cancelled, ok := history[i].(core.CharterCancelled); ok {
			return cancelled, true, nil
		}
	}

	return core.CharterCancelled{}, false, nil
}

// removedCharge reads the removal record of one charge line.
func (s *Service) removedCharge(
	ctx context.Context,
	reserveNumber core.ReserveNumberString,
	chargeID string,
) (core.ChargeRemoved, bool, error) {
	scope := charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.ChargeRemovedEventType).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()

	history, err := s.queryEvents(ctx, scope)
	if err != nil {
		return core.ChargeRemoved{}, false, err
	}

	for i := len(history) - 1; i >= 0; i-- {
		if removed, ok := history[i].(core.ChargeRemoved); ok && removed.ChargeID == chargeID {
			return removed, true, nil
		}
	}

	return core.ChargeRemoved{}, false, nil
}

// queryEvents reads and unmarshals the scoped journal records with strong
// consistency, so a read placed right after a commit sees that commit.
func (s *Service) queryEvents(ctx context.Context, scope charterstore.Scope) (core.DomainEvents, error) {
	records, _, err := s.journal.Query(charterstore.WithStrongConsistency(ctx), scope)
	if err != nil {
		return nil, err
	}

	return shell.DomainEventsFrom(records)
}
