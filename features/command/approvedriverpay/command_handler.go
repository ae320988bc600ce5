package approvedriverpay

import (
	"context"

	"github.com/google/uuid"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
)

// Journal defines the interface needed by the CommandHandler for charter journal operations.
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

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core journal workflow: Query -> Unmarshal -> Decide -> Append.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	journal      Journal
	periodGuard  shell.FiscalPeriodGuard
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithPeriodGuard sets the fiscal period guard checked before any journal write.
func WithPeriodGuard(guard shell.FiscalPeriodGuard) Option {
	return func(h *CommandHandler) {
		h.periodGuard = guard
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(journal Journal, opts ...Option) CommandHandler {
	handler := CommandHandler{
		journal: journal,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// It delegates business logic to executeCommand and handles retry with exponential backoff.
// Returns HandlerResult containing business outcomes and execution metadata for observability.
//
// Resilience: Implements exponential backoff retry logic for sequence conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var isIdempotent bool

	// Execute command with retry logic (no observability - that's in the wrapper)
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := h.executeCommand(retryCtx, command)
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	// Build HandlerResult with business outcomes and retry metadata
	if isIdempotent {
		return shell.NewIdempotentResult(retryMetrics), err
	}

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (bool, error) {
	if guardErr := h.periodGuard.Check(command.OccurredAt); guardErr != nil {
		return false, guardErr
	}

	scope := BuildCharterScope(command.ReserveNumber)

	ctx = charterstore.WithStrongConsistency(ctx)

	// Query phase
	storedRecords, maxSequenceNumber, err := h.journal.Query(ctx, scope)
	if err != nil {
		return false, err
	}

	// Unmarshal phase
	history, err := shell.DomainEventsFrom(storedRecords)
	if err != nil {
		return false, err
	}

	// Business logic phase - delegate to pure core function
	result := Decide(history, command)

	if !result.HasEventsToAppend() {
		if refusalErr := result.HasError(); refusalErr != nil {
			return false, refusalErr // refused - nothing to append
		}

		return true, nil // Idempotent success - no event to append
	}

	// Append phase
	uid := uuid.New()
	eventMetadata := shell.BuildEventMetadata(uid, uid, uid, command.ApprovedBy)

	newRecords, marshalErr := shell.RecordsFrom(result.Events, eventMetadata)
	if marshalErr != nil {
		return false, marshalErr
	}

	appendErr := h.journal.Append(ctx, scope, maxSequenceNumber, newRecords[0], newRecords[1:]...)
	if appendErr != nil {
		return false, appendErr
	}

	return false, result.HasError()
}
