package fakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ReceiptVaultFake is a ReceiptVault that keeps stored receipts in memory.
type ReceiptVaultFake struct {
	mu      sync.Mutex
	stored  []StoredReceipt
	failErr error
}

// StoredReceipt is one receipt the vault fake accepted.
type StoredReceipt struct {
	Ref           string
	ReserveNumber core.ReserveNumberString
	Receipt       charterops.Receipt
}

// NewReceiptVaultFake creates an empty vault fake.
func NewReceiptVaultFake() *ReceiptVaultFake {
	return &ReceiptVaultFake{}
}

// FailWith makes every store call return the given error.
func (f *ReceiptVaultFake) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failErr = err
}

// Store implements charterops.ReceiptVault.
func (f *ReceiptVaultFake) Store(
	_ context.Context,
	reserveNumber core.ReserveNumberString,
	receipt charterops.Receipt,
) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return "", f.failErr
	}

	ref := fmt.Sprintf("receipt-%d", len(f.stored)+1)
	f.stored = append(f.stored, StoredReceipt{
		Ref:           ref,
		ReserveNumber: reserveNumber,
		Receipt:       receipt,
	})

	return ref, nil
}

// Stored returns a copy of everything the vault accepted so far.
func (f *ReceiptVaultFake) Stored() []StoredReceipt {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]StoredReceipt, len(f.stored))
	copy(stored, f.stored)

	return stored
}

// BankFeedFake is a BankFeed backed by a fixed posting list.
type BankFeedFake struct {
	mu       sync.Mutex
	postings []charterops.BankPosting
	failErr  error
}

// NewBankFeedFake creates an empty feed fake.
func NewBankFeedFake() *BankFeedFake {
	return &BankFeedFake{}
}

// AddPosting appends a settled posting to the feed.
func (f *BankFeedFake) AddPosting(posting charterops.BankPosting) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.postings = append(f.postings, posting)
}

// FailWith makes every fetch return the given error.
func (f *BankFeedFake) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failErr = err
}

// Postings implements charterops.BankFeed, returning postings settled after
// the given time.
func (f *BankFeedFake) Postings(_ context.Context, since time.Time) ([]charterops.BankPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return nil, f.failErr
	}

	matching := make([]charterops.BankPosting, 0, len(f.postings))
	for _, posting := range f.postings {
		if posting.PostedAt.After(since) {
			matching = append(matching, posting)
		}
	}

	return matching, nil
}
