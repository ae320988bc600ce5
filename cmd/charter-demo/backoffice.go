package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// staffRoster is a fixed driver roster with one hourly rate per driver,
// standing in for the HR system.
type staffRoster struct {
	rates map[core.DriverIDString]decimal.Decimal
}

func (r staffRoster) PayRateAt(_ context.Context, driverID core.DriverIDString, _ time.Time) (decimal.Decimal, error) {
	rate, found := r.rates[driverID]
	if !found {
		return decimal.Zero, fmt.Errorf("driver %s is not on the roster", driverID)
	}

	return rate, nil
}

func (r staffRoster) ActiveDrivers(_ context.Context) ([]core.DriverIDString, error) {
	drivers := make([]core.DriverIDString, 0, len(r.rates))
	for driverID := range r.rates {
		drivers = append(drivers, driverID)
	}

	sort.Strings(drivers)

	return drivers, nil
}

// clientBook is a fixed client directory standing in for the CRM.
type clientBook struct {
	records map[core.ClientIDString]charterops.ClientRecord
}

func (b clientBook) ClientByID(_ context.Context, clientID core.ClientIDString) (charterops.ClientRecord, bool, error) {
	record, found := b.records[clientID]

	return record, found, nil
}

// receiptBox keeps a count of stored receipts and hands out sequential
// references, standing in for the document vault.
type receiptBox struct {
	stored int
}

func (b *receiptBox) Store(_ context.Context, reserveNumber core.ReserveNumberString, _ charterops.Receipt) (string, error) {
	b.stored++

	return fmt.Sprintf("%s/receipt-%d", reserveNumber, b.stored), nil
}

// bankStatement is a fixed list of settled postings standing in for the bank feed.
type bankStatement struct {
	postings []charterops.BankPosting
}

func (s bankStatement) Postings(_ context.Context, since time.Time) ([]charterops.BankPosting, error) {
	matching := make([]charterops.BankPosting, 0, len(s.postings))
	for _, posting := range s.postings {
		if posting.PostedAt.After(since) {
			matching = append(matching, posting)
		}
	}

	return matching, nil
}
