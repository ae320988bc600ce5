// Package fakes provides in-memory collaborator implementations for tests
// and the demo runner. Each fake is safe for concurrent use and records the
// calls it receives.
package fakes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ErrUnknownDriver is returned when a pay rate is requested for a driver the
// directory fake does not know.
var ErrUnknownDriver = errors.New("driver is not in the directory")

// EmployeeDirectoryFake is an EmployeeDirectory backed by a fixed rate table.
type EmployeeDirectoryFake struct {
	mu      sync.Mutex
	rates   map[core.DriverIDString]decimal.Decimal
	roster  []core.DriverIDString
	failErr error
}

// NewEmployeeDirectoryFake creates an empty directory fake.
func NewEmployeeDirectoryFake() *EmployeeDirectoryFake {
	return &EmployeeDirectoryFake{
		rates: make(map[core.DriverIDString]decimal.Decimal),
	}
}

// AddDriver puts a driver on the roster with the given hourly rate.
func (f *EmployeeDirectoryFake) AddDriver(driverID core.DriverIDString, hourlyRate decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, known := f.rates[driverID]; !known {
		f.roster = append(f.roster, driverID)
	}

	f.rates[driverID] = hourlyRate
}

// FailWith makes every lookup return the given error.
func (f *EmployeeDirectoryFake) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failErr = err
}

// PayRateAt implements charterops.EmployeeDirectory.
func (f *EmployeeDirectoryFake) PayRateAt(
	_ context.Context,
	driverID core.DriverIDString,
	_ time.Time,
) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return decimal.Zero, f.failErr
	}

	rate, known := f.rates[driverID]
	if !known {
		return decimal.Zero, ErrUnknownDriver
	}

	return rate, nil
}

// ActiveDrivers implements charterops.EmployeeDirectory.
func (f *EmployeeDirectoryFake) ActiveDrivers(_ context.Context) ([]core.DriverIDString, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return nil, f.failErr
	}

	roster := make([]core.DriverIDString, len(f.roster))
	copy(roster, f.roster)

	return roster, nil
}

// ClientDirectoryFake is a ClientDirectory backed by a fixed account table.
type ClientDirectoryFake struct {
	mu      sync.Mutex
	clients map[core.ClientIDString]charterops.ClientRecord
}

// NewClientDirectoryFake creates an empty directory fake.
func NewClientDirectoryFake() *ClientDirectoryFake {
	return &ClientDirectoryFake{
		clients: make(map[core.ClientIDString]charterops.ClientRecord),
	}
}

// AddClient registers a client account.
func (f *ClientDirectoryFake) AddClient(record charterops.ClientRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clients[record.ClientID] = record
}

// ClientByID implements charterops.ClientDirectory.
func (f *ClientDirectoryFake) ClientByID(
	_ context.Context,
	clientID core.ClientIDString,
) (charterops.ClientRecord, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, found := f.clients[clientID]

	return record, found, nil
}
