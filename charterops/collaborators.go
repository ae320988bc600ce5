package charterops

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// EmployeeDirectory resolves driver master data from the HR system.
// The journal never stores pay rates; they are looked up when pay is prepared.
type EmployeeDirectory interface {
	// PayRateAt returns the hourly pay rate effective for the driver at the given time.
	PayRateAt(ctx context.Context, driverID core.DriverIDString, at time.Time) (decimal.Decimal, error)

	// ActiveDrivers lists the drivers currently on the roster. The scheduler
	// walks this list when it refreshes cached duty summaries.
	ActiveDrivers(ctx context.Context) ([]core.DriverIDString, error)
}

// ClientRecord is the directory's view of a client account.
type ClientRecord struct {
	ClientID     core.ClientIDString
	Name         string
	BillingEmail string
}

// ClientDirectory resolves client accounts from the CRM.
type ClientDirectory interface {
	// ClientByID looks up a client account. The second return is false when
	// the directory has no record of the id.
	ClientByID(ctx context.Context, clientID core.ClientIDString) (ClientRecord, bool, error)
}

// Receipt is one driver expense receipt handed in with a pay adjustment.
type Receipt struct {
	Description string
	Amount      decimal.Decimal
	SubmittedAt time.Time
}

// ReceiptVault stores receipt documents and returns an opaque reference.
// The journal records only the summed amount, never the documents themselves.
type ReceiptVault interface {
	Store(ctx context.Context, reserveNumber core.ReserveNumberString, receipt Receipt) (string, error)
}

// BankPosting is one settled posting from the bank feed. The posting id
// doubles as the payment id when the posting is applied, so re-processing a
// feed window cannot post the same money twice.
type BankPosting struct {
	PostingID     string
	ReserveNumber core.ReserveNumberString
	Amount        decimal.Decimal
	Method        string
	PostedAt      time.Time
}

// BankFeed lists settled postings from the bank. Read only; the feed is
// never written back to.
type BankFeed interface {
	Postings(ctx context.Context, since time.Time) ([]BankPosting, error)
}
