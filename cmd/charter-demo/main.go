// Package main provides a guided tour of the charter engine against the
// in-memory journal: one charter walked from booking through billing,
// payment, client credit, bank reconciliation, driver pay and archival,
// with the projections printed along the way. The optional scheduler mode
// keeps the background reconcile and duty summary loops running afterwards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterops"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/shell/config"
)

// Config holds the command-line configuration for the demo.
type Config struct {
	RunScheduler      bool
	SchedulerDuration time.Duration
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	policies, err := config.LoadOperationsPolicies()
	if err != nil {
		log.Fatalf("Failed to load policies: %v", err)
	}

	journal := memoryengine.NewJournal()

	roster := staffRoster{rates: map[core.DriverIDString]decimal.Decimal{
		demoDriver: decimal.NewFromInt(30),
		"D-101":    decimal.NewFromInt(28),
	}}

	accounts := clientBook{records: map[core.ClientIDString]charterops.ClientRecord{
		demoClient: {ClientID: demoClient, Name: "Prairie Events Ltd.", BillingEmail: "billing@prairie-events.example"},
		"CL-1002":  {ClientID: "CL-1002", Name: "Northgate Petroleum", BillingEmail: "ap@northgate.example"},
	}}

	base := time.Now().Add(-96 * time.Hour)

	feed := bankStatement{postings: []charterops.BankPosting{
		{
			PostingID:     "BNK-84211",
			ReserveNumber: galaCharter,
			Amount:        decimal.NewFromFloat(262.50),
			Method:        "eft",
			PostedAt:      base.Add(80 * time.Hour),
		},
		{
			PostingID:     "BNK-84212",
			ReserveNumber: "RES-99999",
			Amount:        decimal.NewFromInt(120),
			Method:        "eft",
			PostedAt:      base.Add(80 * time.Hour),
		},
	}}

	service := charterops.NewService(journal, roster, accounts, &receiptBox{},
		charterops.WithCompliancePolicy(policies.Compliance),
		charterops.WithTaxPolicy(policies.Tax),
		charterops.WithApprovalPolicy(policies.Approval),
		charterops.WithBillingPolicy(policies.Billing),
	)

	scenario := &demo{service: service, feed: feed, base: base}

	if runErr := scenario.run(ctx); runErr != nil {
		log.Fatalf("Demo failed: %v", runErr)
	}

	if !cfg.RunScheduler {
		return
	}

	runScheduler(ctx, service, feed, cfg.SchedulerDuration)
}

func runScheduler(ctx context.Context, service *charterops.Service, feed bankStatement, duration time.Duration) {
	fmt.Printf("\n=== background scheduler ===\n")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	scheduler := charterops.NewScheduler(service, feed,
		charterops.WithReconcileInterval(2*time.Second),
		charterops.WithHOSRefreshInterval(3*time.Second),
	)

	scheduler.Start(ctx)
	log.Printf("Scheduler started: reconciling the feed every 2s, refreshing duty summaries every 3s")
	log.Printf("Running for %s, press Ctrl+C to stop early...", duration)

	select {
	case <-time.After(duration):
	case sig := <-sigChan:
		log.Printf("Received signal %v, stopping", sig)
	}

	scheduler.Stop()
	log.Printf("Scheduler stopped")
}

func parseFlags() Config {
	var (
		runSchedulerFlag  = flag.Bool("scheduler", false, "Run the background scheduler after the scenario")
		schedulerDuration = flag.Duration("scheduler-duration", 10*time.Second, "How long to keep the scheduler running")
	)

	flag.Parse()

	return Config{
		RunScheduler:      *runSchedulerFlag,
		SchedulerDuration: *schedulerDuration,
	}
}
