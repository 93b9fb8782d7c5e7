package main

import (
	"context"
	"fmt"

	"household-ledger/internal/database"
	"household-ledger/internal/dto"
	"household-ledger/internal/server"

	"github.com/prometheus/client_golang/prometheus"
)

type seedCmd struct {
	YearBE            int   `name:"year-be" help:"Buddhist Era year to generate (default: current year)."`
	CashPerMonth      int   `name:"cash-per-month" help:"Cash transactions per month."`
	CreditPerMonth    int   `name:"credit-per-month" help:"Credit card transactions per month."`
	BloodPressureDays int   `name:"bp-days" help:"Days of blood pressure readings."`
	Seed              int64 `help:"Random seed, 0 picks one."`
	SkipPeriods       bool  `name:"skip-periods" help:"Do not generate named periods."`
}

func (s *seedCmd) Run(c *cliContext) error {
	cfg := c.setup()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	req := &dto.SeedRequest{
		YearBE:            s.YearBE,
		CashPerMonth:      s.CashPerMonth,
		CreditPerMonth:    s.CreditPerMonth,
		BloodPressureDays: s.BloodPressureDays,
		Seed:              s.Seed,
		SkipNamedPeriods:  s.SkipPeriods,
	}

	svc := server.NewServices(db.DB, cfg, prometheus.NewRegistry())
	result, err := svc.DemoData.Seed(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("seeded year %d: %d periods, %d cash, %d credit, %d readings\n",
		result.YearBE, result.NamedPeriods, result.CashTransactions,
		result.CreditTransactions, result.BloodPressureRecords)
	return nil
}
