// Package app wires the file stores and services both front ends run on.
package app

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	catStore "github.com/MrJamesThe3rd/gillpay/internal/category/store"
	"github.com/MrJamesThe3rd/gillpay/internal/config"
	"github.com/MrJamesThe3rd/gillpay/internal/export"
	"github.com/MrJamesThe3rd/gillpay/internal/importer"
	"github.com/MrJamesThe3rd/gillpay/internal/importer/bankcsv"
	"github.com/MrJamesThe3rd/gillpay/internal/importer/ofx"
	"github.com/MrJamesThe3rd/gillpay/internal/money"
	"github.com/MrJamesThe3rd/gillpay/internal/report"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
	txStore "github.com/MrJamesThe3rd/gillpay/internal/transaction/store"
)

type App struct {
	Config       *config.Config
	Categories   *category.Service
	Transactions *transaction.Service
	Reports      *report.Service
	Imports      *importer.Service
	Exports      *export.Service
}

// New creates the data files on first run, seeding the default categories,
// and returns the wired services.
func New(cfg *config.Config) (*App, error) {
	cats := catStore.New(cfg.CategoriesPath())

	seeded, err := cats.Initialize(category.DefaultSeed())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare categories: %w", err)
	}

	if seeded {
		slog.Info("created category registry", "path", cats.Path())
	}

	ledger := txStore.New(cfg.LedgerPath())
	if err := ledger.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to prepare ledger: %w", err)
	}

	slog.Debug("using data files", "ledger", ledger.Path(), "categories", cats.Path())

	catSvc := category.NewService(cats)
	txSvc := transaction.NewService(ledger, catSvc)

	return &App{
		Config:       cfg,
		Categories:   catSvc,
		Transactions: txSvc,
		Reports:      report.NewService(ledger),
		Imports:      importer.NewService(statementParser(), txSvc),
		Exports:      export.NewService(txSvc, ledger.Path(), cats.Path()),
	}, nil
}

// statementParser reads OFX downloads and falls back to the CSV profiles for
// everything else.
func statementParser() importer.Importer {
	return importer.NewRouter(bankcsv.NewParser(), importer.Format{
		Match:  ofx.Match,
		Parser: ofx.NewParser(),
	})
}

// Money renders an amount in the configured currency.
func (a *App) Money(d decimal.Decimal) string {
	return money.Format(d, a.Config.App.Currency)
}

// SignedMoney is Money with a "+" on positive values.
func (a *App) SignedMoney(d decimal.Decimal) string {
	return money.FormatSigned(d, a.Config.App.Currency)
}
