package service

import (
	"fmt"
	"io"

	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/tracker"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type Service struct {
	Finance *FinanceService
	Config  *config.Config
}

// NewService loads the working state from repo. Report output is written to out.
func NewService(repo store.Repository, cfg *config.Config, log *pterm.Logger, out io.Writer) (*Service, error) {
	initialLimit, err := cfg.InitialMonthlyLimit()
	if err != nil {
		return nil, err
	}

	finance, err := NewFinanceService(repo, initialLimit, log, out)
	if err != nil {
		return nil, err
	}

	return &Service{
		Finance: finance,
		Config:  cfg,
	}, nil
}

// FinanceService keeps the in-memory tracker and the working store in step.
type FinanceService struct {
	repo    store.Repository
	tracker *tracker.FinanceTracker
	log     *pterm.Logger
	out     io.Writer
}

func NewFinanceService(repo store.Repository, initialLimit decimal.Decimal, log *pterm.Logger, out io.Writer) (*FinanceService, error) {
	fs := &FinanceService{repo: repo, log: log, out: out}
	if err := fs.load(initialLimit); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FinanceService) load(initialLimit decimal.Decimal) error {
	limit, ok, err := fs.repo.GetMonthlyLimit()
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if !ok {
		if err := fs.repo.SetMonthlyLimit(initialLimit); err != nil {
			return fmt.Errorf("failed to initialize budget: %w", err)
		}
		limit = initialLimit
		fs.log.Debug("initialized monthly limit", fs.log.Args("limit", limit.String()))
	}

	transactions, err := fs.repo.GetAllTransactions()
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	goals, err := fs.repo.GetAllSavingGoals()
	if err != nil {
		return fmt.Errorf("failed to load saving goals: %w", err)
	}

	ft := tracker.New(limit, tracker.WithOutput(fs.out))
	for _, tx := range transactions {
		ft.Append(tx)
	}
	for _, goal := range goals {
		ft.AppendSavingGoal(goal)
	}
	fs.tracker = ft

	fs.log.Debug("loaded working state",
		fs.log.Args("transactions", len(transactions), "saving_goals", len(goals)))
	return nil
}

// Tracker exposes the current in-memory state for read-only reporting.
func (fs *FinanceService) Tracker() *tracker.FinanceTracker {
	return fs.tracker
}
