package uow

import (
	"context"

	"loanbook/internal/domain/card"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/repayment"
	"loanbook/internal/domain/schedule"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Loans      loan.Repository
	Schedules  schedule.Repository
	Repayments repayment.Repository
	Cards      card.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
