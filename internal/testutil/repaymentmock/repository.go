package repaymentmock

import (
	"context"

	domain "loanbook/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.ReceivedRepayment) error
	GetByRepaymentIDFn func(ctx context.Context, repaymentID string) (*domain.ReceivedRepayment, error)
	ListByLoanIDFn     func(ctx context.Context, loanID uint64) ([]*domain.ReceivedRepayment, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.ReceivedRepayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.ReceivedRepayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.ReceivedRepayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
