package schedulemock

import (
	"context"

	domain "loanbook/internal/domain/schedule"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn             func(ctx context.Context, installments []*domain.ScheduledRepayment) error
	ListByLoanIDFn            func(ctx context.Context, loanID uint64) ([]*domain.ScheduledRepayment, error)
	ListOutstandingByLoanIDFn func(ctx context.Context, loanID uint64) ([]*domain.ScheduledRepayment, error)
	SaveFn                    func(ctx context.Context, s *domain.ScheduledRepayment) error
}

func (m *Repo) CreateBatch(ctx context.Context, installments []*domain.ScheduledRepayment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, installments)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.ScheduledRepayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOutstandingByLoanID(ctx context.Context, loanID uint64) ([]*domain.ScheduledRepayment, error) {
	if m.ListOutstandingByLoanIDFn != nil {
		return m.ListOutstandingByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, s *domain.ScheduledRepayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
