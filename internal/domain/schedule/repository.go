package schedule

import "context"

type Repository interface {
	// CreateBatch inserts a whole schedule in one go; issuance always writes
	// the full set or nothing (the caller wraps it in a transaction).
	CreateBatch(ctx context.Context, installments []*ScheduledRepayment) error
	// ListByLoanID returns every installment ordered by due_date, seq.
	ListByLoanID(ctx context.Context, loanID uint64) ([]*ScheduledRepayment, error)
	// ListOutstandingByLoanID returns installments not yet repaid, same order.
	ListOutstandingByLoanID(ctx context.Context, loanID uint64) ([]*ScheduledRepayment, error)
	Save(ctx context.Context, s *ScheduledRepayment) error
}
