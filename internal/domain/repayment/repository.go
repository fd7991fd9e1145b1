package repayment

import "context"

type Repository interface {
	// Create appends a payment fact; rows are never updated or deleted.
	Create(ctx context.Context, r *ReceivedRepayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*ReceivedRepayment, error)
	// ListByLoanID returns payments oldest first.
	ListByLoanID(ctx context.Context, loanID uint64) ([]*ReceivedRepayment, error)
}
