package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE) so two
	// concurrent repayments against one loan serialize.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByUserID(ctx context.Context, userID string) ([]*Loan, error)
	Save(ctx context.Context, l *Loan) error
}
