package mysql

import (
	"context"

	repaymentDomain "loanbook/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) Create(ctx context.Context, rr *repaymentDomain.ReceivedRepayment) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.ReceivedRepayment, error) {
	var out repaymentDomain.ReceivedRepayment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*repaymentDomain.ReceivedRepayment, error) {
	var out []*repaymentDomain.ReceivedRepayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("received_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
