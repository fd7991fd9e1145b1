package mysql

import (
	"context"

	scheduleDomain "loanbook/internal/domain/schedule"

	"gorm.io/gorm"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

func (r *ScheduleRepository) CreateBatch(ctx context.Context, installments []*scheduleDomain.ScheduledRepayment) error {
	if len(installments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&installments).Error
}

func (r *ScheduleRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*scheduleDomain.ScheduledRepayment, error) {
	var out []*scheduleDomain.ScheduledRepayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC, seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleRepository) ListOutstandingByLoanID(ctx context.Context, loanID uint64) ([]*scheduleDomain.ScheduledRepayment, error) {
	var out []*scheduleDomain.ScheduledRepayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND status <> ?", loanID, scheduleDomain.StatusRepaid).
		Order("due_date ASC, seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleRepository) Save(ctx context.Context, s *scheduleDomain.ScheduledRepayment) error {
	return r.db.WithContext(ctx).Save(s).Error
}
