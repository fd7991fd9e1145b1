package mysql

import (
	"context"
	"testing"
	"time"

	domain "loanbook/internal/domain/schedule"

	"gorm.io/gorm"
)

type scheduleSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	LoanID            uint64    `gorm:"column:loan_id"`
	Seq               int       `gorm:"column:seq"`
	Amount            int64     `gorm:"column:amount"`
	OutstandingAmount int64     `gorm:"column:outstanding_amount"`
	CurrencyCode      string    `gorm:"size:3;column:currency_code"`
	DueDate           time.Time `gorm:"column:due_date"`
	Status            string    `gorm:"type:text;column:status"` // ← no enum
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (scheduleSQLite) TableName() string { return "scheduled_repayments" }

func openScheduleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&scheduleSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeInstallment(loanID uint64, seq int, amount int64, due time.Time) *domain.ScheduledRepayment {
	return &domain.ScheduledRepayment{
		LoanID:            loanID,
		Seq:               seq,
		Amount:            amount,
		OutstandingAmount: amount,
		CurrencyCode:      "VND",
		DueDate:           due,
		Status:            domain.StatusDue,
	}
}

func TestCreateBatchAndListByLoanID(t *testing.T) {
	db := openScheduleTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	// insert out of order on purpose; listing must sort by due_date
	batch := []*domain.ScheduledRepayment{
		makeInstallment(7, 3, 334, base.AddDate(0, 3, 0)),
		makeInstallment(7, 1, 333, base.AddDate(0, 1, 0)),
		makeInstallment(7, 2, 333, base.AddDate(0, 2, 0)),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListByLoanID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].Seq != want {
			t.Errorf("pos %d: seq = %d, want %d", i, got[i].Seq, want)
		}
	}
}

func TestCreateBatch_Empty(t *testing.T) {
	db := openScheduleTestDB(t)
	repo := NewScheduleRepository(db)

	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("CreateBatch(nil): %v", err)
	}
}

func TestListOutstandingByLoanID_SkipsRepaid(t *testing.T) {
	db := openScheduleTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	first := makeInstallment(9, 1, 300, base.AddDate(0, 1, 0))
	first.OutstandingAmount = 0
	first.Status = domain.StatusRepaid
	second := makeInstallment(9, 2, 300, base.AddDate(0, 2, 0))
	second.OutstandingAmount = 100
	second.Status = domain.StatusPartial
	third := makeInstallment(9, 3, 300, base.AddDate(0, 3, 0))

	if err := repo.CreateBatch(ctx, []*domain.ScheduledRepayment{first, second, third}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListOutstandingByLoanID(ctx, 9)
	if err != nil {
		t.Fatalf("ListOutstandingByLoanID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (repaid one skipped)", len(got))
	}
	if got[0].Seq != 2 || got[0].Status != domain.StatusPartial {
		t.Errorf("first outstanding should be the partial seq 2, got %+v", got[0])
	}
	if got[1].Seq != 3 {
		t.Errorf("second outstanding should be seq 3, got %+v", got[1])
	}
}

func TestScheduleSave(t *testing.T) {
	db := openScheduleTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	inst := makeInstallment(11, 1, 300, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC))
	if err := repo.CreateBatch(ctx, []*domain.ScheduledRepayment{inst}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	inst.OutstandingAmount = 200
	inst.Status = domain.StatusPartial
	if err := repo.Save(ctx, inst); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.ListByLoanID(ctx, 11)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if got[0].OutstandingAmount != 200 || got[0].Status != domain.StatusPartial {
		t.Errorf("installment not updated: %+v", got[0])
	}
}
