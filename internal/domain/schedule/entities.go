package schedule

import (
	"errors"
	"time"
)

type Status string

const (
	StatusDue     Status = "due"
	StatusPartial Status = "partial"
	StatusRepaid  Status = "repaid"
)

var ErrNoneOutstanding = errors.New("no outstanding installment for loan")

// ScheduledRepayment is one installment of a loan's amortization schedule.
// Amount never changes after issuance; OutstandingAmount only goes down.
type ScheduledRepayment struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID uint64 `gorm:"column:loan_id;not null;index:idx_scheduled_repayments_loan" json:"-"`
	// Seq is the 1-based installment index; it breaks ties when two
	// installments land on the same due date.
	Seq               int       `gorm:"column:seq;not null" json:"seq"`
	Amount            int64     `gorm:"column:amount;not null" json:"amount"`
	OutstandingAmount int64     `gorm:"column:outstanding_amount;not null" json:"outstanding_amount"`
	CurrencyCode      string    `gorm:"column:currency_code;type:char(3);not null" json:"currency_code"`
	DueDate           time.Time `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Status            Status    `gorm:"column:status;type:enum('due','partial','repaid');default:'due'" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (ScheduledRepayment) TableName() string { return "scheduled_repayments" }
