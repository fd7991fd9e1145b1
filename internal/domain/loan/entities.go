package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDue    Status = "due"
	StatusRepaid Status = "repaid"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidInput  = errors.New("loan amount and terms must be positive")
	ErrAlreadyRepaid = errors.New("loan is already repaid")
)

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	UserID string `gorm:"column:user_id;type:char(32);not null;index:idx_loans_user" json:"user_id"`
	// Amount and OutstandingAmount are minor currency units (e.g. cents).
	Amount            int64 `gorm:"column:amount;not null" json:"amount"`
	OutstandingAmount int64 `gorm:"column:outstanding_amount;not null" json:"outstanding_amount"`
	Terms             int   `gorm:"column:terms;not null" json:"terms"`
	// RemainingInstallments counts installments not yet fully repaid, kept on
	// the row so a payment does not have to re-count the schedule.
	RemainingInstallments int            `gorm:"column:remaining_installments;not null" json:"-"`
	CurrencyCode          string         `gorm:"column:currency_code;type:char(3);not null" json:"currency_code"`
	Status                Status         `gorm:"column:status;type:enum('due','repaid');default:'due'" json:"status"`
	ProcessedAt           time.Time      `gorm:"column:processed_at;type:date;not null" json:"processed_at"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
