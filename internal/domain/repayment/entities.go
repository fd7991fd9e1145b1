package repayment

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("repayment amount must be positive")

// ReceivedRepayment is an append-only record of a payment event. It keeps
// the amount actually received, even when part of it exceeded the schedule.
type ReceivedRepayment struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID  string    `gorm:"column:repayment_id;type:char(32);not null;uniqueIndex:ux_received_repayments_repayment_id" json:"repayment_id"`
	LoanID       uint64    `gorm:"column:loan_id;not null;index:idx_received_repayments_loan" json:"-"`
	Amount       int64     `gorm:"column:amount;not null" json:"amount"`
	CurrencyCode string    `gorm:"column:currency_code;type:char(3);not null" json:"currency_code"`
	ReceivedAt   time.Time `gorm:"column:received_at;not null" json:"received_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

func (ReceivedRepayment) TableName() string { return "received_repayments" }
