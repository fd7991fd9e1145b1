package loan

import (
	"time"
)

type CreateLoanInput struct {
	UserID       string
	Amount       int64
	CurrencyCode string
	Terms        int
	ProcessedAt  time.Time
}

type InstallmentDTO struct {
	Seq               int       `json:"seq"`
	Amount            int64     `json:"amount"`
	OutstandingAmount int64     `json:"outstanding_amount"`
	CurrencyCode      string    `json:"currency_code"`
	DueDate           time.Time `json:"due_date"`
	Status            string    `json:"status"`
}

type LoanDTO struct {
	LoanID            string           `json:"loan_id"`
	UserID            string           `json:"user_id"`
	Amount            int64            `json:"amount"`
	OutstandingAmount int64            `json:"outstanding_amount"`
	CurrencyCode      string           `json:"currency_code"`
	Terms             int              `json:"terms"`
	Status            string           `json:"status"`
	ProcessedAt       time.Time        `json:"processed_at"`
	Installments      []InstallmentDTO `json:"installments,omitempty"`
}
