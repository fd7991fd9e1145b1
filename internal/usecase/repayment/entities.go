package repayment

import (
	"time"
)

type ApplyInput struct {
	LoanID       string
	Amount       int64
	CurrencyCode string
	ReceivedAt   time.Time
}

type ReceivedRepaymentDTO struct {
	RepaymentID  string    `json:"repayment_id"`
	LoanID       string    `json:"loan_id"`
	Amount       int64     `json:"amount"`
	CurrencyCode string    `json:"currency_code"`
	ReceivedAt   time.Time `json:"received_at"`
	// Post-payment loan state, so the caller sees the effect without a
	// second round trip.
	LoanOutstandingAmount int64  `json:"loan_outstanding_amount"`
	LoanStatus            string `json:"loan_status"`
}
