package card

import (
	"time"
)

type CreateCardInput struct {
	UserID string
	Type   string
}

type UpdateCardInput struct {
	UserID   string
	CardID   string
	Disabled bool
}

type CardDTO struct {
	CardID         string     `json:"card_id"`
	Type           string     `json:"type"`
	Number         string     `json:"number"`
	ExpirationDate time.Time  `json:"expiration_date"`
	DisabledAt     *time.Time `json:"disabled_at,omitempty"`
}

type CreateTransactionInput struct {
	UserID       string
	CardID       string
	Amount       int64
	CurrencyCode string
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	CardID        string    `json:"card_id"`
	Amount        int64     `json:"amount"`
	CurrencyCode  string    `json:"currency_code"`
	CreatedAt     time.Time `json:"created_at"`
}
