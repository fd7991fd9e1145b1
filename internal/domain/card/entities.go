package card

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("debit card not found")
	ErrTransactionNotFound = errors.New("debit card transaction not found")
	ErrNotOwner            = errors.New("debit card belongs to another user")
	ErrCardDisabled        = errors.New("debit card is disabled")
)

type DebitCard struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	CardID         string         `gorm:"column:card_id;type:char(32);not null;uniqueIndex:ux_debit_cards_card_id_active" json:"card_id"`
	UserID         string         `gorm:"column:user_id;type:char(32);not null;index:idx_debit_cards_user" json:"user_id"`
	Type           string         `gorm:"column:type;size:32;not null" json:"type"`
	Number         string         `gorm:"column:number;size:16;not null" json:"number"`
	ExpirationDate time.Time      `gorm:"column:expiration_date;type:date;not null" json:"expiration_date"`
	DisabledAt     *time.Time     `gorm:"column:disabled_at" json:"disabled_at,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DebitCard) TableName() string { return "debit_cards" }

func (c *DebitCard) Active() bool { return c.DisabledAt == nil }

type DebitCardTransaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_debit_card_transactions_transaction_id" json:"transaction_id"`
	DebitCardID   uint64    `gorm:"column:debit_card_id;not null;index:idx_debit_card_transactions_card" json:"-"`
	Amount        int64     `gorm:"column:amount;not null" json:"amount"`
	CurrencyCode  string    `gorm:"column:currency_code;type:char(3);not null" json:"currency_code"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DebitCardTransaction) TableName() string { return "debit_card_transactions" }
