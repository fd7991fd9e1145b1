package mysql

import (
	"context"

	cardDomain "loanbook/internal/domain/card"

	"gorm.io/gorm"
)

type CardRepository struct{ db *gorm.DB }

func NewCardRepository(db *gorm.DB) *CardRepository { return &CardRepository{db: db} }

func (r *CardRepository) CreateCard(ctx context.Context, c *cardDomain.DebitCard) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CardRepository) GetCardByCardID(ctx context.Context, cardID string) (*cardDomain.DebitCard, error) {
	var out cardDomain.DebitCard
	res := r.db.WithContext(ctx).Where("card_id = ?", cardID).First(&out)
	return &out, res.Error
}

func (r *CardRepository) ListCardsByUserID(ctx context.Context, userID string) ([]*cardDomain.DebitCard, error) {
	var out []*cardDomain.DebitCard
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CardRepository) SaveCard(ctx context.Context, c *cardDomain.DebitCard) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CardRepository) DeleteCard(ctx context.Context, c *cardDomain.DebitCard) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CardRepository) CreateTransaction(ctx context.Context, t *cardDomain.DebitCardTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *CardRepository) GetTransactionByTransactionID(ctx context.Context, transactionID string) (*cardDomain.DebitCardTransaction, error) {
	var out cardDomain.DebitCardTransaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, res.Error
}

func (r *CardRepository) ListTransactionsByCardID(ctx context.Context, debitCardID uint64) ([]*cardDomain.DebitCardTransaction, error) {
	var out []*cardDomain.DebitCardTransaction
	res := r.db.WithContext(ctx).
		Where("debit_card_id = ?", debitCardID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
