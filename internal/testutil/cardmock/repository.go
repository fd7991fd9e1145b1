package cardmock

import (
	"context"

	domain "loanbook/internal/domain/card"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateCardFn                      func(ctx context.Context, c *domain.DebitCard) error
	GetCardByCardIDFn                 func(ctx context.Context, cardID string) (*domain.DebitCard, error)
	ListCardsByUserIDFn               func(ctx context.Context, userID string) ([]*domain.DebitCard, error)
	SaveCardFn                        func(ctx context.Context, c *domain.DebitCard) error
	DeleteCardFn                      func(ctx context.Context, c *domain.DebitCard) error
	CreateTransactionFn               func(ctx context.Context, t *domain.DebitCardTransaction) error
	GetTransactionByTransactionIDFn   func(ctx context.Context, transactionID string) (*domain.DebitCardTransaction, error)
	ListTransactionsByCardIDFn        func(ctx context.Context, debitCardID uint64) ([]*domain.DebitCardTransaction, error)
}

func (m *Repo) CreateCard(ctx context.Context, c *domain.DebitCard) error {
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetCardByCardID(ctx context.Context, cardID string) (*domain.DebitCard, error) {
	if m.GetCardByCardIDFn != nil {
		return m.GetCardByCardIDFn(ctx, cardID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListCardsByUserID(ctx context.Context, userID string) ([]*domain.DebitCard, error) {
	if m.ListCardsByUserIDFn != nil {
		return m.ListCardsByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveCard(ctx context.Context, c *domain.DebitCard) error {
	if m.SaveCardFn != nil {
		return m.SaveCardFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteCard(ctx context.Context, c *domain.DebitCard) error {
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateTransaction(ctx context.Context, t *domain.DebitCardTransaction) error {
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetTransactionByTransactionID(ctx context.Context, transactionID string) (*domain.DebitCardTransaction, error) {
	if m.GetTransactionByTransactionIDFn != nil {
		return m.GetTransactionByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListTransactionsByCardID(ctx context.Context, debitCardID uint64) ([]*domain.DebitCardTransaction, error) {
	if m.ListTransactionsByCardIDFn != nil {
		return m.ListTransactionsByCardIDFn(ctx, debitCardID)
	}
	return nil, context.Canceled
}
