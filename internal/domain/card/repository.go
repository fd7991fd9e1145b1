package card

import "context"

type Repository interface {
	CreateCard(ctx context.Context, c *DebitCard) error
	GetCardByCardID(ctx context.Context, cardID string) (*DebitCard, error)
	ListCardsByUserID(ctx context.Context, userID string) ([]*DebitCard, error)
	SaveCard(ctx context.Context, c *DebitCard) error
	// DeleteCard soft-deletes; transactions stay for the audit trail.
	DeleteCard(ctx context.Context, c *DebitCard) error

	CreateTransaction(ctx context.Context, t *DebitCardTransaction) error
	GetTransactionByTransactionID(ctx context.Context, transactionID string) (*DebitCardTransaction, error)
	ListTransactionsByCardID(ctx context.Context, debitCardID uint64) ([]*DebitCardTransaction, error)
}
