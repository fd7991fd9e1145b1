package card

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"loanbook/internal/domain/card"
	"loanbook/pkg/id"

	"gorm.io/gorm"
)

// Cards live four years from issuance.
const cardLifetime = 4

type Usecase struct{ repo card.Repository }

func NewUsecase(r card.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) CreateCard(ctx context.Context, in CreateCardInput) (*CardDTO, error) {
	c := &card.DebitCard{
		CardID:         id.NewID32(),
		UserID:         in.UserID,
		Type:           in.Type,
		Number:         newCardNumber(),
		ExpirationDate: time.Now().UTC().AddDate(cardLifetime, 0, 0),
	}
	if err := u.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}
	return toCardDTO(c), nil
}

func (u *Usecase) ListCards(ctx context.Context, userID string) ([]*CardDTO, error) {
	cs, err := u.repo.ListCardsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*CardDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCardDTO(c))
	}
	return out, nil
}

func (u *Usecase) GetCard(ctx context.Context, userID, cardID string) (*CardDTO, error) {
	c, err := u.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	return toCardDTO(c), nil
}

// UpdateCard enables or disables the card; that is the only mutable bit.
func (u *Usecase) UpdateCard(ctx context.Context, in UpdateCardInput) (*CardDTO, error) {
	c, err := u.ownedCard(ctx, in.UserID, in.CardID)
	if err != nil {
		return nil, err
	}
	if in.Disabled && c.DisabledAt == nil {
		now := time.Now().UTC()
		c.DisabledAt = &now
	} else if !in.Disabled {
		c.DisabledAt = nil
	}
	if err := u.repo.SaveCard(ctx, c); err != nil {
		return nil, err
	}
	return toCardDTO(c), nil
}

func (u *Usecase) DeleteCard(ctx context.Context, userID, cardID string) error {
	c, err := u.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	return u.repo.DeleteCard(ctx, c)
}

func (u *Usecase) CreateTransaction(ctx context.Context, in CreateTransactionInput) (*TransactionDTO, error) {
	c, err := u.ownedCard(ctx, in.UserID, in.CardID)
	if err != nil {
		return nil, err
	}
	if !c.Active() {
		return nil, card.ErrCardDisabled
	}
	t := &card.DebitCardTransaction{
		TransactionID: id.NewID32(),
		DebitCardID:   c.ID,
		Amount:        in.Amount,
		CurrencyCode:  in.CurrencyCode,
	}
	if err := u.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return toTransactionDTO(t, c.CardID), nil
}

func (u *Usecase) ListTransactions(ctx context.Context, userID, cardID string) ([]*TransactionDTO, error) {
	c, err := u.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	ts, err := u.repo.ListTransactionsByCardID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*TransactionDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTransactionDTO(t, c.CardID))
	}
	return out, nil
}

func (u *Usecase) GetTransaction(ctx context.Context, userID, transactionID string) (*TransactionDTO, error) {
	t, err := u.repo.GetTransactionByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, card.ErrTransactionNotFound
		}
		return nil, err
	}
	// ownership runs through the card the transaction belongs to
	cs, err := u.repo.ListCardsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		if c.ID == t.DebitCardID {
			return toTransactionDTO(t, c.CardID), nil
		}
	}
	return nil, card.ErrNotOwner
}

// ownedCard fetches the card and enforces that userID owns it.
func (u *Usecase) ownedCard(ctx context.Context, userID, cardID string) (*card.DebitCard, error) {
	c, err := u.repo.GetCardByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, card.ErrNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, card.ErrNotOwner
	}
	return c, nil
}

// newCardNumber returns a random 16-digit PAN-shaped string.
func newCardNumber() string {
	digits := make([]byte, 16)
	for i := range digits {
		n, _ := rand.Int(rand.Reader, big.NewInt(10))
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}

func toCardDTO(c *card.DebitCard) *CardDTO {
	return &CardDTO{
		CardID:         c.CardID,
		Type:           c.Type,
		Number:         c.Number,
		ExpirationDate: c.ExpirationDate,
		DisabledAt:     c.DisabledAt,
	}
}

func toTransactionDTO(t *card.DebitCardTransaction, cardID string) *TransactionDTO {
	return &TransactionDTO{
		TransactionID: t.TransactionID,
		CardID:        cardID,
		Amount:        t.Amount,
		CurrencyCode:  t.CurrencyCode,
		CreatedAt:     t.CreatedAt,
	}
}
