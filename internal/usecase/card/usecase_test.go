package card

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loanbook/internal/domain/card"
	"loanbook/internal/testutil/cardmock"

	"gorm.io/gorm"
)

const (
	ownerID    = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	strangerID = "cccccccccccccccccccccccccccccccc"
	testCardID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func activeCard() *domain.DebitCard {
	return &domain.DebitCard{
		ID: 3, CardID: testCardID, UserID: ownerID,
		Type: "visa", Number: "4111111111111111",
		ExpirationDate: time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateCard_GeneratesNumberAndExpiry(t *testing.T) {
	var created *domain.DebitCard
	uc := NewUsecase(&cardmock.Repo{
		CreateCardFn: func(ctx context.Context, c *domain.DebitCard) error {
			created = c
			return nil
		},
	})

	dto, err := uc.CreateCard(context.Background(), CreateCardInput{UserID: ownerID, Type: "visa"})
	if err != nil {
		t.Fatalf("CreateCard err: %v", err)
	}
	if len(dto.CardID) != 32 {
		t.Fatalf("CardID length = %d", len(dto.CardID))
	}
	if len(created.Number) != 16 {
		t.Fatalf("card number length = %d, want 16", len(created.Number))
	}
	for _, r := range created.Number {
		if r < '0' || r > '9' {
			t.Fatalf("card number has non-digit: %q", created.Number)
		}
	}
	// four years out, give or take the test's runtime
	wantYear := time.Now().UTC().AddDate(cardLifetime, 0, 0).Year()
	if created.ExpirationDate.Year() != wantYear {
		t.Fatalf("expiry year = %d, want %d", created.ExpirationDate.Year(), wantYear)
	}
	if created.DisabledAt != nil {
		t.Fatalf("new card must start active")
	}
}

func TestGetCard_OwnershipEnforced(t *testing.T) {
	uc := NewUsecase(&cardmock.Repo{
		GetCardByCardIDFn: func(ctx context.Context, cardID string) (*domain.DebitCard, error) {
			return activeCard(), nil
		},
	})

	if _, err := uc.GetCard(context.Background(), ownerID, testCardID); err != nil {
		t.Fatalf("owner read err: %v", err)
	}
	if _, err := uc.GetCard(context.Background(), strangerID, testCardID); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("stranger read err = %v, want ErrNotOwner", err)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	uc := NewUsecase(&cardmock.Repo{
		GetCardByCardIDFn: func(ctx context.Context, cardID string) (*domain.DebitCard, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	if _, err := uc.GetCard(context.Background(), ownerID, testCardID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateCard_DisableAndReenable(t *testing.T) {
	c := activeCard()
	uc := NewUsecase(&cardmock.Repo{
		GetCardByCardIDFn: func(ctx context.Context, cardID string) (*domain.DebitCard, error) {
			return c, nil
		},
		SaveCardFn: func(ctx context.Context, saved *domain.DebitCard) error { return nil },
	})

	dto, err := uc.UpdateCard(context.Background(), UpdateCardInput{UserID: ownerID, CardID: testCardID, Disabled: true})
	if err != nil {
		t.Fatalf("disable err: %v", err)
	}
	if dto.DisabledAt == nil {
		t.Fatalf("card should be disabled")
	}

	dto, err = uc.UpdateCard(context.Background(), UpdateCardInput{UserID: ownerID, CardID: testCardID, Disabled: false})
	if err != nil {
		t.Fatalf("re-enable err: %v", err)
	}
	if dto.DisabledAt != nil {
		t.Fatalf("card should be active again")
	}
}

func TestCreateTransaction_OwnerAndActiveOnly(t *testing.T) {
	c := activeCard()
	var created *domain.DebitCardTransaction
	repo := &cardmock.Repo{
		GetCardByCardIDFn: func(ctx context.Context, cardID string) (*domain.DebitCard, error) {
			return c, nil
		},
		CreateTransactionFn: func(ctx context.Context, txn *domain.DebitCardTransaction) error {
			created = txn
			return nil
		},
	}
	uc := NewUsecase(repo)

	in := CreateTransactionInput{UserID: ownerID, CardID: testCardID, Amount: 1000, CurrencyCode: "EUR"}
	dto, err := uc.CreateTransaction(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateTransaction err: %v", err)
	}
	if dto.Amount != 1000 || dto.CardID != testCardID {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if created.DebitCardID != c.ID {
		t.Fatalf("transaction FK = %d, want %d", created.DebitCardID, c.ID)
	}

	// stranger forbidden
	in.UserID = strangerID
	if _, err := uc.CreateTransaction(context.Background(), in); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("stranger err = %v, want ErrNotOwner", err)
	}

	// disabled card rejected
	now := time.Now().UTC()
	c.DisabledAt = &now
	in.UserID = ownerID
	if _, err := uc.CreateTransaction(context.Background(), in); !errors.Is(err, domain.ErrCardDisabled) {
		t.Fatalf("disabled err = %v, want ErrCardDisabled", err)
	}
}

func TestGetTransaction_ScopedToOwnersCards(t *testing.T) {
	c := activeCard()
	txn := &domain.DebitCardTransaction{
		TransactionID: "dddddddddddddddddddddddddddddddd",
		DebitCardID:   c.ID, Amount: 500, CurrencyCode: "EUR",
	}
	repo := &cardmock.Repo{
		GetTransactionByTransactionIDFn: func(ctx context.Context, transactionID string) (*domain.DebitCardTransaction, error) {
			return txn, nil
		},
		ListCardsByUserIDFn: func(ctx context.Context, userID string) ([]*domain.DebitCard, error) {
			if userID == ownerID {
				return []*domain.DebitCard{c}, nil
			}
			return nil, nil
		},
	}
	uc := NewUsecase(repo)

	if _, err := uc.GetTransaction(context.Background(), ownerID, txn.TransactionID); err != nil {
		t.Fatalf("owner read err: %v", err)
	}
	if _, err := uc.GetTransaction(context.Background(), strangerID, txn.TransactionID); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("stranger read err = %v, want ErrNotOwner", err)
	}
}
