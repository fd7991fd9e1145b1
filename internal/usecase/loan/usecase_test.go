package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loanbook/internal/domain/loan"
	scheduleDomain "loanbook/internal/domain/schedule"
	"loanbook/internal/domain/uow"
	"loanbook/internal/testutil/loanmock"
	"loanbook/internal/testutil/schedulemock"
	"loanbook/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const testUser = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

var processedAt = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

// fixture wires the usecase to in-memory mocks and captures what got written.
type fixture struct {
	uc           *Usecase
	createdLoan  *domain.Loan
	createdBatch []*scheduleDomain.ScheduledRepayment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			l.ID = 42 // simulate auto-increment
			f.createdLoan = l
			return nil
		},
	}
	schedules := &schedulemock.Repo{
		CreateBatchFn: func(ctx context.Context, installments []*scheduleDomain.ScheduledRepayment) error {
			f.createdBatch = installments
			return nil
		},
	}
	f.uc = NewUsecase(loans, schedules, uowmock.Pass(uow.Repos{Loans: loans, Schedules: schedules}))
	return f
}

func TestCreate_ScheduleSumInvariant(t *testing.T) {
	f := newFixture(t)

	dto, err := f.uc.Create(context.Background(), CreateLoanInput{
		UserID: testUser, Amount: 1000, CurrencyCode: "VND", Terms: 3, ProcessedAt: processedAt,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	// 1000 over 3 terms floors to 333; the last takes the remainder
	want := []int64{333, 333, 334}
	if len(f.createdBatch) != 3 {
		t.Fatalf("installments = %d, want 3", len(f.createdBatch))
	}
	var sum int64
	for i, inst := range f.createdBatch {
		if inst.Amount != want[i] {
			t.Errorf("installment %d amount = %d, want %d", i+1, inst.Amount, want[i])
		}
		if inst.OutstandingAmount != inst.Amount {
			t.Errorf("installment %d outstanding = %d, want %d", i+1, inst.OutstandingAmount, inst.Amount)
		}
		if inst.Status != scheduleDomain.StatusDue {
			t.Errorf("installment %d status = %s, want due", i+1, inst.Status)
		}
		if inst.LoanID != 42 {
			t.Errorf("installment %d loan FK = %d, want 42", i+1, inst.LoanID)
		}
		sum += inst.Amount
	}
	if sum != 1000 {
		t.Fatalf("installment sum = %d, want 1000", sum)
	}

	if dto.OutstandingAmount != 1000 || dto.Status != string(domain.StatusDue) {
		t.Fatalf("unexpected loan dto: %+v", dto)
	}
	if len(dto.LoanID) != 32 {
		t.Fatalf("LoanID length: %d", len(dto.LoanID))
	}
	if f.createdLoan.RemainingInstallments != 3 {
		t.Fatalf("remaining installments = %d, want 3", f.createdLoan.RemainingInstallments)
	}
}

func TestCreate_DueDateProgression(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), CreateLoanInput{
		UserID: testUser, Amount: 1200, CurrencyCode: "VND", Terms: 12, ProcessedAt: processedAt,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	for i, inst := range f.createdBatch {
		want := processedAt.AddDate(0, i+1, 0)
		if !inst.DueDate.Equal(want) {
			t.Errorf("installment %d due = %v, want %v", i+1, inst.DueDate, want)
		}
		if inst.Seq != i+1 {
			t.Errorf("installment %d seq = %d", i+1, inst.Seq)
		}
	}
}

func TestCreate_SingleTermTakesAll(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), CreateLoanInput{
		UserID: testUser, Amount: 1000, CurrencyCode: "EUR", Terms: 1, ProcessedAt: processedAt,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(f.createdBatch) != 1 || f.createdBatch[0].Amount != 1000 {
		t.Fatalf("unexpected schedule: %+v", f.createdBatch)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	f := newFixture(t)

	for _, in := range []CreateLoanInput{
		{UserID: testUser, Amount: 0, CurrencyCode: "VND", Terms: 3, ProcessedAt: processedAt},
		{UserID: testUser, Amount: -100, CurrencyCode: "VND", Terms: 3, ProcessedAt: processedAt},
		{UserID: testUser, Amount: 900, CurrencyCode: "VND", Terms: 0, ProcessedAt: processedAt},
		{UserID: "", Amount: 900, CurrencyCode: "VND", Terms: 3, ProcessedAt: processedAt},
	} {
		if _, err := f.uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("input %+v: err = %v, want ErrInvalidInput", in, err)
		}
	}
	if f.createdLoan != nil {
		t.Fatalf("no loan row may be written for invalid input")
	}
}

func TestCreate_ScheduleWriteFailureAborts(t *testing.T) {
	sentinel := errors.New("insert failed")

	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error { l.ID = 1; return nil },
	}
	schedules := &schedulemock.Repo{
		CreateBatchFn: func(ctx context.Context, installments []*scheduleDomain.ScheduledRepayment) error {
			return sentinel
		},
	}
	uc := NewUsecase(loans, schedules, uowmock.Pass(uow.Repos{Loans: loans, Schedules: schedules}))

	_, err := uc.Create(context.Background(), CreateLoanInput{
		UserID: testUser, Amount: 900, CurrencyCode: "VND", Terms: 3, ProcessedAt: processedAt,
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want schedule insert failure surfaced", err)
	}
}

func TestGet_Success(t *testing.T) {
	const lid = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domain.Loan, error) {
			return &domain.Loan{
				ID: 7, LoanID: lid, UserID: testUser,
				Amount: 900, OutstandingAmount: 600, Terms: 3,
				CurrencyCode: "VND", Status: domain.StatusDue, ProcessedAt: processedAt,
			}, nil
		},
	}
	schedules := &schedulemock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]*scheduleDomain.ScheduledRepayment, error) {
			if loanID != 7 {
				return nil, errors.New("wrong loan FK")
			}
			return []*scheduleDomain.ScheduledRepayment{
				{Seq: 1, Amount: 300, OutstandingAmount: 0, Status: scheduleDomain.StatusRepaid},
				{Seq: 2, Amount: 300, OutstandingAmount: 300, Status: scheduleDomain.StatusDue},
				{Seq: 3, Amount: 300, OutstandingAmount: 300, Status: scheduleDomain.StatusDue},
			}, nil
		},
	}
	uc := NewUsecase(loans, schedules, uowmock.New())

	dto, err := uc.Get(context.Background(), lid)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.LoanID != lid || len(dto.Installments) != 3 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.Installments[0].Status != string(scheduleDomain.StatusRepaid) {
		t.Fatalf("installment status lost in mapping: %+v", dto.Installments[0])
	}
}

func TestGet_NotFound(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(loans, &schedulemock.Repo{}, uowmock.New())

	if _, err := uc.Get(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
