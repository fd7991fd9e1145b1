package loan

import (
	"context"
	"errors"
	"time"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/schedule"
	"loanbook/internal/domain/uow"
	"loanbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans     loan.Repository
	schedules schedule.Repository
	uow       uow.UnitOfWork
}

// NewUsecase: read repos for queries, UoW for the issuance transaction.
func NewUsecase(loans loan.Repository, schedules schedule.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, schedules: schedules, uow: tx}
}

// Create issues a loan together with its full amortization schedule. The loan
// row and every installment commit atomically; any failure leaves nothing
// behind.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.UserID == "" || in.Amount <= 0 || in.Terms <= 0 {
		return nil, loan.ErrInvalidInput
	}

	processedAt := in.ProcessedAt.UTC().Truncate(24 * time.Hour)

	l := &loan.Loan{
		LoanID:                id.NewID32(),
		UserID:                in.UserID,
		Amount:                in.Amount,
		OutstandingAmount:     in.Amount,
		Terms:                 in.Terms,
		RemainingInstallments: in.Terms,
		CurrencyCode:          in.CurrencyCode,
		Status:                loan.StatusDue,
		ProcessedAt:           processedAt,
	}

	var installments []*schedule.ScheduledRepayment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		installments = buildSchedule(l)
		return r.Schedules.CreateBatch(ctx, installments)
	})
	if err != nil {
		return nil, err
	}

	return toLoanDTO(l, installments), nil
}

// buildSchedule splits the principal into Terms near-equal monthly
// installments. Integer division floors each installment; the remainder goes
// to the last one only, so the installments always sum to the principal.
func buildSchedule(l *loan.Loan) []*schedule.ScheduledRepayment {
	base := l.Amount / int64(l.Terms)
	remainder := l.Amount - base*int64(l.Terms)

	out := make([]*schedule.ScheduledRepayment, 0, l.Terms)
	for i := 1; i <= l.Terms; i++ {
		amount := base
		if i == l.Terms {
			amount += remainder
		}
		out = append(out, &schedule.ScheduledRepayment{
			LoanID:            l.ID,
			Seq:               i,
			Amount:            amount,
			OutstandingAmount: amount,
			CurrencyCode:      l.CurrencyCode,
			DueDate:           l.ProcessedAt.AddDate(0, i, 0),
			Status:            schedule.StatusDue,
		})
	}
	return out
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	installments, err := u.schedules.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return toLoanDTO(l, installments), nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]*LoanDTO, error) {
	ls, err := u.loans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*LoanDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLoanDTO(l, nil))
	}
	return out, nil
}

func toLoanDTO(l *loan.Loan, installments []*schedule.ScheduledRepayment) *LoanDTO {
	dto := &LoanDTO{
		LoanID:            l.LoanID,
		UserID:            l.UserID,
		Amount:            l.Amount,
		OutstandingAmount: l.OutstandingAmount,
		CurrencyCode:      l.CurrencyCode,
		Terms:             l.Terms,
		Status:            string(l.Status),
		ProcessedAt:       l.ProcessedAt,
	}
	for _, s := range installments {
		dto.Installments = append(dto.Installments, InstallmentDTO{
			Seq:               s.Seq,
			Amount:            s.Amount,
			OutstandingAmount: s.OutstandingAmount,
			CurrencyCode:      s.CurrencyCode,
			DueDate:           s.DueDate,
			Status:            string(s.Status),
		})
	}
	return dto
}
