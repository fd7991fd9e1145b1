package repayment

import (
	"context"
	"errors"

	domainLoan "loanbook/internal/domain/loan"
	domainRepayment "loanbook/internal/domain/repayment"
	"loanbook/internal/domain/schedule"
	"loanbook/internal/domain/uow"
	"loanbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans      domainLoan.Repository
	repayments domainRepayment.Repository
	uow        uow.UnitOfWork
}

// NewUsecase: read repos for queries, UoW for the repayment transaction.
func NewUsecase(loans domainLoan.Repository, repayments domainRepayment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, repayments: repayments, uow: tx}
}

// Apply allocates one received payment against a loan's schedule and appends
// the payment fact, all in one transaction on a locked loan row. The payment
// walks the outstanding installments in due-date order: an underpayment
// leaves the first one partial, an exact payment repays it, an overpayment
// rolls the excess into the following installment(s).
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ReceivedRepaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, domainRepayment.ErrInvalidAmount
	}

	var dto *ReceivedRepaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusDue {
			return domainLoan.ErrAlreadyRepaid
		}

		installments, err := r.Schedules.ListOutstandingByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(installments) == 0 {
			return schedule.ErrNoneOutstanding
		}

		applied, err := allocate(ctx, r, l, installments, in.Amount)
		if err != nil {
			return err
		}

		l.OutstandingAmount -= applied
		if l.RemainingInstallments == 0 {
			l.Status = domainLoan.StatusRepaid
			l.OutstandingAmount = 0
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rr := &domainRepayment.ReceivedRepayment{
			RepaymentID:  id.NewID32(),
			LoanID:       l.ID,
			Amount:       in.Amount,
			CurrencyCode: in.CurrencyCode,
			ReceivedAt:   in.ReceivedAt.UTC(),
		}
		if err := r.Repayments.Create(ctx, rr); err != nil {
			return err
		}

		dto = &ReceivedRepaymentDTO{
			RepaymentID:           rr.RepaymentID,
			LoanID:                l.LoanID,
			Amount:                rr.Amount,
			CurrencyCode:          rr.CurrencyCode,
			ReceivedAt:            rr.ReceivedAt,
			LoanOutstandingAmount: l.OutstandingAmount,
			LoanStatus:            string(l.Status),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// allocate spreads amount across the installments (already ordered by due
// date) and returns how much of it landed on the schedule. Anything beyond
// the total outstanding is not applied; the fact row still records it.
func allocate(ctx context.Context, r uow.Repos, l *domainLoan.Loan, installments []*schedule.ScheduledRepayment, amount int64) (int64, error) {
	remaining := amount
	var applied int64
	for _, inst := range installments {
		if remaining == 0 {
			break
		}
		pay := remaining
		if pay > inst.OutstandingAmount {
			pay = inst.OutstandingAmount
		}
		inst.OutstandingAmount -= pay
		if inst.OutstandingAmount == 0 {
			inst.Status = schedule.StatusRepaid
			l.RemainingInstallments--
		} else {
			inst.Status = schedule.StatusPartial
		}
		if err := r.Schedules.Save(ctx, inst); err != nil {
			return 0, err
		}
		remaining -= pay
		applied += pay
	}
	return applied, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]*ReceivedRepaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	rrs, err := u.repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*ReceivedRepaymentDTO, 0, len(rrs))
	for _, rr := range rrs {
		out = append(out, &ReceivedRepaymentDTO{
			RepaymentID:           rr.RepaymentID,
			LoanID:                l.LoanID,
			Amount:                rr.Amount,
			CurrencyCode:          rr.CurrencyCode,
			ReceivedAt:            rr.ReceivedAt,
			LoanOutstandingAmount: l.OutstandingAmount,
			LoanStatus:            string(l.Status),
		})
	}
	return out, nil
}
