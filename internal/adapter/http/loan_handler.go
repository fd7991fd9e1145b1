package http

import (
	"net/http"
	"time"

	loanuc "loanbook/internal/usecase/loan"
	repayuc "loanbook/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	loans      *loanuc.Usecase
	repayments *repayuc.Usecase
}

func NewLoanHandler(loans *loanuc.Usecase, repayments *repayuc.Usecase) *LoanHandler {
	return &LoanHandler{loans: loans, repayments: repayments}
}

type createLoanReq struct {
	Amount       int64  `json:"amount"        validate:"required,gt=0"`
	CurrencyCode string `json:"currency_code" validate:"required,currency"`
	Terms        int    `json:"terms"         validate:"required,gt=0"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	ProcessedAt string `json:"processed_at"  validate:"required,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	processedAt, _ := time.Parse("2006-01-02", req.ProcessedAt)

	dto, err := h.loans.Create(c.Request().Context(), loanuc.CreateLoanInput{
		UserID:       uid,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Terms:        req.Terms,
		ProcessedAt:  processedAt,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.loans.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	dtos, err := h.loans.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type repayLoanReq struct {
	Amount       int64  `json:"amount"        validate:"required,gt=0"`
	CurrencyCode string `json:"currency_code" validate:"required,currency"`
	ReceivedAt   string `json:"received_at"   validate:"required,datetime=2006-01-02"`
}

func (h *LoanHandler) RepayLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req repayLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	receivedAt, _ := time.Parse("2006-01-02", req.ReceivedAt)

	dto, err := h.repayments.Apply(c.Request().Context(), repayuc.ApplyInput{
		LoanID:       loanID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ReceivedAt:   receivedAt,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListRepayments(c echo.Context) error {
	dtos, err := h.repayments.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
