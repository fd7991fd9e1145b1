package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"loanbook/internal/domain/card"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/repayment"
	"loanbook/internal/domain/schedule"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// userID pulls the authenticated caller's id from X-User-Id. Authentication
// itself happens upstream; handlers only need the owner id for scoping.
func userID(c echo.Context) (string, bool) {
	uid := strings.TrimSpace(c.Request().Header.Get("X-User-Id"))
	return uid, reHex32.MatchString(uid)
}

// errJSON maps domain errors to status codes in one place.
func errJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, card.ErrNotFound),
		errors.Is(err, card.ErrTransactionNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, card.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrInvalidInput),
		errors.Is(err, repayment.ErrInvalidAmount),
		errors.Is(err, card.ErrCardDisabled):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrAlreadyRepaid),
		errors.Is(err, schedule.ErrNoneOutstanding):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
