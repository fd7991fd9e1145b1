package http

import (
	"net/http"

	carduc "loanbook/internal/usecase/card"

	"github.com/labstack/echo/v4"
)

type CardHandler struct{ uc *carduc.Usecase }

func NewCardHandler(uc *carduc.Usecase) *CardHandler { return &CardHandler{uc: uc} }

type createCardReq struct {
	Type string `json:"type" validate:"required,max=32"`
}

func (h *CardHandler) CreateCard(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	var req createCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateCard(c.Request().Context(), carduc.CreateCardInput{UserID: uid, Type: req.Type})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CardHandler) ListCards(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	dtos, err := h.uc.ListCards(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CardHandler) GetCard(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	dto, err := h.uc.GetCard(c.Request().Context(), uid, c.Param("card_id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateCardReq struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

func (h *CardHandler) UpdateCard(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	var req updateCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateCard(c.Request().Context(), carduc.UpdateCardInput{
		UserID:   uid,
		CardID:   c.Param("card_id"),
		Disabled: *req.Disabled,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CardHandler) DeleteCard(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	if err := h.uc.DeleteCard(c.Request().Context(), uid, c.Param("card_id")); err != nil {
		return errJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type createTransactionReq struct {
	CardID       string `json:"card_id"       validate:"required,hex32"`
	Amount       int64  `json:"amount"        validate:"required,gt=0"`
	CurrencyCode string `json:"currency_code" validate:"required,currency"`
}

func (h *CardHandler) CreateTransaction(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	var req createTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateTransaction(c.Request().Context(), carduc.CreateTransactionInput{
		UserID:       uid,
		CardID:       req.CardID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CardHandler) ListTransactions(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	dtos, err := h.uc.ListTransactions(c.Request().Context(), uid, c.Param("card_id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CardHandler) GetTransaction(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	dto, err := h.uc.GetTransaction(c.Request().Context(), uid, c.Param("transaction_id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
