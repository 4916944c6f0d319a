package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

type TransactionHandler struct {
	transactionService ports.TransactionService
}

func NewTransactionHandler(transactionService ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type transactionRequest struct {
	AccountID string `json:"account_id" form:"account_id" validate:"required"`
	Type      string `json:"type" form:"type" validate:"required,oneof=credit debit"`
	Amount    string `json:"amount" form:"amount" validate:"required"`
	Category  string `json:"category" form:"category"`
	Note      string `json:"note" form:"note"`
}

// Create records a ledger entry on one of the caller's accounts.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Success      201  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	source, err := requestSource(c)
	if err != nil {
		return err
	}

	resp, err := h.transactionService.Create(c.Request().Context(), domain.NewTransactionParams{
		UserID:    ctxUserID(c),
		AccountID: req.AccountID,
		Type:      domain.TransactionType(req.Type),
		Amount:    req.Amount,
		Category:  req.Category,
		Note:      req.Note,
		Source:    source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// List returns the ledger entries of one account, newest first.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        account_id  query     string  true  "Account id"
// @Success      200         {object}  ports.Response
// @Failure      417         {object}  map[string]any
// @Router       /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	resp, err := h.transactionService.List(c.Request().Context(), ctxUserID(c), c.QueryParam("account_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
