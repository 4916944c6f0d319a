package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

type GoalHandler struct {
	goalService ports.GoalService
}

func NewGoalHandler(goalService ports.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type goalRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Amount      string `json:"amount" form:"amount" validate:"required"`
	Currency    string `json:"currency" form:"currency" validate:"required,len=3"`
	Deadline    string `json:"deadline" form:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// Create adds a savings goal.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Success      201  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	var req goalRequest
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

	resp, err := h.goalService.Create(c.Request().Context(), domain.NewGoalParams{
		UserID:      ctxUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Deadline:    req.Deadline,
		Source:      source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// List returns the caller's savings goals.
//
// @Summary      List goals
// @Tags         goals
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      401  {object}  map[string]any
// @Router       /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	resp, err := h.goalService.List(c.Request().Context(), ctxUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
