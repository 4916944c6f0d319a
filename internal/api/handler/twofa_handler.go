package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/ports"
)

type TwoFaHandler struct {
	twoFaService ports.TwoFaService
}

func NewTwoFaHandler(twoFaService ports.TwoFaService) *TwoFaHandler {
	return &TwoFaHandler{twoFaService: twoFaService}
}

// codeRequest carries a numeric verification code (TOTP or SMS).
type codeRequest struct {
	Code string `json:"code" form:"code" validate:"required,numeric"`
}

// Generate issues a fresh TOTP secret and returns its provisioning QR/URI.
//
// @Summary      Generate a 2FA secret
// @Tags         twofa
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      401  {object}  map[string]any
// @Router       /twofa [get]
func (h *TwoFaHandler) Generate(c echo.Context) error {
	source, err := requestSource(c)
	if err != nil {
		return err
	}

	resp, err := h.twoFaService.Generate(c.Request().Context(), ctxUserID(c), source)
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// Verify checks a submitted TOTP code.
//
// @Summary      Verify a 2FA code
// @Tags         twofa
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /twofa/verify [post]
func (h *TwoFaHandler) Verify(c echo.Context) error {
	var req codeRequest
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

	resp, err := h.twoFaService.Verify(c.Request().Context(), ports.VerifyInput{
		UserID: ctxUserID(c),
		Value:  req.Code,
		Source: source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
