package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/ports"
)

type VerificationHandler struct {
	verificationService ports.VerificationService
}

func NewVerificationHandler(verificationService ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// VerifyEmail redeems the encrypted code from a verification link. The route
// is public: the link lands straight from the user's mailbox.
//
// @Summary      Verify email address
// @Tags         verification
// @Produce      json
// @Param        code  path      string  true  "Encrypted verification code"
// @Success      200   {object}  ports.Response
// @Failure      417   {object}  map[string]any
// @Router       /verification/email/{code} [get]
func (h *VerificationHandler) VerifyEmail(c echo.Context) error {
	resp, err := h.verificationService.VerifyEmail(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// SendPhoneCode texts a verification code to the caller's phone number.
//
// @Summary      Send phone verification code
// @Tags         verification
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /verification/phone/send [post]
func (h *VerificationHandler) SendPhoneCode(c echo.Context) error {
	source, err := requestSource(c)
	if err != nil {
		return err
	}

	resp, err := h.verificationService.SendPhoneCode(c.Request().Context(), ctxUserID(c), source)
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// VerifyPhone redeems an SMS verification code.
//
// @Summary      Verify phone number
// @Tags         verification
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /verification/phone [post]
func (h *VerificationHandler) VerifyPhone(c echo.Context) error {
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

	resp, err := h.verificationService.VerifyPhone(c.Request().Context(), ports.VerifyInput{
		UserID: ctxUserID(c),
		Value:  req.Code,
		Source: source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
