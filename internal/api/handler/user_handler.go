package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type passwordVerifyRequest struct {
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type pinVerifyRequest struct {
	Code string `json:"code" form:"code" validate:"required,numeric,len=4"`
}

// Details returns the caller's account record. Pass ?profile=true to expand
// the profile.
//
// @Summary      Fetch account details
// @Tags         users
// @Produce      json
// @Param        profile  query     bool  false  "Expand the profile record"
// @Success      200      {object}  ports.Response
// @Failure      401      {object}  map[string]any
// @Router       /users/details [get]
func (h *UserHandler) Details(c echo.Context) error {
	source, err := requestSource(c)
	if err != nil {
		return err
	}

	resp, err := h.userService.Details(c.Request().Context(), ports.DetailsInput{
		UserID:  ctxUserID(c),
		Profile: c.QueryParam("profile") == "true",
		Source:  source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// VerifyPassword re-checks the caller's password.
//
// @Summary      Verify password
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /users/verify/password [post]
func (h *UserHandler) VerifyPassword(c echo.Context) error {
	var req passwordVerifyRequest
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

	resp, err := h.userService.VerifyPassword(c.Request().Context(), ports.VerifyInput{
		UserID: ctxUserID(c),
		Value:  req.Password,
		Source: source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// VerifyPinCode re-checks the caller's transactional pin.
//
// @Summary      Verify pin code
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /users/verify/pincode [post]
func (h *UserHandler) VerifyPinCode(c echo.Context) error {
	var req pinVerifyRequest
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

	resp, err := h.userService.VerifyPinCode(c.Request().Context(), ports.VerifyInput{
		UserID: ctxUserID(c),
		Value:  req.Code,
		Source: source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
