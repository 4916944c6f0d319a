package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirstName  string `json:"first_name" form:"first_name" validate:"required"`
	OtherNames string `json:"other_names" form:"other_names"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"required,min=8"`
	Phone      string `json:"phone" form:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  ports.Response
// @Failure      417   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
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

	resp, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:  req.FirstName,
		OtherNames: req.OtherNames,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Source:     source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.Response
// @Failure      417   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
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

	resp, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Source:   source,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
