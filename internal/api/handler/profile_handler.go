package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// formSecurityQuestions decodes an optional JSON security_questions field.
func formSecurityQuestions(c echo.Context) []domain.SecurityQuestion {
	raw := c.FormValue("security_questions")
	if raw == "" {
		return nil
	}
	var questions []domain.SecurityQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil
	}
	return questions
}

// Update applies a partial profile update. Only the provided fields change;
// a payload carrying nothing returns 304.
//
// @Summary      Update profile
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /users/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	source, err := requestSource(c)
	if err != nil {
		return err
	}

	params := domain.NewProfileParams{
		UserID:            ctxUserID(c),
		About:             c.FormValue("about"),
		FunFacts:          c.FormValue("fun_facts"),
		Gender:            domain.Gender(c.FormValue("gender")),
		OtherGender:       c.FormValue("other_gender"),
		DateOfBirth:       c.FormValue("date_of_birth"),
		Nationality:       c.FormValue("nationality"),
		PlaceOfBirth:      c.FormValue("place_of_birth"),
		PinCode:           c.FormValue("pin_code"),
		Metadata:          formMetadata(c),
		SecurityQuestions: formSecurityQuestions(c),
		TwoFa:             c.FormValue("two_fa") == "true",
		TwoFaCode:         c.FormValue("two_fa_code"),
		Source:            source,
	}

	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		params.Avatar = fileUpload(fh)
	}
	if fh, err := c.FormFile("cover"); err == nil && fh != nil {
		params.Cover = fileUpload(fh)
	}

	resp, err := h.profileService.Update(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
