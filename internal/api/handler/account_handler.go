package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// fileUpload adapts a multipart part into the domain upload value. Opening is
// deferred until the storage layer streams the content.
func fileUpload(fh *multipart.FileHeader) *domain.FileUpload {
	return &domain.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// formMetadata decodes an optional JSON metadata form field.
func formMetadata(c echo.Context) map[string]string {
	raw := c.FormValue("metadata")
	if raw == "" {
		return nil
	}
	var meta map[string]string
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil
	}
	return meta
}

// Create opens a new transactional account. The request is multipart so an
// icon image and reference files can be attached.
//
// @Summary      Create an account
// @Tags         accounts
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	source, err := requestSource(c)
	if err != nil {
		return err
	}

	params := domain.NewAccountParams{
		UserID:      ctxUserID(c),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		AccountType: domain.AccountType(c.FormValue("type")),
		Balance:     c.FormValue("balance"),
		Currency:    c.FormValue("currency"),
		Primary:     c.FormValue("primary") == "true",
		Metadata:    formMetadata(c),
		Source:      source,
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		params.Image = fileUpload(fh)
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			params.Files = append(params.Files, fileUpload(fh))
		}
	}

	resp, err := h.accountService.Create(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// List returns every account the caller owns.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  ports.Response
// @Failure      401  {object}  map[string]any
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	resp, err := h.accountService.List(c.Request().Context(), ctxUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}

// Get returns one account by id.
//
// @Summary      Fetch an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  ports.Response
// @Failure      417  {object}  map[string]any
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	resp, err := h.accountService.Get(c.Request().Context(), ctxUserID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp.Status, resp)
}
