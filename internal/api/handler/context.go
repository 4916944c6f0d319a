package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/api/middleware"
	"github.com/brvhprince/planner-api/internal/core/domain"
)

// Client-reported provenance headers.
const (
	headerPlatform = "planner-platform"
	headerVersion  = "planner-version"
)

// ctxUserID extracts the user id injected by the Auth middleware. An empty
// result means the middleware did not run; services reject it downstream.
func ctxUserID(c echo.Context) string {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	return userID
}

// requestSource builds the provenance value object from the request. The IP
// always resolves through Echo, so construction only fails on a malformed
// proxy header.
func requestSource(c echo.Context) (*domain.Source, error) {
	return domain.NewSource(domain.NewSourceParams{
		IP:       c.RealIP(),
		Browser:  c.Request().UserAgent(),
		Referrer: c.Request().Referer(),
		Platform: c.Request().Header.Get(headerPlatform),
		Version:  c.Request().Header.Get(headerVersion),
	})
}
