package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const (
	validationHelpURL = "https://brvhprince.github.io/lifeplanner/validations"
	permissionHelpURL = "https://brvhprince.github.io/lifeplanner/permissions"
	reportURL         = "https://brvhprince.github.io/lifeplanner/report"
)

// errorBody is the canonical error envelope. Subtype-specific fields are only
// present for the error kinds that carry them.
type errorBody struct {
	Code           int            `json:"code"`
	Reason         string         `json:"reason"`
	Message        string         `json:"message"`
	Property       string         `json:"property,omitempty"`
	ExtendedHelper string         `json:"extendedHelper,omitempty"`
	Path           string         `json:"path,omitempty"`
	Method         string         `json:"method,omitempty"`
	SendReport     string         `json:"sendReport,omitempty"`
	Instance       *errorInstance `json:"instance,omitempty"`
}

// errorInstance is the diagnostic block attached to database errors.
type errorInstance struct {
	Op      string `json:"op"`
	Driver  string `json:"driver"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps the closed
// set of typed errors to their status codes and the JSON envelope. Unknown
// errors default to 417; storage failures log the real cause and attach a
// report link.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := resolveError(err, log, c)
		_ = c.JSON(body.Code, errorResponse{Error: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorBody {
	var (
		required   *domain.PropertyRequiredError
		validation *domain.ValidationError
		permission *domain.PermissionError
		response   *domain.ResponseError
		route      *domain.RouteError
		database   *domain.DatabaseError
		he         *echo.HTTPError
	)

	switch {
	case errors.As(err, &required):
		return errorBody{
			Code:           http.StatusUnprocessableEntity,
			Reason:         "PropertyRequiredError",
			Message:        required.Message,
			Property:       required.Property,
			ExtendedHelper: validationHelpURL,
		}

	case errors.As(err, &validation):
		return errorBody{
			Code:           http.StatusUnprocessableEntity,
			Reason:         "ValidationError",
			Message:        validation.Message,
			ExtendedHelper: validationHelpURL,
		}

	case errors.As(err, &permission):
		return errorBody{
			Code:           http.StatusUnauthorized,
			Reason:         "PermissionError",
			Message:        permission.Message,
			ExtendedHelper: permissionHelpURL,
		}

	case errors.As(err, &route):
		return errorBody{
			Code:    http.StatusNotFound,
			Reason:  "RouteNotFound",
			Message: route.Message,
			Path:    route.Path,
			Method:  route.Method,
		}

	case errors.As(err, &database):
		log.Error().Err(database.Err).
			Str("op", database.Op).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("storage failure")

		instance := &errorInstance{Op: database.Op, Driver: "mongo"}
		if database.Err != nil {
			instance.Message = database.Err.Error()
		}
		return errorBody{
			Code:    http.StatusInternalServerError,
			Reason:  "DatabaseError",
			Message: database.Message,
			SendReport: fmt.Sprintf("%s?entity=%s&message=%s", reportURL,
				url.QueryEscape(database.Op), url.QueryEscape(database.Message)),
			Instance: instance,
		}

	case errors.As(err, &response):
		return errorBody{
			Code:    http.StatusExpectationFailed,
			Reason:  "ResponseError",
			Message: response.Message,
		}

	case errors.As(err, &he):
		// Router misses render as RouteNotFound; everything else Echo raises
		// (binding, method not allowed) keeps its status.
		if he.Code == http.StatusNotFound {
			return errorBody{
				Code:    http.StatusNotFound,
				Reason:  "RouteNotFound",
				Message: fmt.Sprintf("The requested path ~%s~ was not found on this server", c.Request().URL.Path),
				Path:    c.Request().URL.Path,
				Method:  c.Request().Method,
			}
		}
		return errorBody{
			Code:    he.Code,
			Reason:  "ResponseError",
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Anything unrecognised is treated as a failed expectation rather than a
	// server fault.
	log.Warn().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unclassified error")

	return errorBody{
		Code:    http.StatusExpectationFailed,
		Reason:  "ResponseError",
		Message: err.Error(),
	}
}
