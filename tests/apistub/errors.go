package apistub

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

var (
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "Invalid email or password")
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHttpNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// httpErrorHandler answers every error as {"error": "..."}, like the real backend.
func httpErrorHandler(err error, ctx echo.Context) {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	if herr, ok := errors.Cause(err).(*echo.HTTPError); ok {
		if herr == middleware.ErrJWTMissing {
			herr = echo.NewHTTPError(http.StatusUnauthorized, herr.Message)
		}
		if herr.Internal != nil {
			if ierr, ok := herr.Internal.(*echo.HTTPError); ok {
				herr = ierr
			}
		}
		code = herr.Code
		if m, ok := herr.Message.(string); ok {
			message = m
		}
	}

	if !ctx.Response().Committed {
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, echo.Map{"error": message})
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
