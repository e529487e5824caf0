package handler

import (
	"errors"
	"fmt"
	"net/http"
	"processos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// HTTPErrorHandler replaces echo's default handler, so errors raised outside
// the routes (unknown paths, wrong methods, panics, body limit) are written
// with the same envelope as the route errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apierr := toAPIError(err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(apierr.Code())
	} else {
		err = c.JSON(apierr.Code(), apierr)
	}

	if err != nil {
		log.Errorf("failed to write error response: %v", err)
	}
}

func toAPIError(err error) *apierror.APIError {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		log.Errorf("unhandled error: %v", err)
		return apierror.InternalServerError
	}

	switch {
	case he.Code == http.StatusNotFound:
		return apierror.NotFoundError
	case he.Code == http.StatusMethodNotAllowed:
		return apierror.MethodNotAllowedError
	case he.Code >= http.StatusInternalServerError:
		log.Errorf("unhandled error: %v", err)
		return apierror.InternalServerError
	default:
		return apierror.NewSimple(he.Code, apierror.CodeBadRequest, fmt.Sprint(he.Message))
	}
}
