package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// NewRequestID tags every request with a random UUID, unless the client
// already sent one in the X-Request-Id header.
func NewRequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// NewRequestLogger logs one line per request through gommon's logger.
// Server errors are logged as errors, everything else as info.
func NewRequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Status >= 500 || v.Error != nil {
				log.Errorf("[%s] %s %s -> %d (%s): %v", v.RequestID, v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}

			log.Infof("[%s] %s %s -> %d (%s)", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}
