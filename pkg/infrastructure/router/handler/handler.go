package handler

import (
	"fmt"
	"net/http"
	"todo-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HandleError writes err as a plain-text response. Application errors keep
// their status and message; anything else becomes a 500.
func HandleError(c echo.Context, err error) error {
	e, ok := model.AsError(err)
	if !ok {
		e, _ = model.AsError(model.NewInternalServerError(err))
	}
	return c.String(e.Status, e.Message)
}

// HTTPErrorHandler renders errors returned by handlers and logs the ones
// that are not the client's fault.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		req := c.Request()
		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("uri", req.RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		}

		var (
			status  int
			message string
		)
		if e, ok := model.AsError(err); ok {
			status, message = e.Status, e.Message
		} else if he, ok := err.(*echo.HTTPError); ok {
			status, message = he.Code, fmt.Sprint(he.Message)
		} else {
			status, message = http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed", append(fields, zap.Int("status", status))...)
		} else {
			logger.Debug("request rejected", append(fields, zap.Int("status", status))...)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.String(status, message)
		}
		if err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}
