package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/labstack/echo/v4"
)

const (
	BodyDumpLimit = 1000
	BodyStoreKey  = "body_backup"
)

// ExtractStatus sets the response status from a returned ErrorResponse so the
// access log middleware picks a level matching the real outcome
func ExtractStatus(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}
		var resp ce.ErrorResponse
		if errors.As(err, &resp) {
			if status := largestStatus(resp); status > 0 {
				c.Response().Status = status
			}
		}
		return err
	}
}

func largestStatus(resp ce.ErrorResponse) int {
	largest := 0
	for _, e := range resp.Errors {
		if e.Status > largest {
			largest = e.Status
		}
	}
	return largest
}

// LogServerErrorRequest logs the head of the request body when the handler
// fails with a server error
func LogServerErrorRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Get(BodyStoreKey) == nil {
			storeRequestBody(c)
		}
		err := next(c)
		if err != nil && isServerError(err) {
			if body, ok := c.Get(BodyStoreKey).([]byte); ok {
				c.Logger().Errorf("Request body: %v", string(body))
			}
		}
		return err
	}
}

func isServerError(err error) bool {
	var resp ce.ErrorResponse
	return errors.As(err, &resp) && largestStatus(resp) >= http.StatusInternalServerError
}

func storeRequestBody(c echo.Context) {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	c.Set(BodyStoreKey, body[:min(len(body), BodyDumpLimit)])
}
