package serviceutils

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the failure envelope: a human-readable error plus optional
// backend details. Clients surface both rather than failing silently.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SeedResponse reports the outcome of a bulk seed.
type SeedResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseError writes the failure envelope with the given status.
func ResponseError(c echo.Context, code int, msg string, err error) error {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	return c.JSON(code, resp)
}

// ResponseMessage writes a bare confirmation message.
func ResponseMessage(c echo.Context, code int, msg string) error {
	return c.JSON(code, MessageResponse{Message: msg})
}
