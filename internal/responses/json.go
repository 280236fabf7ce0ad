package responses

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx reply. Details carries the raw
// storage error for 500s and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Fail writes an ErrorResponse. err may be nil. Details is the innermost
// error of the chain, so context added by services stays in the logs and the
// client sees the driver message.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = rootCause(err).Error()
	}
	c.JSON(statusCode, resp)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
