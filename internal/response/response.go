// Package response implements the API envelope shared by every endpoint:
// {code, message, data?} where code 0 means success.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
)

// CodeInternal is the envelope code for unexpected failures.
const CodeInternal = 500

// Body is the response envelope.
type Body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Code: 0, Message: "", Data: data})
}

// Fail maps err to the envelope. Business errors keep their message and
// status; anything else is logged server-side and reported generically.
func Fail(c *gin.Context, logger *zap.Logger, err error) {
	var be *apperr.Error
	if errors.As(err, &be) {
		c.JSON(be.Status, Body{Code: be.Code(), Message: be.Message})
		return
	}
	logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, Body{Code: CodeInternal, Message: "Internal Server Error"})
}

// BadRequest reports a malformed payload without echoing binding internals.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Body{Code: int(apperr.Invalid), Message: msg})
}
