package response

import (
	"errors"
	"fmt"
	"net/http"

	pkgErrors "companion-srv/pkg/errors"
	"companion-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPErrors keep their status and message;
// anything else becomes a 500 and is reported to Discord if configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.Send(c.Request.Context(), fmt.Sprintf("[%s %s] internal error: %v",
			c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.Send(c.Request.Context(), fmt.Sprintf("[%s %s] panic: %v",
			c.Request.Method, c.Request.URL.Path, recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}
