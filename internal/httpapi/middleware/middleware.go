package middleware

import (
	"log/slog"
	"net/http"

	"chatboard/internal/common"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the per-request id.
const RequestIDKey = "request_id"

// HeaderRequestID is echoed back to the client and honored when supplied.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a ULID to each request unless the client sent one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			var err error
			id, err = common.NewULID()
			if err != nil {
				// entropy failure; proceed without an id
				c.Next()
				return
			}
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// Recovery converts panics into a 500 JSON error instead of killing the
// connection, logging the panic with the request id when present.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
				)
				common.Fail(c, http.StatusInternalServerError, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
