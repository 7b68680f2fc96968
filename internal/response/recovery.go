package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery converts panics into an internal_server_error envelope.
// The panic is logged with full detail server-side; the client only
// receives the message text.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				reqID, _ := c.Get(ContextKeyRequestID)
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Interface("request_id", reqID).
					Msg("Unhandled panic in request handler")

				var message string
				if err, ok := r.(error); ok {
					message = err.Error()
				} else {
					message = fmt.Sprint(r)
				}
				AbortFail(c, KindInternal, message)
			}
		}()
		c.Next()
	}
}
