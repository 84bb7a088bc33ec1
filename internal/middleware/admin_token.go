package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/rs/zerolog/log"
)

const AdminTokenHeader = "x-admin-token"

// AdminToken guards quiz writes with a shared secret. An empty token leaves the
// routes open.
func AdminToken(token string) gin.HandlerFunc {
	expected := []byte(token)
	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(AdminTokenHeader))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Rejected admin request with missing or wrong token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}
