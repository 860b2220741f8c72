package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderAPIKey is the header clients authenticate with.
const HeaderAPIKey = "X-API-Key"

type authMetrics interface {
	IncAuthFailure()
}

// APIKeyAuth rejects any request whose X-API-Key header does not match the
// configured shared secret. The comparison is constant-time so the key cannot
// be probed byte by byte.
func APIKeyAuth(apiKey string, logger zerolog.Logger, m authMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("remote", c.ClientIP()).
				Msg("rejected request with missing or invalid API key")
			if m != nil {
				m.IncAuthFailure()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
