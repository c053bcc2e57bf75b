package httpapi

import (
	"strings"
	"time"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/logging"
	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key carrying the verified caller id.
const userIDKey = "userID"

// tokenVerifier is the slice of UserService the middleware needs.
type tokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

// bearerAuth verifies the "Authorization: Bearer <token>" header and stores
// the caller id in the request context. Missing, malformed and expired
// tokens all abort with the same 401 envelope.
func bearerAuth(verifier tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			respondError(c, apperr.ErrUnauthorized)
			return
		}

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			respondError(c, apperr.ErrUnauthorized)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// callerID returns the verified user id placed by bearerAuth.
func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// requestLogger logs one structured line per request.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
