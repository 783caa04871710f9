package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/notegate/backend/internal/model"
	"github.com/notegate/backend/internal/service"
)

const identityKey = "auth_identity"

// AuthMiddleware guards a route group: it requires a bearer token, and on
// success stores the token's subject as the acting identity for the
// request. Every failure mode produces the same generic 401.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		subject, err := authService.ParseToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid or expired token"})
	c.Abort()
}

// Identity returns the authenticated subject set by AuthMiddleware, or ""
// on routes that never passed through it.
func Identity(c *gin.Context) string {
	if value, ok := c.Get(identityKey); ok {
		if subject, ok := value.(string); ok {
			return subject
		}
	}
	return ""
}

// RequestLogger emits one structured line per request and tags the
// response with an X-Request-ID for correlation.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Accept, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
