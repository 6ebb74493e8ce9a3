package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/app"
)

// userKey is the gin context key carrying the authenticated username.
const userKey = "auth_user"

// Logger logs every request with method, path, status code, and latency.
func Logger(lgr *zap.Logger) gin.HandlerFunc {
	lgr = lgr.Named("api")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		lgr.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Recovery logs panics and converts them to 500s.
func Recovery(lgr *zap.Logger) gin.HandlerFunc {
	lgr = lgr.Named("api")
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				lgr.Error("panic recovered", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// Auth requires a valid bearer token and stores the username in the
// context for handlers.
func Auth(auth *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		username, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(userKey, username)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userKey)
}
