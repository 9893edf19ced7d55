package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single basic-auth account the service accepts.
// The password is stored as a bcrypt hash, never in the clear.
type Credentials struct {
	Username     string
	PasswordHash string
}

// BasicAuthRequired is a Gin middleware that validates HTTP basic auth
// against the configured credentials.
func BasicAuthRequired(creds Credentials) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="restricted"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed Authorization header",
			})
			return
		}

		userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username)) == 1
		passErr := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password))
		if !userMatch || passErr != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			return
		}

		c.Next()
	}
}
