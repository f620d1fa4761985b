package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"moyo_dispatch/pkg"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey and ContextEmailKey are the gin context keys holding
	// the verified caller identity.
	ContextUserIDKey = "auth_user_id"
	ContextEmailKey  = "auth_email"

	defaultAdminEmail = "johnmarit42@gmail.com"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization token not provided", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization token", http.StatusUnauthorized)
	errNotAdmin     = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// ITokenVerifier is the slice of the Firebase auth client the middleware
// needs. *auth.Client satisfies it.
type ITokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

var _ ITokenVerifier = (*auth.Client)(nil)

// Auth verifies the Bearer ID token on every request and stores the caller's
// uid and email in the gin context for downstream handlers.
func Auth(verifier ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserIDKey, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ContextEmailKey, email)
		}
		c.Next()
	}
}

// AdminOnly gates a route group to the configured admin account. Admin
// access is a fixed allow-list of one email, not a role claim.
func AdminOnly() gin.HandlerFunc {
	admin := AdminEmail()
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" || !strings.EqualFold(email, admin) {
			c.AbortWithStatusJSON(errNotAdmin.HTTPStatus, errNotAdmin.ToHTTPError())
			return
		}
		c.Next()
	}
}

// AdminEmail returns the configured admin account, defaulting when unset.
func AdminEmail() string {
	if v := strings.TrimSpace(os.Getenv("ADMIN_EMAIL")); v != "" {
		return v
	}
	return defaultAdminEmail
}

// UserID returns the verified caller uid stored by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

// Email returns the verified caller email stored by Auth, when present.
func Email(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
