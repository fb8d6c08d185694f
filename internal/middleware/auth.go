package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"gifttax/internal/logger"
	"gifttax/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

var (
	ErrMissingToken = errors.New("authorization is missing")
	ErrBadFormat    = errors.New("invalid authorization format, expected 'Bearer <token>'")
	ErrNoRole       = errors.New("role not found in token")
)

// ParseToken validates an HS256 token and returns its subject and role claims
func ParseToken(tokenString string, secret []byte) (subject, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	role, ok = claims["role"].(string)
	if !ok {
		return "", "", ErrNoRole
	}
	subject, _ = claims.GetSubject()
	return subject, role, nil
}

// tokenFromRequest reads the access_token cookie, falling back to the
// Authorization header.
func tokenFromRequest(c *gin.Context) (string, error) {
	if tokenString, err := c.Cookie("access_token"); err == nil && tokenString != "" {
		return tokenString, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrBadFormat
	}
	return parts[1], nil
}

// RequireRole validates the JWT and checks the role claim against allowedRoles
func RequireRole(secret []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
			return
		}

		subject, role, err := ParseToken(tokenString, secret)
		if errors.Is(err, ErrNoRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, err.Error()))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}

		if !slices.Contains(allowedRoles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		setUser(c, subject, role)
		c.Next()
	}
}

// OptionalAuth records the caller when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, err := tokenFromRequest(c); err == nil {
			if subject, role, err := ParseToken(tokenString, secret); err == nil {
				setUser(c, subject, role)
			}
		}
		c.Next()
	}
}

// setUser records the caller on the gin context and tags the request logger
func setUser(c *gin.Context, subject, role string) {
	c.Set(ContextUserID, subject)
	c.Set(ContextUserRole, role)

	ctx := c.Request.Context()
	l := logger.FromContext(ctx).With("user_id", subject)
	c.Request = c.Request.WithContext(logger.ToContext(ctx, l))
}

// UserID returns the authenticated subject, or "" for anonymous requests
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
