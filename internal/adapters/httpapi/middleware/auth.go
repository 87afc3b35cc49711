package middleware

import (
	"net/http"
	"strings"

	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// SessionAuth rejects requests without a valid provider session token.
func SessionAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := identityFromRequest(c, secret)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// OptionalSession resolves the caller when a token is present but lets
// anonymous requests through. Read endpoints use it: identity only affects
// draft visibility.
func OptionalSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident := identityFromRequest(c, secret); ident != nil {
			c.Set(identityKey, ident)
		}
		c.Next()
	}
}

// CurrentIdentity returns the resolved caller, or nil when unauthenticated.
func CurrentIdentity(c *gin.Context) *identityPort.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*identityPort.Identity)
	return ident
}

func identityFromRequest(c *gin.Context, secret []byte) *identityPort.Identity {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	email, _ := claims["email"].(string)
	firstName, _ := claims["first_name"].(string)
	lastName, _ := claims["last_name"].(string)
	imageURL, _ := claims["image_url"].(string)

	return &identityPort.Identity{
		UserID:       sub,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		ProfileImage: imageURL,
	}
}
