package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const viewerContextKey = "user_id"

func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

func ParseToken(tokenString, secretKey string) (*jwt.Token, error) {
	secret := []byte(secretKey)
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

func InjectClaimsToContext(c *gin.Context, claims jwt.MapClaims) error {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return errors.New("missing user_id claim")
	}
	c.Set(viewerContextKey, userID)
	return nil
}

// ViewerFromContext returns the authenticated viewer id, or the given
// placeholder when the request carried no usable identity.
func ViewerFromContext(c *gin.Context, fallback string) string {
	if id := c.GetString(viewerContextKey); id != "" {
		return id
	}
	return fallback
}
