package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/utils"
)

// IdentityMiddleware resolves an optional viewer identity from the
// access_token cookie or Authorization header. Requests without a
// token, or with an invalid one, continue anonymously; handlers fall
// back to their placeholder identities.
func IdentityMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.JWT.SecretKey == "" {
			c.Next()
			return
		}

		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := utils.ParseToken(tokenString, cfg.JWT.SecretKey)
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			_ = utils.InjectClaimsToContext(c, claims)
		}
		c.Next()
	}
}
