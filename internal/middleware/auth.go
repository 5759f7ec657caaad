package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/apierror"
	"github.com/krilinxito/taqueando2.0/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ClaimsKey = "claims"

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route. A TTL cache
// keyed by token hash skips signature verification on repeat requests; the
// token's own expiry is still honored on cache hits.
func JWTAuth(secret string, cache infra.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		if cache != nil {
			if cached, ok := cache.Get(c.Request.Context(), tokenStr); ok {
				claims := &JWTClaims{}
				if err := json.Unmarshal([]byte(cached), claims); err == nil && vigente(claims) {
					c.Set(ClaimsKey, claims)
					c.Next()
					return
				}
			}
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		if cache != nil {
			if data, err := json.Marshal(claims); err == nil {
				cache.Set(c.Request.Context(), tokenStr, string(data))
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func vigente(claims *JWTClaims) bool {
	return claims.ExpiresAt == nil || claims.ExpiresAt.After(time.Now())
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
