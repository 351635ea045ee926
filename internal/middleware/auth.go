package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RoleTrainer = "trainer"
	RoleLearner = "learner"

	ctxUserID    = "auth_user_id"
	ctxUserEmail = "auth_user_email"
	ctxUserRole  = "auth_user_role"
)

// Authenticate verifies the Bearer token and attaches the caller identity
// (id, email, role) to the request context. The core trusts these claims;
// token issuance is the identity provider's concern (mocked by /auth/login).
func Authenticate(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "No token provided"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Authenticate: invalid token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		id, _ := claims["id"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if id == "" || role == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		ctx.Set(ctxUserID, id)
		ctx.Set(ctxUserEmail, email)
		ctx.Set(ctxUserRole, role)
		ctx.Next()
	}
}

// RequireRole guards a route group behind a single role claim.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CallerRole(ctx) != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied: " + role + " only"})
			return
		}
		ctx.Next()
	}
}

func CallerID(ctx *gin.Context) string {
	return ctx.GetString(ctxUserID)
}

func CallerRole(ctx *gin.Context) string {
	return ctx.GetString(ctxUserRole)
}
