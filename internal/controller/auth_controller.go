package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ptnguyen/quizhub/config"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/rs/zerolog/log"
)

// AuthController issues mock tokens so the API can be exercised without the
// real identity provider. The rest of the system only consumes the verified
// claims and does not care where they came from.
type AuthController struct {
	cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

// Login godoc
// @Summary Mock login
// @Description Issues a 24h bearer token for the given email and role. Stand-in for the external identity provider.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Email and role"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Token signing failed"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": req.Email,
		"role":  req.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(c.cfg.JWT.Secret))
	if err != nil {
		log.Error().Err(err).Msg("Login: failed to sign token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to issue token"})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponseDTO{
		Token: signed,
		User:  dto.UserDTO{ID: userID, Email: req.Email, Role: req.Role},
	})
}
