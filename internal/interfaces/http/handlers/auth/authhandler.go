package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/auth/usecases"
	infraauth "rentora/internal/infrastructure/auth"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type AuthHandler struct {
	registerUC *usecases.RegisterUseCase
	loginUC    *usecases.LoginUseCase
	jwtService *infraauth.JWTService
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	jwtService *infraauth.JWTService,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pair, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("failed to refresh token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", pair)
}
