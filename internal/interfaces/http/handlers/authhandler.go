package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/application/auth/usecases"
	sharedConfig "github.com/resumelift/resumelift/internal/shared/config"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

type AuthHandler struct {
	registerUC registerUseCase
	loginUC    loginUseCase
	refresher  tokenRefresher
	jwtConfig  sharedConfig.JWTConfig
	cookies    sharedConfig.CookieConfig
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	refresher tokenRefresher,
	jwtConfig sharedConfig.JWTConfig,
	cookies sharedConfig.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refresher:  refresher,
		jwtConfig:  jwtConfig,
		cookies:    cookies,
		logger:     logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
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

	h.setAuthCookies(c, &result.Tokens)

	utils.OKResponse(c, gin.H{
		"user":       result.User,
		"expires_in": result.Tokens.ExpiresIn,
	})
}

// Refresh reissues the token pair from the refresh token cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing refresh token")
		return
	}

	pair, err := h.refresher.Refresh(refreshToken)
	if err != nil {
		h.logger.Warnw("failed to refresh tokens", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	h.setAuthCookies(c, pair)

	utils.OKResponse(c, gin.H{"expires_in": pair.ExpiresIn})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookies)
	utils.OKResponse(c, nil, "logged out")
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *usecases.TokenPair) {
	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 3600
	utils.SetAuthCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken, accessMaxAge, refreshMaxAge)
}
