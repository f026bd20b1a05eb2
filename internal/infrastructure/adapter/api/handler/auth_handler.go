package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-up and sign-in
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	renderer    *httperr.Renderer
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, renderer *httperr.Renderer, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		renderer:    renderer,
		logger:      logger,
	}
}

// SignUp handles POST /api/auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}

	token, err := h.authUseCase.SignUp(c.Request.Context(), usecase.SignUpRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// SignIn handles POST /api/auth/sign-in
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}

	token, err := h.authUseCase.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Sign-in refused", map[string]any{"username": req.Username})
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
