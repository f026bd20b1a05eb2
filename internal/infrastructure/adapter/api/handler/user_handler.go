package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the admin user management endpoints
type UserHandler struct {
	userUseCase usecase.UserUseCase
	renderer    *httperr.Renderer
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	renderer *httperr.Renderer,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		renderer:    renderer,
		logger:      logger,
	}
}

// Create handles PUT /api/admin/user/create
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.RoleUser,
	})
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update handles PATCH /api/admin/user/role-update/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderer.AbortBinding(c, err)
		return
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), id, usecase.UpdateUserRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	})
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete handles DELETE /api/admin/user/delete/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), id); err != nil {
		h.renderer.Abort(c, err)
		return
	}

	h.logger.Info("User deleted by admin", map[string]any{"user_id": id})
	c.Status(http.StatusOK)
}

// Get handles GET /api/admin/user/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), id)
	if err != nil {
		h.renderer.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
