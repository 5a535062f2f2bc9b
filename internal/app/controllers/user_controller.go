package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/app/services"
	"github.com/mrmarton/REST-API/internal/middleware"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetCurrentUser returns the authenticated caller's record
// @Summary Get the current user
// @Description Returns the authenticated user without the password hash or timestamps
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} dto.UserResponse "Current user"
// @Failure 400 {object} dto.MessageResponse "Resolved identity no longer exists"
// @Failure 401 {object} dto.MessageResponse "Authentication failed"
// @Router /users [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	identity, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("access denied"))
		return
	}

	user, err := c.userService.GetCurrentUser(ctx.Request.Context(), identity.ID)
	if err != nil {
		// The identity resolved during authentication can vanish before the
		// handler re-reads it
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("user not found"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser registers a new user
// @Summary Create a user
// @Description Validates the payload, hashes the password and creates the user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 "Created, Location: /"
// @Failure 400 {object} dto.ValidationErrorResponse "One message per violated rule"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"invalid request body"}))
		return
	}

	if _, err := c.userService.Register(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/")
	ctx.Status(http.StatusCreated)
}
