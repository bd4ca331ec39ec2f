package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/services"
	"github.com/ozank/collegium/internal/middleware"
	"github.com/ozank/collegium/internal/pkg/results"
)

// AuthController handles registration, login and role lookup.
type AuthController struct {
	users *services.UserService
}

// NewAuthController creates a new AuthController.
func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Register creates a staff account
// @Summary Register an account
// @Description Registers a staff account with the base role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account information"
// @Success 201 {object} dto.APIResponse "Account created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, op := c.users.Register(ctx.Request.Context(), req)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "account created"))
}

// Login issues a bearer token
// @Summary Log in
// @Description Verifies the credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, op := c.users.Login(ctx.Request.Context(), req)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, ""))
}

// Roles lists the caller's roles
// @Summary Get caller roles
// @Description Returns the roles carried by the caller's token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RolesResponse} "Roles retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /auth/roles [get]
func (c *AuthController) Roles(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(results.CodeTokenInvalid, "authentication required", results.LevelImportant))
		return
	}

	roles, op := c.users.Roles(ctx.Request.Context(), userID)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roles, ""))
}
