package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetUsersHandler handles GET /user.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUserHandler handles PUT /user/:email. The body is stored as the
// user's profile and a fresh access token is returned.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	resp, err := h.UserService.Upsert(c.Request.Context(), email, fields)
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid user", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save user", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.UserService.MakeAdmin(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", email)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role", err.Error())
		return
	}
	utils.GetLogger().Info("role updated", zap.String("email", email))
	c.JSON(http.StatusOK, result)
}
