package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/model/request"
	"github.com/dinerozz/snippet-analytics-backend/internal/model/response"
	"github.com/dinerozz/snippet-analytics-backend/internal/model/response/wrapper"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	userService "github.com/dinerozz/snippet-analytics-backend/internal/service/user"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type UserService interface {
	Login(ctx context.Context, email, password string) (string, response.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error)
	TokenTTL() time.Duration
}

type UserHandler struct {
	srv UserService
}

func NewUserHandler(srv UserService) *UserHandler {
	return &UserHandler{srv: srv}
}

// Login godoc
// @Summary Authenticate user with password
// @Description Check email and password and set the token cookie
// @Tags users
// @Accept json
// @Produce json
// @Param user body request.Login true "Credentials"
// @Success 200 {object} wrapper.ResponseWrapper{data=response.User}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /users/auth [post]
func (h *UserHandler) Login(c *gin.Context) {
	var loginRequest request.Login
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	token, user, err := h.srv.Login(c.Request.Context(), loginRequest.Email, loginRequest.Password)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.SetCookie("token", token, int(h.srv.TokenTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: user, Success: true})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=response.User}
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return
	}

	raw, _ := userID.(string)
	userUUID, err := uuid.FromString(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid user ID", Success: false})
		return
	}

	user, err := h.srv.GetProfile(c.Request.Context(), userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: user, Success: true})
}

// Logout godoc
// @Summary Logout user
// @Description Logout user by clearing authentication cookie
// @Tags users
// @Produce json
// @Success 200 {object} wrapper.SuccessWrapper
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Successfully logged out",
		Success: true,
	})
}
