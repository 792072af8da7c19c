package handlers

import (
	"errors"
	"net/http"

	"glowbook/middleware"
	userSvc "glowbook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account and returns it with a signed token.
func Register(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		usr, token, err := svc.Register(c.Request.Context(), userSvc.RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Phone:    req.Phone,
		})
		if err != nil {
			if errors.Is(err, userSvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": usr, "token": token})
	}
}

// Login verifies credentials and returns the user with a signed token.
func Login(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		usr, token, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, userSvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			logger.Error("Failed to authenticate user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": usr, "token": token})
	}
}

// GetMe returns the resolved caller's account record.
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, caller)
	}
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateFCMToken stores the caller's device push token.
func UpdateFCMToken(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req fcmTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.UpdateFCMToken(c.Request.Context(), caller.ID, req.Token); err != nil {
			logger.Error("Failed to update FCM token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update push token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "push token updated"})
	}
}
