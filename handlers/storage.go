package handlers

import (
	"net/http"

	userRepoPkg "glowbook/database/repository/user"
	"glowbook/middleware"
	storageSvc "glowbook/services/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// allowedFolders defines permitted upload destinations.
var allowedFolders = map[string]bool{
	"profiles":   true,
	"portfolios": true,
}

// UploadImage stores an image in the given folder and returns the delivery
// URL. Uploads to "profiles" also update the caller's image field.
func UploadImage(svc storageSvc.StorageService, users userRepoPkg.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		folder := c.Param("folder")
		if !allowedFolders[folder] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'profiles' and 'portfolios'"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
			return
		}

		url, err := svc.UploadImage(c.Request.Context(), fileHeader, folder)
		if err != nil {
			logger.Error("Failed to upload image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
			return
		}

		if folder == "profiles" {
			if err := users.UpdateSetDocument(caller.ID, bson.M{"image": url}); err != nil {
				logger.Warn("Failed to store profile image URL",
					zap.String("userId", caller.ID),
					zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
