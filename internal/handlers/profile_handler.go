package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/imadhurgupta/bio-keeper/internal/services"
)

// GetProfile returns the caller's mirrored profile plus their biodata count
// for the account page's activity stat.
func GetProfile(a *services.AccountService, b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		accessToken, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("access token not found"))
			return
		}

		profile, err := a.GetProfile(c.Request.Context(), userId, accessToken)
		if err != nil {
			abortWithError(c, err)
			return
		}

		count, err := b.CountByOwner(c.Request.Context(), userId)
		if err != nil {
			// The stat is decorative, the profile still renders without it.
			slog.Warn("biodata count unavailable", "user_id", userId, "error", err)
			count = 0
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"profile":       profile,
			"biodata_count": count,
		}, ""))
	}
}

func UpdateProfile(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("access token not found"))
			return
		}

		profile, err := a.UpdateProfile(c.Request.Context(), fields, userId, accessToken)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(profile, "profile updated"))
	}
}

// UploadAvatar accepts a multipart file, stores it at the owner's fixed path
// and returns the new URL so the client can update display state immediately.
func UploadAvatar(m *services.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("avatar file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		defer file.Close()

		accessToken, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("access token not found"))
			return
		}

		url, err := m.UploadAvatar(c.Request.Context(), userId, file, accessToken)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"photo_url": url}, "avatar uploaded"))
	}
}
