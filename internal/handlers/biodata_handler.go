package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/imadhurgupta/bio-keeper/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateBiodata(b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		ownerId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		var bio models.Biodata
		if err := c.ShouldBindJSON(&bio); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		id, err := b.Create(c.Request.Context(), ownerId, claims.Name, claims.PhotoURL, &bio)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{"id": id.Hex()}, "biodata created"))
	}
}

func ListBiodata(b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		ownerId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		bios, err := b.ListByOwner(c.Request.Context(), ownerId)
		if err != nil {
			abortWithError(c, err)
			return
		}

		// Zero records is the empty-state, not an error.
		c.JSON(http.StatusOK, models.SuccessResponse(bios, ""))
	}
}

func GetBiodata(b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		callerId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid biodata ID format"))
			return
		}

		bio, err := b.GetByID(c.Request.Context(), id, callerId)
		if err != nil {
			// 404 is the redirect signal for the detail view, not fatal.
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bio, ""))
	}
}

func UpdateBiodata(b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		callerId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid biodata ID format"))
			return
		}

		var patch models.BiodataPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := b.Update(c.Request.Context(), id, callerId, patch); err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "biodata updated"))
	}
}

func DeleteBiodata(b *services.BiodataService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			return
		}

		callerId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid biodata ID format"))
			return
		}

		if err := b.Delete(c.Request.Context(), id, callerId); err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "biodata deleted"))
	}
}
