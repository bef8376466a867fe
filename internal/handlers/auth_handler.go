package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/imadhurgupta/bio-keeper/internal/services"
)

func frontendURL() string {
	url := os.Getenv("FRONTEND_URL")
	if url != "" {
		return url
	}
	if os.Getenv("GIN_MODE") == "production" {
		return "https://yourdomain.com"
	}
	return "http://localhost:3000"
}

func SignUp(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		res, err := a.SignUp(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{"user_id": res.ID}, "account created"))
	}
}

func SignIn(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		tokenRes, err := a.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"

		// Tokens live in httpOnly cookies, never in the response body.
		c.SetCookie(
			"access_token",
			tokenRes.AccessToken,
			tokenRes.ExpiresIn,
			"/",
			"", // let Gin pick current domain
			isProduction,
			true,
		)
		c.SetCookie(
			"refresh_token",
			tokenRes.RefreshToken,
			3600*24*30,
			"/",
			"",
			isProduction,
			true,
		)

		c.JSON(http.StatusOK, gin.H{
			"user": tokenRes.User,
		})
	}
}

// GoogleAuth initiates the federated sign-in flow by redirecting to the
// provider's authorize URL.
func GoogleAuth(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectTo := c.Query("redirect_to")
		if redirectTo == "" {
			redirectTo = frontendURL() + "/auth/callback"
		}

		authURL, err := a.FederatedAuthURL(redirectTo)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, authURL)
	}
}

// GoogleAuthCallback handles the provider redirect. Tokens come back as URL
// fragments handled client-side; this endpoint only forwards errors.
func GoogleAuthCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		authError := c.Query("error")
		errorDescription := c.Query("error_description")

		if authError != "" {
			redirectURL := fmt.Sprintf("%s/?error=%s&error_description=%s",
				frontendURL(), authError, errorDescription)
			c.Redirect(http.StatusTemporaryRedirect, redirectURL)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, frontendURL()+"/auth/callback")
	}
}

// Logout clears the session cookies. Idempotent: logging out twice is fine.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}
