package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/imadhurgupta/bio-keeper/internal/container"
	"github.com/imadhurgupta/bio-keeper/internal/handlers"
	"github.com/imadhurgupta/bio-keeper/internal/metrics"
	"github.com/imadhurgupta/bio-keeper/internal/middleware"
	"golang.org/x/time/rate"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(container.Metrics.Middleware())
	r.Use(middleware.NewRateLimiter(rate.Limit(2), 60).Middleware())
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "bio-keeper-api",
			})
		})
		v1.GET("/metrics", metrics.Handler(container.Registry))

		// public routes
		v1.POST("/signup", handlers.SignUp(container.AccountService))
		v1.POST("/login", handlers.SignIn(container.AccountService))
		v1.GET("/auth/google", handlers.GoogleAuth(container.AccountService))
		v1.GET("/auth/callback", handlers.GoogleAuthCallback())
		v1.POST("/logout", handlers.Logout())
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.AccountService, container.Logger))

	{
		protected.GET("/profile", handlers.GetProfile(container.AccountService, container.BiodataService))
		protected.PATCH("/profile", handlers.UpdateProfile(container.AccountService))
		protected.POST("/profile/avatar", handlers.UploadAvatar(container.MediaService))
	}

	biodataRoutes := protected.Group("/biodata")
	{
		biodataRoutes.POST("/", handlers.CreateBiodata(container.BiodataService))
		biodataRoutes.GET("/", handlers.ListBiodata(container.BiodataService))
		biodataRoutes.GET("/:id", handlers.GetBiodata(container.BiodataService))
		biodataRoutes.PATCH("/:id", handlers.UpdateBiodata(container.BiodataService))
		biodataRoutes.DELETE("/:id", handlers.DeleteBiodata(container.BiodataService))
	}

	return r
}
