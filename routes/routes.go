package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/controllers"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/middlewares"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/storage"
)

func SetupRouter(db *gorm.DB, store *storage.DiskStore) *gin.Engine {
	r := gin.Default()

	// Public API Routes

	api := r.Group("/api")
	{
		api.POST("/signup", controllers.SignupHandler(db))
		api.POST("/login", controllers.LoginHandler(db))
		api.POST("/refresh", controllers.RefreshTokenHandler(db))
		api.POST("/logout", controllers.LogoutHandler(db))

		api.GET("/properties/:id", controllers.GetProperty(db))
	}

	// Any authenticated user

	me := r.Group("/api").Use(middlewares.AuthMiddleware())
	{
		me.GET("/me", controllers.GetProfile(db))
		me.PUT("/me", controllers.UpdateProfile(db))
	}

	// Owner Routes (Require Owner Role)

	owner := r.Group("/api/owner").Use(middlewares.AuthMiddleware(), middlewares.OwnerOnly())
	{
		owner.GET("/properties", controllers.GetOwnerProperties(db))
		owner.POST("/properties", controllers.CreateProperty(db, store))
		owner.PUT("/properties/:id", controllers.UpdateProperty(db, store))
		owner.DELETE("/properties/:id", controllers.DeleteProperty(db, store))

		owner.POST("/properties/:id/images", controllers.AddPropertyImage(db, store))
		owner.PUT("/properties/:id/images/:imageId/primary", controllers.SetPrimaryImage(db))
		owner.DELETE("/properties/:id/images/:imageId", controllers.DeletePropertyImage(db, store))

		owner.GET("/requests", controllers.GetOwnerRequests(db))
		owner.PUT("/requests/:id", controllers.UpdateBookingRequestStatus(db))
	}

	// Finder Routes (Require Finder Role)

	finder := r.Group("/api/finder").Use(middlewares.AuthMiddleware(), middlewares.FinderOnly())
	{
		finder.GET("/properties", controllers.BrowseProperties(db))
		finder.POST("/requests", controllers.CreateBookingRequest(db))
		finder.GET("/requests", controllers.GetFinderRequests(db))
		finder.DELETE("/requests/:id", controllers.WithdrawBookingRequest(db))
	}

	// Uploaded listing images are served as plain static files.

	r.Static(store.BaseURL, store.Dir)

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
