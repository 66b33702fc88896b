package routes

import (
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCollectionRoutes(router *gin.Engine, registry *services.CollectionRegistry) {
	collectionController := controllers.NewCollectionController(registry)

	// Protected routes
	collection := router.Group("/collection")
	collection.Use(middleware.AuthMiddleware())
	{
		collection.GET("", collectionController.GetState)
		collection.POST("/refresh", collectionController.Refresh)
		collection.PUT("/tab", collectionController.SwitchTab)
		collection.PUT("/filter/artwork", collectionController.SetArtworkFilter)
		collection.PUT("/filter/artist", collectionController.SetArtistFilter)
		collection.PUT("/sort", collectionController.SetSort)
		collection.GET("/images", collectionController.Images)

		// Modal lifecycle
		collection.POST("/artwork/:id/open", collectionController.OpenArtwork)
		collection.POST("/artist/:id/open", collectionController.OpenArtist)
		collection.POST("/modal/edit", collectionController.BeginEdit)
		collection.POST("/modal/delete", collectionController.RequestDelete)
		collection.POST("/modal/confirm-delete", collectionController.ConfirmDelete)
		collection.DELETE("/modal", collectionController.CloseModal)

		// Restore, deleted view only
		collection.PATCH("/artwork/:id/restore", collectionController.RestoreArtwork)
		collection.PATCH("/artist/:id/restore", collectionController.RestoreArtist)
	}
}
