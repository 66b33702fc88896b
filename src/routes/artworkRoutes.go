package routes

import (
	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupArtworkRoutes(router *gin.Engine, form *services.FormService, client *api.Client) {
	controller := controllers.NewArtworkController(form, client)

	// Protected routes; edits are staff only
	artwork := router.Group("/artwork")
	artwork.Use(middleware.AuthMiddleware())
	{
		artwork.GET("/:id/image", controller.GetImage)

		staff := artwork.Group("")
		staff.Use(middleware.RequireRoles("admin", "staff"))
		{
			staff.GET("/:id/form", controller.OpenForm)
			staff.PATCH("/:id", controller.SubmitForm)
		}
	}
}
