package routes

import (
	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupArtistRoutes(router *gin.Engine, form *services.FormService, client *api.Client) {
	controller := controllers.NewArtistController(form, client)

	// Protected routes; edits are staff only
	artist := router.Group("/artist")
	artist.Use(middleware.AuthMiddleware())
	{
		artist.GET("/:id/image", controller.GetImage)

		staff := artist.Group("")
		staff.Use(middleware.RequireRoles("admin", "staff"))
		{
			staff.GET("/:id/form", controller.OpenForm)
			staff.PATCH("/:id", controller.SubmitForm)
		}
	}
}
