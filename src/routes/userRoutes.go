package routes

import (
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	UserController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", UserController.Login)

	// Protected routes, admin only
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin"))
	{
		user.GET("", UserController.GetAllUsers)
		user.POST("", UserController.CreateUser)
		user.PUT("/:id", UserController.UpdateUser)
	}
}
