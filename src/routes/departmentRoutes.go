package routes

import (
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupDepartmentRoutes(router *gin.Engine, service *services.DepartmentService, form *services.FormService) {
	controller := controllers.NewDepartmentController(service, form)

	// Protected routes; mutations are staff only
	department := router.Group("/department")
	department.Use(middleware.AuthMiddleware())
	{
		department.GET("", controller.GetDepartments)

		staff := department.Group("")
		staff.Use(middleware.RequireRoles("admin", "staff"))
		{
			staff.GET("/:id/form", controller.OpenForm)
			staff.PATCH("/:id", controller.SubmitForm)
			staff.DELETE("/:id", controller.DeleteDepartment)
			staff.PATCH("/:id/restore", controller.RestoreDepartment)
		}
	}
}
