package routes

import (
	"github.com/FAMH/Collection-Gateway/src/controllers"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, service *services.ReportService) {
	controller := controllers.NewReportController(service)

	// Protected routes, staff only
	report := router.Group("/report")
	report.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin", "staff"))
	{
		report.GET("/options", controller.GetOptions)
		report.POST("", controller.GenerateReport)
		report.POST("/export/pdf", controller.ExportPDF)
		report.POST("/export/excel", controller.ExportExcel)
	}
}
