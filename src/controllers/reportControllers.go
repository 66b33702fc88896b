package controllers

import (
	"errors"
	"fmt"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/export"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GetOptions returns the report form's filter option lists.
func (rc *ReportController) GetOptions(c *gin.Context) {
	options, err := rc.service.FetchOptions(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, options)
}

func (rc *ReportController) generate(c *gin.Context) (*services.Report, bool) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return nil, false
	}

	report, err := rc.service.Generate(c.Request.Context(), middleware.Auth(c), req)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return nil, false
		}
		// Any non-upstream failure here is a rejected request.
		c.JSON(400, gin.H{"error": err.Error()})
		return nil, false
	}
	return report, true
}

// GenerateReport returns the aggregated report as JSON.
func (rc *ReportController) GenerateReport(c *gin.Context) {
	report, ok := rc.generate(c)
	if !ok {
		return
	}
	c.JSON(200, report)
}

// ExportPDF returns the report rendered as a PDF download.
func (rc *ReportController) ExportPDF(c *gin.Context) {
	report, ok := rc.generate(c)
	if !ok {
		return
	}
	data, err := export.PDF(report.Tabulate())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	name := export.Filename(report.Kind, "pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(200, "application/pdf", data)
}

// ExportExcel returns the report rendered as an XLSX download.
func (rc *ReportController) ExportExcel(c *gin.Context) {
	report, ok := rc.generate(c)
	if !ok {
		return
	}
	data, err := export.Excel(report.Tabulate())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	name := export.Filename(report.Kind, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
