package controllers

import (
	"errors"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/forms"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	service *services.DepartmentService
	form    *services.FormService
}

func NewDepartmentController(service *services.DepartmentService, form *services.FormService) *DepartmentController {
	return &DepartmentController{service: service, form: form}
}

// GetDepartments lists departments; ?source selects all, withArtwork or
// withoutArtwork, ?deleted=true the soft-deleted view, ?sort the order.
func (dc *DepartmentController) GetDepartments(c *gin.Context) {
	source := models.DepartmentSource(c.DefaultQuery("source", string(models.DepartmentsAll)))
	deleted := c.Query("deleted") == "true"

	departments, err := dc.service.List(c.Request.Context(), source, deleted, c.Query("sort"))
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, departments)
}

// OpenForm returns the prepopulated department edit form.
func (dc *DepartmentController) OpenForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	form, err := dc.form.OpenDepartmentForm(c.Request.Context(), id)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, form)
}

// SubmitForm saves the edited department from a JSON body.
func (dc *DepartmentController) SubmitForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	var values forms.DepartmentValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := dc.form.SubmitDepartmentForm(c.Request.Context(), id, values); err != nil {
		writeFormError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Department updated successfully"})
}

func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := dc.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Department deleted successfully"})
}

func (dc *DepartmentController) RestoreDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := dc.service.Restore(c.Request.Context(), id); err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Department restored successfully"})
}
