package controllers

import (
	"errors"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/forms"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type ArtworkController struct {
	form *services.FormService
	api  *api.Client
}

func NewArtworkController(form *services.FormService, client *api.Client) *ArtworkController {
	return &ArtworkController{form: form, api: client}
}

// OpenForm returns the prepopulated edit form and fresh dropdown options.
func (ac *ArtworkController) OpenForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view, err := ac.form.OpenArtworkForm(c.Request.Context(), id)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view)
}

// SubmitForm saves the edited artwork. The body is multipart: one part per
// field plus an optional replacement image.
func (ac *ArtworkController) SubmitForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	values := forms.ArtworkValues{
		Title:           c.PostForm("Title"),
		ArtistID:        c.PostForm("artist_id"),
		DepartmentID:    c.PostForm("department_id"),
		CreationYear:    c.PostForm("CreationYear"),
		Medium:          c.PostForm("medium"),
		CustomMedium:    c.PostForm("customMedium"),
		Height:          c.PostForm("height"),
		Width:           c.PostForm("width"),
		Depth:           c.PostForm("depth"),
		AcquisitionDate: c.PostForm("acquisition_date"),
		Condition:       c.PostForm("condition"),
		CustomCondition: c.PostForm("customCondition"),
		Location:        c.PostForm("location"),
		Price:           c.PostForm("price"),
		Description:     c.PostForm("Description"),
	}
	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := ac.form.SubmitArtworkForm(c.Request.Context(), id, values, image); err != nil {
		writeFormError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Artwork updated successfully"})
}

// GetImage proxies the artwork's image bytes.
func (ac *ArtworkController) GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	data, err := ac.api.FetchImage(c.Request.Context(), api.KindArtwork, id)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.Data(200, "image/jpeg", data)
}
