package controllers

import (
	"errors"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/forms"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type ArtistController struct {
	form *services.FormService
	api  *api.Client
}

func NewArtistController(form *services.FormService, client *api.Client) *ArtistController {
	return &ArtistController{form: form, api: client}
}

// OpenForm returns the prepopulated edit form and the nationality options.
func (ac *ArtistController) OpenForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view, err := ac.form.OpenArtistForm(c.Request.Context(), id)
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

// SubmitForm saves the edited artist from a multipart body.
func (ac *ArtistController) SubmitForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	values := forms.ArtistValues{
		Name:        c.PostForm("name"),
		Gender:      c.PostForm("gender"),
		Nationality: c.PostForm("nationality"),
		BirthYear:   c.PostForm("birthYear"),
		DeathYear:   c.PostForm("deathYear"),
		Description: c.PostForm("description"),
	}
	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := ac.form.SubmitArtistForm(c.Request.Context(), id, values, image); err != nil {
		writeFormError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Artist updated successfully"})
}

// GetImage proxies the artist's image bytes.
func (ac *ArtistController) GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	data, err := ac.api.FetchImage(c.Request.Context(), api.KindArtist, id)
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
