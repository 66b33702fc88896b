package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

// imageFromForm reads the optional "image" multipart part.
func imageFromForm(c *gin.Context) (*api.ImageAttachment, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &api.ImageAttachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// writeFormError maps a form submission failure onto a response: rejected
// validation carries the per-field messages, a clean no-op save is 400, and
// an upstream refusal keeps its status.
func writeFormError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var apiErr *api.APIError
	switch {
	case errors.As(err, &validation):
		c.JSON(400, gin.H{"error": "Validation failed", "fields": validation.Fields})
	case errors.Is(err, services.ErrNoChanges):
		c.JSON(400, gin.H{"error": "No changes to save"})
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
	default:
		c.JSON(502, gin.H{"error": err.Error()})
	}
}
