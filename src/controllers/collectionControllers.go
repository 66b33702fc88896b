package controllers

import (
	"errors"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	registry *services.CollectionRegistry
}

func NewCollectionController(registry *services.CollectionRegistry) *CollectionController {
	return &CollectionController{registry: registry}
}

// view resolves the caller's collection view; ?deleted=true selects the
// soft-deleted view.
func (cc *CollectionController) view(c *gin.Context) *services.CollectionView {
	deleted := c.Query("deleted") == "true"
	return cc.registry.View(middleware.Auth(c), deleted)
}

func (cc *CollectionController) Refresh(c *gin.Context) {
	view := cc.view(c)
	if err := view.Refresh(c.Request.Context()); err != nil {
		// Partial results stay served from cache; report what failed.
		c.JSON(502, gin.H{"error": err.Error(), "state": view.State()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) GetState(c *gin.Context) {
	c.JSON(200, cc.view(c).State())
}

func (cc *CollectionController) SwitchTab(c *gin.Context) {
	var body struct {
		Tab services.Tab `json:"tab"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	view := cc.view(c)
	if err := view.SwitchTab(body.Tab); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) SetArtworkFilter(c *gin.Context) {
	var filter services.ArtworkFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	view := cc.view(c)
	view.SetArtworkFilter(filter)
	c.JSON(200, view.State())
}

func (cc *CollectionController) SetArtistFilter(c *gin.Context) {
	var filter services.ArtistFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	view := cc.view(c)
	view.SetArtistFilter(filter)
	c.JSON(200, view.State())
}

func (cc *CollectionController) SetSort(c *gin.Context) {
	var body struct {
		Sort string `json:"sort"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	view := cc.view(c)
	view.SetSort(body.Sort)
	c.JSON(200, view.State())
}

func (cc *CollectionController) OpenArtwork(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view := cc.view(c)
	if err := view.OpenArtwork(id); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) OpenArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view := cc.view(c)
	if err := view.OpenArtist(id); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) BeginEdit(c *gin.Context) {
	view := cc.view(c)
	if err := view.BeginEdit(); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) RequestDelete(c *gin.Context) {
	view := cc.view(c)
	if err := view.RequestDelete(); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) CloseModal(c *gin.Context) {
	view := cc.view(c)
	view.CloseModal()
	c.JSON(200, view.State())
}

func (cc *CollectionController) ConfirmDelete(c *gin.Context) {
	view := cc.view(c)
	if err := view.ConfirmDelete(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, services.ErrNoOpenModal), errors.Is(err, services.ErrActionInFlight):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(502, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) RestoreArtwork(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view := cc.view(c)
	if err := view.RestoreArtwork(c.Request.Context(), id); err != nil {
		var blocked *services.RestoreBlockedError
		switch {
		case errors.As(err, &blocked):
			c.JSON(409, gin.H{"error": blocked.Error()})
		case errors.Is(err, services.ErrNotInView):
			c.JSON(404, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRestoreUnavailable), errors.Is(err, services.ErrActionInFlight):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(502, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, view.State())
}

func (cc *CollectionController) RestoreArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	view := cc.view(c)
	if err := view.RestoreArtist(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrRestoreUnavailable), errors.Is(err, services.ErrActionInFlight):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(502, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, view.State())
}

// Images returns the active tab's image blobs (base64 in JSON), with
// per-record failures listed instead of failing the batch.
func (cc *CollectionController) Images(c *gin.Context) {
	images, failures := cc.view(c).Images(c.Request.Context())

	failed := make([]gin.H, 0, len(failures))
	for _, f := range failures {
		failed = append(failed, gin.H{"id": f.ID, "error": f.Err.Error()})
	}
	c.JSON(200, gin.H{"images": images, "failures": failed})
}
