package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FAMH/Collection-Gateway/src/models"
)

// ListArtworks fetches the full artwork collection for one soft-delete view.
func (c *Client) ListArtworks(ctx context.Context, deleted bool) ([]models.ArtworkRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/artwork", deletedQuery(deleted), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, func(a models.ArtworkRecord) bool { return a.ArtworkID != 0 })
}

func (c *Client) GetArtwork(ctx context.Context, id int) (*models.ArtworkRecord, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/artwork/%d", id), nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	var artwork models.ArtworkRecord
	if err := json.Unmarshal(data, &artwork); err != nil {
		// Some single-record endpoints answer with a one-element array.
		list, listErr := decodeList(data, func(a models.ArtworkRecord) bool { return a.ArtworkID != 0 })
		if listErr != nil || len(list) == 0 {
			return nil, err
		}
		return &list[0], nil
	}
	return &artwork, nil
}

// UpdateArtwork PATCHes the mutable artwork fields as multipart form data,
// with the image part present only when a new image was attached.
func (c *Client) UpdateArtwork(ctx context.Context, id int, fields map[string]string, image *ImageAttachment) error {
	return c.patchMultipart(ctx, fmt.Sprintf("/artwork/%d", id), fields, image)
}

// DeleteArtwork soft-deletes an artwork.
func (c *Client) DeleteArtwork(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/artwork/%d", id), nil, nil, nil, "")
	return err
}

// RestoreArtwork reverses a soft delete. Callers are expected to have
// verified the restore prerequisites first.
func (c *Client) RestoreArtwork(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/artwork/%d/restore", id), nil, nil, nil, "")
	return err
}
