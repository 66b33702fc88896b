package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FAMH/Collection-Gateway/src/models"
)

func validArtist(a models.ArtistRecord) bool { return a.ArtistID != 0 }

// ListArtistsWithArtwork fetches artists that have at least one artwork in
// the given soft-delete view.
func (c *Client) ListArtistsWithArtwork(ctx context.Context, deleted bool) ([]models.ArtistRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/artist-with-artwork", deletedQuery(deleted), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, validArtist)
}

// ListArtistsWithoutArtwork fetches artists with no artwork on record.
func (c *Client) ListArtistsWithoutArtwork(ctx context.Context, deleted bool) ([]models.ArtistRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/artist-null-artwork", deletedQuery(deleted), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, validArtist)
}

// ListArtists fetches every active artist, used for edit-form option lists.
func (c *Client) ListArtists(ctx context.Context) ([]models.ArtistRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/artist", nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, validArtist)
}

func (c *Client) GetArtist(ctx context.Context, id int) (*models.ArtistRecord, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/artist/%d", id), nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	var artist models.ArtistRecord
	if err := json.Unmarshal(data, &artist); err != nil {
		list, listErr := decodeList(data, validArtist)
		if listErr != nil || len(list) == 0 {
			return nil, err
		}
		return &list[0], nil
	}
	return &artist, nil
}

func (c *Client) UpdateArtist(ctx context.Context, id int, fields map[string]string, image *ImageAttachment) error {
	return c.patchMultipart(ctx, fmt.Sprintf("/artist/%d", id), fields, image)
}

func (c *Client) DeleteArtist(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/artist/%d", id), nil, nil, nil, "")
	return err
}

func (c *Client) RestoreArtist(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/artist/%d/restore", id), nil, nil, nil, "")
	return err
}
