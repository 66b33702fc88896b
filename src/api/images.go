package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EntityKind selects which image endpoint a fetch targets.
type EntityKind string

const (
	KindArtwork EntityKind = "artwork"
	KindArtist  EntityKind = "artist"
)

// ImageFailure records one entity whose image could not be fetched.
type ImageFailure struct {
	ID  int
	Err error
}

// FetchImage fetches the image blob for one artwork or artist.
func (c *Client) FetchImage(ctx context.Context, kind EntityKind, id int) ([]byte, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%d/image", kind, id), nil, nil, nil, "")
}

// FetchImageBatch fetches images for a set of entities with at most limit
// requests in flight, returning the bytes keyed by id and the per-item
// failures. A slow or failing image never blocks the others; the map is
// only returned once every fetch has settled.
func (c *Client) FetchImageBatch(ctx context.Context, kind EntityKind, ids []int, limit int) (map[int][]byte, []ImageFailure) {
	if limit <= 0 {
		limit = 8
	}

	var (
		mu       sync.Mutex
		images   = make(map[int][]byte, len(ids))
		failures []ImageFailure
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			data, err := c.FetchImage(ctx, kind, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.log.Debug("image fetch failed",
					zap.String("kind", string(kind)),
					zap.Int("id", id),
					zap.Error(err))
				failures = append(failures, ImageFailure{ID: id, Err: err})
				return nil
			}
			images[id] = data
			return nil
		})
	}
	_ = g.Wait()

	return images, failures
}
