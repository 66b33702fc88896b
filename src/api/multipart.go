package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"sort"
)

// ImageAttachment is an optional binary image part on an entity update.
type ImageAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (c *Client) patchMultipart(ctx context.Context, path string, fields map[string]string, image *ImageAttachment) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// Deterministic part order keeps request logs diffable.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return err
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(image.Data); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	_, err := c.do(ctx, http.MethodPatch, path, nil, nil, &buf, w.FormDataContentType())
	return err
}
