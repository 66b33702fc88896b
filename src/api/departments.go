package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FAMH/Collection-Gateway/src/models"
)

func validDepartment(d models.DepartmentRecord) bool { return d.DepartmentID != 0 }

// ListDepartments fetches departments from one of the three upstream
// listings (all, with artwork, without artwork) for a soft-delete view.
func (c *Client) ListDepartments(ctx context.Context, source models.DepartmentSource, deleted bool) ([]models.DepartmentRecord, error) {
	path := "/department"
	switch source {
	case models.DepartmentsWithArtwork:
		path = "/department-with-artwork"
	case models.DepartmentsWithoutArtwork:
		path = "/department-null-artwork"
	}

	data, err := c.do(ctx, http.MethodGet, path, deletedQuery(deleted), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, validDepartment)
}

// GetDepartment fetches one department. The upstream answers this endpoint
// with a one-element array.
func (c *Client) GetDepartment(ctx context.Context, id int) (*models.DepartmentRecord, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/department/%d", id), nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	list, err := decodeList(data, validDepartment)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &APIError{Status: http.StatusNotFound, Message: "department not found"}
	}
	return &list[0], nil
}

// DepartmentUpdate is the JSON body for a department PATCH.
type DepartmentUpdate struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (c *Client) UpdateDepartment(ctx context.Context, id int, update DepartmentUpdate) error {
	return c.patchJSON(ctx, fmt.Sprintf("/department/%d", id), update)
}

func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/department/%d", id), nil, nil, nil, "")
	return err
}

func (c *Client) RestoreDepartment(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/department/%d/restore", id), nil, nil, nil, "")
	return err
}
