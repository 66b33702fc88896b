package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/models"
)

func authHeader(auth models.AuthContext) http.Header {
	header := http.Header{}
	header.Set("user-id", strconv.Itoa(auth.UserID))
	header.Set("role", auth.Role)
	return header
}

// Login verifies credentials against the upstream and returns the identity
// it acknowledges. The gateway mints its own session token from this.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPost, "/login", nil, nil, bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}
	var result models.LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListUsers(ctx context.Context, auth models.AuthContext) ([]models.UserRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/users", nil, authHeader(auth), nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList(data, func(u models.UserRecord) bool { return u.UserID != 0 })
}

func (c *Client) CreateUser(ctx context.Context, auth models.AuthContext, payload models.UserPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, "/users", nil, authHeader(auth), bytes.NewReader(body), "application/json")
	return err
}

func (c *Client) UpdateUser(ctx context.Context, auth models.AuthContext, id int, payload models.UserPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, authHeader(auth), bytes.NewReader(body), "application/json")
	return err
}
