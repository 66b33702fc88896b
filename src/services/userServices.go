package services

import (
	"context"
	"time"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/golang-jwt/jwt/v5"
)

type UserService struct {
	api *api.Client
}

// NewUserService creates a new instance of UserService
func NewUserService(client *api.Client) *UserService {
	return &UserService{api: client}
}

// Authenticate forwards the credentials upstream and, on success, issues the
// gateway's own session token carrying the upstream identity.
func (s *UserService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	result, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"id":       result.UserID,
		"username": result.Username,
		"role":     result.Role,
		"exp":      time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:    tokenString,
		UserID:   result.UserID,
		Username: result.Username,
		Role:     result.Role,
	}, nil
}

// GetAllUsers retrieves all User records from upstream
func (s *UserService) GetAllUsers(ctx context.Context, auth models.AuthContext) ([]models.UserRecord, error) {
	return s.api.ListUsers(ctx, auth)
}

// CreateUser creates a new User record upstream
func (s *UserService) CreateUser(ctx context.Context, auth models.AuthContext, payload models.UserPayload) error {
	return s.api.CreateUser(ctx, auth, payload)
}

// UpdateUser updates a User record by ID
func (s *UserService) UpdateUser(ctx context.Context, auth models.AuthContext, id int, payload models.UserPayload) error {
	return s.api.UpdateUser(ctx, auth, id, payload)
}
