package controllers

import (
	"errors"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/forms"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Login verifies the credentials upstream and returns the session token.
func (uc *UserController) Login(c *gin.Context) {
	var creds models.LoginRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	result, err := uc.service.Authenticate(c.Request.Context(), creds)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.service.GetAllUsers(c.Request.Context(), middleware.Auth(c))
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

// CreateUser creates an account. The password rules apply only here, never
// on update.
func (uc *UserController) CreateUser(c *gin.Context) {
	var values forms.UserValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	form := forms.NewBlankUserForm()
	form.Values = values
	if errs := form.Validate(); len(errs) > 0 {
		writeFormError(c, &services.ValidationError{Fields: errs})
		return
	}

	if err := uc.service.CreateUser(c.Request.Context(), middleware.Auth(c), form.Payload()); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{"message": "User created successfully"})
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}
	var values forms.UserValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	form := forms.NewBlankUserForm()
	form.UserID = id
	form.Values = values

	if err := uc.service.UpdateUser(c.Request.Context(), middleware.Auth(c), id, form.Payload()); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "User updated successfully"})
}
