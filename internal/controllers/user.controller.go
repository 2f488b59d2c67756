package controllers

import (
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"
	"sciencepress/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

type createUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"`
	ProfilePic  string `json:"profile_pic"`
	Description string `json:"description"`
}

type updateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	ProfilePic  *string `json:"profile_pic"`
	Description *string `json:"description"`
}

// CreateUser godoc
// @Summary Create a user
// @Tags user
// @Accept json
// @Produce json
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req createUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    utils.HashPassword(req.Password),
		Role:        req.Role,
		Active:      true,
		ProfilePic:  req.ProfilePic,
		Description: req.Description,
	}

	if err := uc.repo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetAllUsers godoc
// @Summary List users
// @Description Retrieve all users, newest first
// @Tags user
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update of name, email, profile picture and description
// @Tags user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := map[string]interface{}{}
	if req.Name != nil {
		data["name"] = *req.Name
	}
	if req.Email != nil {
		data["email"] = *req.Email
	}
	if req.ProfilePic != nil {
		data["profile_pic"] = *req.ProfilePic
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}

	user, err := uc.repo.PatchUser(id, data)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "{success: true}"
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := uc.repo.DeleteUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
