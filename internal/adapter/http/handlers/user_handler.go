package handlers

import (
	"errors"
	"net/http"

	request "agencia_maker/internal/adapter/http/dto/request"
	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler serves the user roster, the maker sign-up and the dev login
// lookup.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// ListUsers godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUsers(h.usecase.List(c.Request.Context())))
}

// GetUser godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id path string true "User ID"
// @Success  200 {object} response.UserResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// LookupUser godoc
// @Summary  Find a user by email (development login)
// @Tags     users
// @Produce  json
// @Param    email query string true "Email"
// @Success  200 {object} response.UserResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /users/lookup [get]
func (h *UserHandler) LookupUser(c *gin.Context) {
	user, err := h.usecase.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// UpdateUser godoc
// @Summary  Update a user profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id   path string                    true "User ID"
// @Param    body body request.UpdateUserRequest true "Fields to change"
// @Success  200 {object} response.UserResponse
// @Router   /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidUserPayload)
		return
	}
	user, err := h.usecase.UpdateProfile(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// ListMakers godoc
// @Summary  List makers
// @Tags     makers
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /makers [get]
func (h *UserHandler) ListMakers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUsers(h.usecase.Makers(c.Request.Context())))
}

// BecomeMaker godoc
// @Summary  Register as a maker
// @Tags     makers
// @Accept   json
// @Produce  json
// @Param    body body request.BecomeMakerRequest true "Maker form"
// @Success  201 {object} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /makers [post]
func (h *UserHandler) BecomeMaker(c *gin.Context) {
	var payload request.BecomeMakerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidUserPayload)
		return
	}
	user, err := h.usecase.BecomeMaker(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// ListRoles godoc
// @Summary  Provider roles a maker can select
// @Tags     makers
// @Produce  json
// @Success  200 {object} response.RolesResponse
// @Router   /roles [get]
func (h *UserHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRoles(h.usecase.Roles()))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidUserPayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidMakerForm), errors.Is(err, usecase.ErrInvalidSpecialty):
		return pkg.NewDomainErrorSimple("INVALID_MAKER_FORM", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
