package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somye55/colbin-recruitment-platform/internal/middleware"
	"github.com/Somye55/colbin-recruitment-platform/internal/models"
	"github.com/Somye55/colbin-recruitment-platform/internal/response"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
)

type ProfileController struct {
	users *store.UserStore
}

func NewProfileController(users *store.UserStore) *ProfileController {
	return &ProfileController{users: users}
}

func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// Get re-reads the record so the response reflects the store, not whatever
// snapshot the middleware resolved.
func (p *ProfileController) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.AbortUnauthorized(c)
		return
	}
	fresh, err := p.users.FindByID(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	response.JSON(c, http.StatusOK, response.Body{
		Message: "profile fetched",
		Data:    fresh,
	})
}

// Update applies the allow-listed fields through the store, which re-runs
// the registration validation rules on the merged record.
func (p *ProfileController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.AbortUnauthorized(c)
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := p.users.UpdateFields(c.Request.Context(), user.ID, &req)
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationFailed(c, verr.Fields)
		case errors.Is(err, store.ErrNotFound):
			response.Error(c, http.StatusNotFound, "profile not found")
		default:
			response.Error(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}
	response.JSON(c, http.StatusOK, response.Body{
		Message: "profile updated",
		Data:    updated,
	})
}

// Delete acknowledges the request without touching the record. Actual
// account deletion is not implemented yet; this mirrors the documented gap
// rather than silently inventing destructive behaviour.
func (p *ProfileController) Delete(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		response.AbortUnauthorized(c)
		return
	}
	response.JSON(c, http.StatusOK, response.Body{
		Message: "profile deletion acknowledged",
	})
}
