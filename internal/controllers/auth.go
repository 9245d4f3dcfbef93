package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/middleware"
	"github.com/Somye55/colbin-recruitment-platform/internal/models"
	"github.com/Somye55/colbin-recruitment-platform/internal/response"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
	"github.com/Somye55/colbin-recruitment-platform/internal/utils"
	"github.com/Somye55/colbin-recruitment-platform/internal/validation"
)

type AuthController struct {
	users  *store.UserStore
	tokens *auth.TokenService
	mailer *utils.SMTPClient
}

func NewAuthController(users *store.UserStore, tokens *auth.TokenService, mailer *utils.SMTPClient) *AuthController {
	return &AuthController{users: users, tokens: tokens, mailer: mailer}
}

// Register creates the user and logs them straight in: 201 with the
// sanitized record and a fresh token.
func (a *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := a.users.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationFailed(c, verr.Fields)
		case errors.Is(err, store.ErrDuplicateEmail):
			response.Error(c, http.StatusConflict, "email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	// welcome mail off the request path
	go func(u models.User) {
		if a.mailer != nil {
			_ = a.mailer.Send(u.Email, "Welcome to Colbin",
				fmt.Sprintf("Hello %s,\n\nYour account is ready. Complete your profile to get noticed by recruiters.", u.FirstName))
		}
	}(*user)

	response.JSON(c, http.StatusCreated, response.Body{
		Message: "registration successful",
		User:    user,
		Token:   token,
	})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password answer with the same message so accounts cannot be enumerated.
func (a *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validation.Validate(&req); len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}
	user, err := a.users.FindByEmailWithPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	if !auth.CheckPasswordHash(user.Password, req.Password) {
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	user.Password = ""
	response.JSON(c, http.StatusOK, response.Body{
		Message: "login successful",
		User:    user,
		Token:   token,
	})
}

// Me returns the record RequireAuth already resolved.
func (a *AuthController) Me(c *gin.Context) {
	user, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		response.AbortUnauthorized(c)
		return
	}
	response.JSON(c, http.StatusOK, response.Body{
		Message: "authenticated",
		User:    user,
	})
}
