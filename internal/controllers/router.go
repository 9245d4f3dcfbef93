package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/middleware"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
	"github.com/Somye55/colbin-recruitment-platform/internal/utils"
)

// SetupRouter wires every route. limiter and mailer may be nil, which
// disables throttling and welcome mail respectively.
func SetupRouter(users *store.UserStore, tokens *auth.TokenService, limiter *middleware.RateLimiter, mailer *utils.SMTPClient) *gin.Engine {
	r := gin.Default()

	authCtrl := NewAuthController(users, tokens, mailer)
	profileCtrl := NewProfileController(users)
	requireAuth := middleware.RequireAuth(tokens, users)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", limiter.Handle(), authCtrl.Register)
		authGroup.POST("/login", limiter.Handle(), authCtrl.Login)
		authGroup.GET("/me", requireAuth, authCtrl.Me)
	}

	profile := api.Group("/profile")
	profile.Use(requireAuth)
	{
		profile.GET("", profileCtrl.Get)
		profile.PUT("", profileCtrl.Update)
		profile.DELETE("", profileCtrl.Delete)
	}

	return r
}
