package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/response"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
)

// ContextUserKey is where RequireAuth leaves the resolved user.
const ContextUserKey = "currentUser"

// RequireAuth verifies the bearer token and then re-resolves the subject
// against the store: a well-signed token for a user that no longer exists
// is rejected. Every failure collapses into the same 401.
func RequireAuth(tokens *auth.TokenService, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.AbortUnauthorized(c)
			return
		}
		userID, err := tokens.Verify(parts[1])
		if err != nil {
			response.AbortUnauthorized(c)
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			response.AbortUnauthorized(c)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}
