package middleware

import (
	"context"
	"errors"
	"net/http"

	"marketplace/internal/model"
	"marketplace/internal/response"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	AuthAdminKey = "authAdmin"

	// Admin credentials travel as plain request headers on every protected call.
	// There is no token or session; each request is re-authenticated.
	HeaderUsername = "username"
	HeaderPassword = "password"
)

// AdminAuthenticator checks admin credentials
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.AdminIdentity, error)
}

// AdminAuthMiddleware re-authenticates an admin from the username/password
// headers and stores the identity under AuthAdminKey.
func AdminAuthMiddleware(auth AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(HeaderUsername)
		password := c.GetHeader(HeaderPassword)
		if username == "" || password == "" {
			response.Abort(c, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAdminNotFound):
				response.Abort(c, http.StatusUnauthorized, "Admin not found", nil)
			case errors.Is(err, service.ErrInvalidCredentials):
				response.Abort(c, http.StatusUnauthorized, "Invalid credentials", nil)
			default:
				log.WithError(err).Error("Auth error")
				response.Abort(c, http.StatusInternalServerError, "Authentication error", err)
			}
			return
		}

		c.Set(AuthAdminKey, *identity)
		c.Next()
	}
}

// AuthAdmin returns the identity attached by AdminAuthMiddleware
func AuthAdmin(c *gin.Context) (model.AdminIdentity, bool) {
	val, exists := c.Get(AuthAdminKey)
	if !exists {
		return model.AdminIdentity{}, false
	}
	identity, ok := val.(model.AdminIdentity)
	return identity, ok
}
