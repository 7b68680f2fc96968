package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/session"
)

const (
	// ContextKeyAdmin is the Gin context key for the authenticated admin.
	ContextKeyAdmin = "admin"
	// ContextKeyInvalidSession marks requests whose session token resolved
	// to an admin that no longer exists. Distinct from having no session
	// at all: guarded routes answer 403 instead of 401.
	ContextKeyInvalidSession = "invalid_session"
)

// SessionAuth resolves the caller's identity from the session cookie on
// every request. It never rejects: it attaches the admin when the session
// is valid, flags the request when the session references an unknown
// admin, and otherwise leaves the caller anonymous. Enforcement belongs
// to RequireAdmin on the routes that need it.
func SessionAuth(cfg *config.Config, sessions session.Store, adminService *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		adminID, ok, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			response.AbortFail(c, response.KindInternal, err.Error())
			return
		}
		if !ok {
			// Expired or logged-out token: the session records no
			// identity, so the caller is anonymous, not invalid.
			clearCookie(c, cfg)
			c.Next()
			return
		}

		admin, err := adminService.GetByID(c.Request.Context(), adminID)
		if err != nil {
			response.AbortFail(c, response.KindInternal, err.Error())
			return
		}
		if admin == nil {
			// Stale session: the referenced admin is gone. Drop the
			// session so the client falls back to anonymous next time.
			_ = sessions.Delete(c.Request.Context(), token)
			clearCookie(c, cfg)
			c.Set(ContextKeyInvalidSession, true)
			c.Next()
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// RequireAdmin rejects requests without an authenticated admin: 403 when
// the request carried an invalid session, 401 when it carried none.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAdmin(c) == nil {
			if c.GetBool(ContextKeyInvalidSession) {
				response.AbortFail(c, response.KindForbidden, "Invalid session")
				return
			}
			response.AbortFail(c, response.KindUnauthorized, "Not authenticated")
			return
		}
		c.Next()
	}
}

// GetAdmin retrieves the authenticated admin from the Gin context, or nil
// for anonymous requests.
func GetAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := val.(*model.Admin)
	if !ok {
		return nil
	}
	return admin
}

func clearCookie(c *gin.Context, cfg *config.Config) {
	c.SetCookie(cfg.SessionCookie, "", -1, "/", "", cfg.CookieSecure, true)
}
