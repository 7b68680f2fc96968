package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/session"
	"github.com/quizdeck/quiz-backend/internal/validator"
	"github.com/rs/zerolog"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	cfg          *config.Config
	authService  *service.AuthService
	adminService *service.AdminService
	sessions     session.Store
	log          zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	cfg *config.Config,
	authService *service.AuthService,
	adminService *service.AdminService,
	sessions session.Store,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		authService:  authService,
		adminService: adminService,
		sessions:     sessions,
		log:          log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /admin.login
// Validates email + password and opens a session. Unknown email and wrong
// password produce identical envelopes.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithData(c, response.KindBadRequest, "Validation failed", fields)
		return
	}

	admin, err := h.adminService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.failInternal(c, err)
		return
	}
	if admin == nil {
		response.Fail(c, response.KindForbidden, "Invalid credentials")
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, response.KindForbidden, "Invalid credentials")
			return
		}
		h.failInternal(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), admin.ID)
	if err != nil {
		h.failInternal(c, err)
		return
	}
	c.SetCookie(h.cfg.SessionCookie, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)

	response.OK(c, gin.H{"id": admin.ID, "email": admin.Email})
}

// Current godoc
// GET /admin.current
// Returns the authenticated admin's identity.
func (h *AuthHandler) Current(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, response.KindUnauthorized, "Not authenticated")
		return
	}

	response.OK(c, gin.H{"id": admin.ID, "email": admin.Email})
}

// Logout godoc
// POST /admin.logout
// Deletes the caller's session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			h.failInternal(c, err)
			return
		}
	}
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", h.cfg.CookieSecure, true)

	response.OK(c, gin.H{})
}

func (h *AuthHandler) failInternal(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	response.Fail(c, response.KindInternal, err.Error())
}
