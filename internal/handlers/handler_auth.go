package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, logout and the current-user lookup.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	cookieName   string
	cookieMaxAge int
	secure       bool
}

func newAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  authService,
		cookieName:   cfg.SessionCookieName,
		cookieMaxAge: int((cfg.SessionTTL + time.Second - 1) / time.Second),
		secure:       cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
// Login is public and rate limited; the rest sit behind the session middleware.
func registerAuthRoutes(r *gin.Engine, protected *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService, cfg)

	public := r.Group("/api/auth")
	if loginLimiter != nil {
		public.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	} else {
		public.POST("/login", h.login)
	}

	auth := protected.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

func (h *authHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secure, true)
}

// login verifies credentials and starts a session. The token is only ever sent as a cookie.
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(user)})
}

func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, _ := middleware.GetSessionTokenFromContext(c)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		logger.Error("Failed to revoke session", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	logger.Info("User logged out")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *authHandler) me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
