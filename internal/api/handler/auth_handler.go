package handler

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	"green_valley_api/internal/api/middleware"
	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/platform/ratelimit"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService  *service.AuthService
	loginLimiter *ratelimit.Limiter // nil disables limiting
}

func NewAuthHandler(authService *service.AuthService, loginLimiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{authService: authService, loginLimiter: loginLimiter}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator)
		authed.Get("/me", h.me)
	})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if h.loginLimiter != nil {
		allowed, err := h.loginLimiter.Allow(r.Context(), limiterKey(r, req.Email))
		if err != nil {
			// A stalled limiter must not take logins down with it.
			log.Printf("login rate limiter unavailable: %v", err)
		} else if !allowed {
			common.RespondWithError(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func limiterKey(r *http.Request, email string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return email + "|" + host
}
