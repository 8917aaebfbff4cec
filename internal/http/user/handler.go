package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/http/middleware"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/user"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers the unauthenticated account routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

// AuthRoutes registers the routes that need a logged-in user.
func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Role      user.Role  `json:"role"`
	StartupID *uuid.UUID `json:"startupId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		StartupID: u.StartupID,
		CreatedAt: u.CreatedAt,
	}
}

type registerRequest struct {
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	StartupID *uuid.UUID `json:"startUpId"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		FullName:  req.FullName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		StartupID: req.StartupID,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "fullName, email, username and password are required")
		case errors.Is(err, user.ErrDuplicate):
			respond.Error(w, http.StatusConflict, "email or username already in use")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to register user")
		}

		return
	}

	respond.Data(w, http.StatusCreated, toResponse(u), "user registered")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, user.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, user.ErrBadCredentials):
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to log in")
		}

		return
	}

	respond.Data(w, http.StatusOK, loginResponse{User: toResponse(u), AccessToken: token}, "logged in")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	if err := h.svc.Logout(r.Context(), u.ID); err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	respond.Data(w, http.StatusOK, nil, "logged out")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	respond.Data(w, http.StatusOK, toResponse(u), "current user")
}
