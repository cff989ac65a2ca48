package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/transport"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

type ServiceAPI interface {
	GetByID(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	UpdateOwn(ctx context.Context, userID string, dto UpdateProfileDTO) (*Profile, error)
	AdminUpdate(ctx context.Context, userID string, dto AdminUpdateProfileDTO) (*Profile, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetCurrentProfile handles GET /profiles/me
func (h *Handler) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.Service.GetByID(r.Context(), user.ID)
	if err != nil {
		h.Logger.Error("failed to load own profile", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// UpdateCurrentProfile handles PATCH /profiles/me
func (h *Handler) UpdateCurrentProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdateOwn(r.Context(), user.ID, dto)
	if err != nil {
		h.Logger.Error("failed to update own profile", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// ListProfiles handles GET /admin/profiles
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list profiles", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profiles)
}

// GetProfile handles GET /admin/profiles/{id}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	p, err := h.Service.GetByID(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load profile", "user_id", userID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// UpdateProfile handles PUT /admin/profiles/{id}
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var dto AdminUpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.AdminUpdate(r.Context(), userID, dto)
	if err != nil {
		h.Logger.Error("failed to update profile", "user_id", userID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}
