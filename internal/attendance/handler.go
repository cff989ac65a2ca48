package attendance

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/transport"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

type ServiceAPI interface {
	CheckIn(ctx context.Context, employeeID string, notes *string) (*Attendance, error)
	CheckOut(ctx context.Context, employeeID string) (*Attendance, error)
	History(ctx context.Context, employeeID string, limit int) ([]*Attendance, error)
	ByDate(ctx context.Context, day time.Time) ([]*Attendance, error)
}

type checkInDTO struct {
	Notes *string `json:"notes"`
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

// CheckIn handles POST /attendance/check-in
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto checkInDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	record, err := h.Service.CheckIn(r.Context(), user.ID, dto.Notes)
	if err != nil {
		h.Logger.Error("check-in failed", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// CheckOut handles POST /attendance/check-out
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.Service.CheckOut(r.Context(), user.ID)
	if err != nil {
		h.Logger.Error("check-out failed", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// OwnHistory handles GET /attendance/me
func (h *Handler) OwnHistory(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.Service.History(r.Context(), user.ID, limit)
	if err != nil {
		h.Logger.Error("failed to load attendance history", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// ByDate handles GET /admin/attendance?date=YYYY-MM-DD
func (h *Handler) ByDate(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}
		day = parsed
	}

	records, err := h.Service.ByDate(r.Context(), day)
	if err != nil {
		h.Logger.Error("failed to load attendance by date", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
