package bank

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/harisfebriyan12/kehadiran1/internal/transport"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

type ServiceAPI interface {
	ListActive(ctx context.Context) ([]*BankInfo, error)
	GetByID(ctx context.Context, id int64) (*BankInfo, error)
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

// ListBanks handles GET /banks
func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.Service.ListActive(r.Context())
	if err != nil {
		h.Logger.Error("failed to list banks", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, banks)
}

// GetBank handles GET /banks/{id}
func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid bank id")
		return
	}

	b, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to load bank", "bank_id", id, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}
