package payroll

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/transport"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

type ServiceAPI interface {
	Submit(ctx context.Context, processedBy string, req PaymentRequest) (*PaymentResult, error)
	History(ctx context.Context, employeeID string) ([]*Payment, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Payment, error)
	GetByID(ctx context.Context, id int64) (*Payment, error)
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

// SubmitPayment handles POST /admin/payments
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Submit(r.Context(), user.ID, req)
	if err != nil {
		h.Logger.Error("salary payment failed", "error", err, "employee_id", req.EmployeeID, "processed_by", user.ID)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, result)
}

// ListPayments handles GET /admin/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	payments, err := h.Service.ListAll(r.Context(), limit, offset)
	if err != nil {
		h.Logger.Error("failed to list payments", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payments)
}

// GetPayment handles GET /admin/payments/{id}
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to load payment", "payment_id", id, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payment)
}

// EmployeeHistory handles GET /admin/payments/employee/{id}
func (h *Handler) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	payments, err := h.Service.History(r.Context(), employeeID)
	if err != nil {
		h.Logger.Error("failed to load payment history", "employee_id", employeeID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payments)
}

// OwnHistory handles GET /payments/me for the signed-in employee.
func (h *Handler) OwnHistory(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payments, err := h.Service.History(r.Context(), user.ID)
	if err != nil {
		h.Logger.Error("failed to load own payment history", "user_id", user.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payments)
}
