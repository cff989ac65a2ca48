package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harisfebriyan12/kehadiran1/internal"
	"github.com/harisfebriyan12/kehadiran1/internal/bank"
	payrollDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/payroll"
	"github.com/harisfebriyan12/kehadiran1/internal/core/events"
	"github.com/harisfebriyan12/kehadiran1/internal/profile"
)

// Repository interface for salary payment database operations
type Repository interface {
	Create(ctx context.Context, p *payrollDatamodel.SalaryPayment) error
	GetByID(ctx context.Context, id int64) (*payrollDatamodel.SalaryPayment, error)
	MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*payrollDatamodel.SalaryPayment, error)
	ListAll(ctx context.Context, limit, offset int) ([]*payrollDatamodel.SalaryPayment, error)
	ListStuckPending(ctx context.Context, olderThan time.Time) ([]*payrollDatamodel.SalaryPayment, error)
}

// ProfileDirectory is the slice of profile storage payroll needs.
type ProfileDirectory interface {
	GetByID(ctx context.Context, userID string) (*profile.Profile, error)
	UpdateLastPayment(ctx context.Context, userID string, paidAt time.Time) error
}

// BankDirectory resolves bank names for transfer receipts.
type BankDirectory interface {
	GetByID(ctx context.Context, id int64) (*bank.BankInfo, error)
}

type Service struct {
	repo     Repository
	profiles ProfileDirectory
	banks    BankDirectory
	eventBus *events.EventBus
	logger   *slog.Logger

	// pending payments older than this are considered stuck
	stuckAfter time.Duration
}

func NewService(repo Repository, profiles ProfileDirectory, banks BankDirectory, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		profiles:   profiles,
		banks:      banks,
		eventBus:   eventBus,
		logger:     logger,
		stuckAfter: 5 * time.Minute,
	}
}

// Submit processes a salary payment as a three step sequence: insert the
// record as pending, stamp the employee profile with the payment date, then
// mark the record completed. A failure after the insert leaves the record
// pending for the reconciler to re-drive; the payment is never half visible
// as completed.
func (s *Service) Submit(ctx context.Context, processedBy string, req PaymentRequest) (*PaymentResult, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("salary payment rejected", "error", err, "employee_id", req.EmployeeID)
		return nil, err
	}

	employee, err := s.profiles.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, internal.NewValidationError("Data karyawan tidak valid", internal.ErrCodeInvalidEmployee)
		}
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeProfileNotFound {
			return nil, internal.NewValidationError("Data karyawan tidak valid", internal.ErrCodeInvalidEmployee)
		}
		return nil, err
	}

	paymentDate := req.ParsedDate()
	now := time.Now()

	bankAccount := req.BankAccount
	if bankAccount == nil {
		bankAccount = employee.BankAccount
	}

	record := &payrollDatamodel.SalaryPayment{
		ReferenceID:   uuid.New().String(),
		EmployeeID:    employee.ID,
		Amount:        req.Amount,
		Bonus:         req.Bonus,
		Deductions:    req.Deductions,
		TotalAmount:   req.TotalAmount(),
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		BankAccount:   bankAccount,
		BankID:        employee.BankID,
		Status:        StatusPending,
		Notes:         req.Notes,
		ProcessedBy:   processedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create salary payment record", "error", err, "employee_id", employee.ID)
		return nil, internal.NewInternalError("Gagal memproses pembayaran gaji", err)
	}

	if err := s.complete(ctx, record); err != nil {
		s.logger.Error("salary payment left pending", "error", err,
			"payment_id", record.ID, "reference_id", record.ReferenceID)
		return nil, internal.NewInternalError("Gagal memproses pembayaran gaji", err)
	}

	confirmation := BuildConfirmation(employee.Name, record.TotalAmount, paymentDate, record.PaymentMethod, s.bankName(ctx, record))

	return &PaymentResult{
		Payment:      FromDataModel(record),
		Confirmation: confirmation,
	}, nil
}

// complete runs the remaining saga steps for a pending record: profile stamp
// then status flip, with the completed event published at the end.
func (s *Service) complete(ctx context.Context, record *payrollDatamodel.SalaryPayment) error {
	if err := s.profiles.UpdateLastPayment(ctx, record.EmployeeID, record.PaymentDate); err != nil {
		return err
	}

	completedAt := time.Now()
	if err := s.repo.MarkCompleted(ctx, record.ID, completedAt); err != nil {
		return err
	}
	record.Status = StatusCompleted
	record.CompletedAt = &completedAt
	record.UpdatedAt = completedAt

	event := events.NewSalaryPaymentCompletedEvent(record.ID, record.ReferenceID, record.EmployeeID, record.TotalAmount, record.ProcessedBy)
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish payment completed event", "error", err, "payment_id", record.ID)
	}

	s.logger.Info("salary payment completed",
		"payment_id", record.ID,
		"reference_id", record.ReferenceID,
		"employee_id", record.EmployeeID,
		"total_amount", record.TotalAmount)

	return nil
}

// Reconcile re-drives pending payments whose saga stalled. Each stuck record
// is reported and then completed; the count of recovered payments is
// returned.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.stuckAfter)
	stuck, err := s.repo.ListStuckPending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, record := range stuck {
		event := events.NewSalaryPaymentStuckEvent(record.ID, record.ReferenceID, record.EmployeeID, "pending past completion window")
		if pubErr := s.eventBus.Publish(ctx, event); pubErr != nil {
			s.logger.Warn("failed to publish stuck payment event", "error", pubErr, "payment_id", record.ID)
		}

		if err := s.complete(ctx, record); err != nil {
			s.logger.Error("failed to reconcile stuck payment", "error", err, "payment_id", record.ID)
			continue
		}
		recovered++
	}

	if len(stuck) > 0 {
		s.logger.Info("payment reconciliation finished", "stuck", len(stuck), "recovered", recovered)
	}

	return recovered, nil
}

// History returns an employee's payments, newest first.
func (s *Service) History(ctx context.Context, employeeID string) ([]*Payment, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load payment history", err)
	}
	return FromDataModelSlice(records), nil
}

// ListAll returns payments across all employees, for the admin ledger.
func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]*Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("failed to list payments", err)
	}
	return FromDataModelSlice(records), nil
}

// GetByID returns a single payment.
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, internal.ErrPaymentNotFound
		}
		return nil, internal.NewInternalError("failed to load payment", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) bankName(ctx context.Context, record *payrollDatamodel.SalaryPayment) string {
	if record.PaymentMethod != MethodTransfer || record.BankID == nil {
		return ""
	}
	b, err := s.banks.GetByID(ctx, *record.BankID)
	if err != nil {
		s.logger.Warn("failed to resolve bank for receipt", "error", err, "bank_id", *record.BankID)
		return ""
	}
	return b.BankName
}

// ErrRecordNotFound is returned by repositories for a missing payment row.
var ErrRecordNotFound = errors.New("salary payment not found")
