package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harisfebriyan12/kehadiran1/internal"
	attendanceDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/attendance"
)

type Repository interface {
	Create(ctx context.Context, a *attendanceDatamodel.Attendance) error
	GetForDate(ctx context.Context, employeeID string, workDate time.Time) (*attendanceDatamodel.Attendance, error)
	SetCheckOut(ctx context.Context, id int64, checkOut time.Time) error
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*attendanceDatamodel.Attendance, error)
	ListByDate(ctx context.Context, workDate time.Time) ([]*attendanceDatamodel.Attendance, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// workDate truncates a moment to its calendar day.
func workDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn opens today's attendance for an employee. A second check-in on the
// same day is rejected.
func (s *Service) CheckIn(ctx context.Context, employeeID string, notes *string) (*Attendance, error) {
	now := s.now()
	today := workDate(now)

	existing, err := s.repo.GetForDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, ErrNotCheckedIn) {
		return nil, internal.NewInternalError("failed to check attendance", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("Already checked in today", internal.ErrCodeAlreadyCheckedIn)
	}

	record := &attendanceDatamodel.Attendance{
		EmployeeID: employeeID,
		WorkDate:   today,
		CheckIn:    now,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, internal.NewInternalError("failed to record check-in", err)
	}

	s.logger.Info("employee checked in", "employee_id", employeeID, "work_date", today.Format("2006-01-02"))
	return FromDataModel(record), nil
}

// CheckOut closes today's attendance. Checking out twice, or without a prior
// check-in, is rejected.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (*Attendance, error) {
	now := s.now()
	today := workDate(now)

	record, err := s.repo.GetForDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, ErrNotCheckedIn) {
			return nil, internal.NewValidationError("No check-in recorded today", internal.ErrCodeNotCheckedIn)
		}
		return nil, internal.NewInternalError("failed to check attendance", err)
	}
	if record.CheckOut != nil {
		return nil, internal.NewConflictError("Already checked out today", internal.ErrCodeNotCheckedIn)
	}

	if err := s.repo.SetCheckOut(ctx, record.ID, now); err != nil {
		return nil, internal.NewInternalError("failed to record check-out", err)
	}
	record.CheckOut = &now
	record.UpdatedAt = now

	s.logger.Info("employee checked out", "employee_id", employeeID, "work_date", today.Format("2006-01-02"))
	return FromDataModel(record), nil
}

// History returns an employee's recent attendance, newest first.
func (s *Service) History(ctx context.Context, employeeID string, limit int) ([]*Attendance, error) {
	if limit <= 0 || limit > 100 {
		limit = 31
	}

	records, err := s.repo.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, internal.NewInternalError("failed to load attendance history", err)
	}
	return FromDataModelSlice(records), nil
}

// ByDate returns every attendance for one calendar day, for the admin view.
func (s *Service) ByDate(ctx context.Context, day time.Time) ([]*Attendance, error) {
	records, err := s.repo.ListByDate(ctx, workDate(day))
	if err != nil {
		return nil, internal.NewInternalError("failed to load attendance by date", err)
	}
	return FromDataModelSlice(records), nil
}
