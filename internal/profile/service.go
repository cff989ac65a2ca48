package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harisfebriyan12/kehadiran1/internal"
	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

type Repository interface {
	GetByID(ctx context.Context, userID string) (*Profile, error)
	GetRole(ctx context.Context, userID string) (string, error)
	List(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdateLastPayment(ctx context.Context, userID string, paidAt time.Time) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, internal.NewInternalError("failed to get profile", err)
	}
	return p, nil
}

// List returns every employee profile, for the admin directory.
func (s *Service) List(ctx context.Context) ([]*Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to list profiles", err)
	}
	return profiles, nil
}

// UpdateOwn applies the employee-editable fields. Role, salary and the last
// payment marker are carried over from the stored profile untouched.
func (s *Service) UpdateOwn(ctx context.Context, userID string, dto UpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.Name = dto.Name
	current.Department = dto.Department
	current.Position = dto.Position
	current.BankID = dto.BankID
	current.BankAccount = dto.BankAccount
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, internal.NewInternalError("failed to update profile", err)
	}

	s.logger.Info("profile updated", "user_id", userID)
	return current, nil
}

// AdminUpdate applies the full profile shape, including role and salary.
func (s *Service) AdminUpdate(ctx context.Context, userID string, dto AdminUpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.Name = dto.Name
	current.Department = dto.Department
	current.Position = dto.Position
	current.BankID = dto.BankID
	current.BankAccount = dto.BankAccount
	current.Role = role.Parse(dto.Role)
	current.Salary = dto.Salary
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, internal.NewInternalError("failed to update profile", err)
	}

	s.logger.Info("profile updated by admin", "user_id", userID, "role", current.Role)
	return current, nil
}
