package bank

import (
	"context"
	"errors"
	"log/slog"

	"github.com/harisfebriyan12/kehadiran1/internal"
)

type Repository interface {
	ListActive(ctx context.Context) ([]*BankInfo, error)
	GetByID(ctx context.Context, id int64) (*BankInfo, error)
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

// ListActive returns the banks offered in payment and profile forms, ordered
// by name.
func (s *Service) ListActive(ctx context.Context) ([]*BankInfo, error) {
	banks, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to list banks", err)
	}
	return banks, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*BankInfo, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("Bank not found", internal.ErrCodeBankNotFound)
		}
		return nil, internal.NewInternalError("failed to load bank", err)
	}
	return b, nil
}
