package bank

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/harisfebriyan12/kehadiran1/internal/bank"
	bankDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/bank"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListActive(ctx context.Context) ([]*bank.BankInfo, error) {
	var dms []*bankDatamodel.BankInfo
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("bank_name ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return bank.FromDataModelSlice(dms), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*bank.BankInfo, error) {
	var dm bankDatamodel.BankInfo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bank.ErrNotFound
		}
		return nil, err
	}
	return bank.FromDataModel(&dm), nil
}
