package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	profileDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/profile"
	"github.com/harisfebriyan12/kehadiran1/internal/profile"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, userID string) (*profile.Profile, error) {
	var dm profileDatamodel.Profile
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		return nil, err
	}
	return profile.FromDataModel(&dm), nil
}

func (r *Repository) GetRole(ctx context.Context, userID string) (string, error) {
	var role string
	query := `SELECT role FROM profiles WHERE id = ?`

	row := r.db.WithContext(ctx).Raw(query, userID).Row()
	if err := row.Scan(&role); err != nil {
		if err == sql.ErrNoRows {
			return "", profile.ErrNotFound
		}
		return "", err
	}
	return role, nil
}

func (r *Repository) List(ctx context.Context) ([]*profile.Profile, error) {
	var dms []*profileDatamodel.Profile
	err := r.db.WithContext(ctx).Order("name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return profile.FromDataModelSlice(dms), nil
}

func (r *Repository) Update(ctx context.Context, p *profile.Profile) error {
	dm := profile.ToDataModel(p)
	result := r.db.WithContext(ctx).Model(&profileDatamodel.Profile{}).
		Where("id = ?", dm.ID).
		Updates(map[string]interface{}{
			"name":         dm.Name,
			"role":         dm.Role,
			"department":   dm.Department,
			"position":     dm.Position,
			"salary":       dm.Salary,
			"bank_id":      dm.BankID,
			"bank_account": dm.BankAccount,
			"updated_at":   dm.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// UpdateLastPayment stamps the profile with the date of its most recent
// completed salary payment.
func (r *Repository) UpdateLastPayment(ctx context.Context, userID string, paidAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&profileDatamodel.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_salary_payment": paidAt,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return profile.ErrNotFound
	}
	return nil
}
