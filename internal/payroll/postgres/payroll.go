package payroll

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	payrollDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/payroll"
	"github.com/harisfebriyan12/kehadiran1/internal/payroll"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, p *payrollDatamodel.SalaryPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*payrollDatamodel.SalaryPayment, error) {
	var dm payrollDatamodel.SalaryPayment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payroll.ErrRecordNotFound
		}
		return nil, err
	}
	return &dm, nil
}

// MarkCompleted flips a pending payment to completed. The status guard keeps
// a concurrent reconciler from completing the same payment twice.
func (r *Repository) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&payrollDatamodel.SalaryPayment{}).
		Where("id = ? AND status = ?", id, payroll.StatusPending).
		Updates(map[string]interface{}{
			"status":       payroll.StatusCompleted,
			"completed_at": completedAt,
			"updated_at":   completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID string) ([]*payrollDatamodel.SalaryPayment, error) {
	var dms []*payrollDatamodel.SalaryPayment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("payment_date DESC, id DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return dms, nil
}

func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]*payrollDatamodel.SalaryPayment, error) {
	var dms []*payrollDatamodel.SalaryPayment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return dms, nil
}

func (r *Repository) ListStuckPending(ctx context.Context, olderThan time.Time) ([]*payrollDatamodel.SalaryPayment, error) {
	var dms []*payrollDatamodel.SalaryPayment
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", payroll.StatusPending, olderThan).
		Order("created_at ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return dms, nil
}
