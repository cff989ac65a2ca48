package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/harisfebriyan12/kehadiran1/internal/attendance"
	attendanceDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/attendance"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, a *attendanceDatamodel.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) GetForDate(ctx context.Context, employeeID string, workDate time.Time) (*attendanceDatamodel.Attendance, error) {
	var dm attendanceDatamodel.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date = ?", employeeID, workDate).
		First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrNotCheckedIn
		}
		return nil, err
	}
	return &dm, nil
}

func (r *Repository) SetCheckOut(ctx context.Context, id int64, checkOut time.Time) error {
	result := r.db.WithContext(ctx).Model(&attendanceDatamodel.Attendance{}).
		Where("id = ? AND check_out IS NULL", id).
		Updates(map[string]interface{}{
			"check_out":  checkOut,
			"updated_at": checkOut,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return attendance.ErrNotCheckedIn
	}
	return nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*attendanceDatamodel.Attendance, error) {
	var dms []*attendanceDatamodel.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("work_date DESC").
		Limit(limit).
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return dms, nil
}

func (r *Repository) ListByDate(ctx context.Context, workDate time.Time) ([]*attendanceDatamodel.Attendance, error) {
	var dms []*attendanceDatamodel.Attendance
	err := r.db.WithContext(ctx).
		Where("work_date = ?", workDate).
		Order("check_in ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return dms, nil
}
