package attendance

import "time"

type Attendance struct {
	ID         int64      `gorm:"primaryKey"`
	EmployeeID string     `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_employee_date,unique"`
	WorkDate   time.Time  `gorm:"column:work_date;type:date;not null;index:idx_attendance_employee_date,unique"`
	CheckIn    time.Time  `gorm:"column:check_in;not null"`
	CheckOut   *time.Time `gorm:"column:check_out"`
	Notes      *string    `gorm:"column:notes"`
	CreatedAt  time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Attendance) TableName() string {
	return "attendances"
}
