package attendance

import (
	"errors"
	"time"

	attendanceDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/attendance"
)

// Attendance is the internal domain model for one employee work day.
type Attendance struct {
	ID         int64      `json:"id"`
	EmployeeID string     `json:"employee_id"`
	WorkDate   time.Time  `json:"work_date"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNotCheckedIn     = errors.New("no open attendance for today")
)

func FromDataModel(a *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		WorkDate:   a.WorkDate,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModelSlice(records []*attendanceDatamodel.Attendance) []*Attendance {
	result := make([]*Attendance, len(records))
	for i, a := range records {
		result[i] = FromDataModel(a)
	}
	return result
}
