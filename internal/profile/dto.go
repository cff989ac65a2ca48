package profile

import (
	"github.com/harisfebriyan12/kehadiran1/internal"
	"github.com/harisfebriyan12/kehadiran1/internal/core/common/validation"
	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

// UpdateProfileDTO is what an employee may change on their own profile. Role
// and salary are deliberately absent.
type UpdateProfileDTO struct {
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	BankID      *int64  `json:"bank_id"`
	BankAccount *string `json:"bank_account"`
}

// AdminUpdateProfileDTO is the admin shape, it additionally covers role and
// salary.
type AdminUpdateProfileDTO struct {
	UpdateProfileDTO
	Role   string `json:"role"`
	Salary int64  `json:"salary"`
}

func (d UpdateProfileDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(120)
	v.Field("department", d.Department).MaxLength(120)
	v.Field("position", d.Position).MaxLength(120)
	return v.Validate()
}

func (d AdminUpdateProfileDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(120)
	v.Field("role", d.Role).OneOf([]string{string(role.Admin), string(role.Employee)}, internal.ErrCodeValidationFailed)
	v.Field("salary", d.Salary).NonNegative(internal.ErrCodeInvalidAmount)
	return v.Validate()
}
