package profile

import (
	"errors"
	"time"

	profileDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/profile"
	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

type Profile struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Role              role.Role  `json:"role"`
	Department        string     `json:"department"`
	Position          string     `json:"position"`
	Salary            int64      `json:"salary"`
	BankID            *int64     `json:"bank_id,omitempty"`
	BankAccount       *string    `json:"bank_account,omitempty"`
	LastSalaryPayment *time.Time `json:"last_salary_payment,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

var ErrNotFound = errors.New("profile not found")

func ToDataModel(p *Profile) *profileDatamodel.Profile {
	return &profileDatamodel.Profile{
		ID:                p.ID,
		Name:              p.Name,
		Role:              string(p.Role),
		Department:        p.Department,
		Position:          p.Position,
		Salary:            p.Salary,
		BankID:            p.BankID,
		BankAccount:       p.BankAccount,
		LastSalaryPayment: p.LastSalaryPayment,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromDataModel(p *profileDatamodel.Profile) *Profile {
	return &Profile{
		ID:                p.ID,
		Name:              p.Name,
		Role:              role.Parse(p.Role),
		Department:        p.Department,
		Position:          p.Position,
		Salary:            p.Salary,
		BankID:            p.BankID,
		BankAccount:       p.BankAccount,
		LastSalaryPayment: p.LastSalaryPayment,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromDataModelSlice(profiles []*profileDatamodel.Profile) []*Profile {
	result := make([]*Profile, len(profiles))
	for i, p := range profiles {
		result[i] = FromDataModel(p)
	}
	return result
}
