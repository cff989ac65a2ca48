package bank

import (
	"errors"
	"time"

	bankDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/bank"
)

// BankInfo is the internal domain model for a supported bank.
type BankInfo struct {
	ID        int64     `json:"id"`
	BankName  string    `json:"bank_name"`
	BankCode  string    `json:"bank_code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("bank not found")

func FromDataModel(b *bankDatamodel.BankInfo) *BankInfo {
	return &BankInfo{
		ID:        b.ID,
		BankName:  b.BankName,
		BankCode:  b.BankCode,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromDataModelSlice(banks []*bankDatamodel.BankInfo) []*BankInfo {
	result := make([]*BankInfo, len(banks))
	for i, b := range banks {
		result[i] = FromDataModel(b)
	}
	return result
}
