package bank

import "time"

type BankInfo struct {
	ID        int64     `gorm:"primaryKey"`
	BankName  string    `gorm:"column:bank_name;uniqueIndex;not null"`
	BankCode  string    `gorm:"column:bank_code"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (BankInfo) TableName() string {
	return "bank_info"
}
