package profile

import "time"

// Profile shares its primary key with the users row it belongs to.
type Profile struct {
	ID                string     `gorm:"primaryKey;type:uuid"`
	Name              string     `gorm:"column:name;not null"`
	Role              string     `gorm:"column:role;default:employee"`
	Department        string     `gorm:"column:department"`
	Position          string     `gorm:"column:position"`
	Salary            int64      `gorm:"column:salary;default:0"`
	BankID            *int64     `gorm:"column:bank_id"`
	BankAccount       *string    `gorm:"column:bank_account"`
	LastSalaryPayment *time.Time `gorm:"column:last_salary_payment;type:date"`
	CreatedAt         time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Profile) TableName() string {
	return "profiles"
}
