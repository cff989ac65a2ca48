package payroll

import "time"

type SalaryPayment struct {
	ID            int64      `gorm:"primaryKey"`
	ReferenceID   string     `gorm:"column:reference_id;not null;uniqueIndex"`
	EmployeeID    string     `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount        int64      `gorm:"column:amount;not null"`
	Bonus         int64      `gorm:"column:bonus;default:0"`
	Deductions    int64      `gorm:"column:deductions;default:0"`
	TotalAmount   int64      `gorm:"column:total_amount;not null"`
	PaymentDate   time.Time  `gorm:"column:payment_date;type:date;not null"`
	PaymentMethod string     `gorm:"column:payment_method;not null"`
	BankAccount   *string    `gorm:"column:bank_account"`
	BankID        *int64     `gorm:"column:bank_id"`
	Status        string     `gorm:"column:status;default:pending"`
	Notes         *string    `gorm:"column:notes"`
	ProcessedBy   string     `gorm:"column:processed_by;type:uuid;not null"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;default:now()"`
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
