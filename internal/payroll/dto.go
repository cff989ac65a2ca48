package payroll

import (
	"time"

	"github.com/harisfebriyan12/kehadiran1/internal"
	"github.com/harisfebriyan12/kehadiran1/internal/core/common/validation"
)

const dateLayout = "2006-01-02"

// PaymentRequest is the admin's submission shape for a salary payment.
type PaymentRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Amount        int64   `json:"amount"`
	Bonus         int64   `json:"bonus"`
	Deductions    int64   `json:"deductions"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	BankAccount   *string `json:"bank_account,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// TotalAmount is the disbursed total: base plus bonus minus deductions.
func (r PaymentRequest) TotalAmount() int64 {
	return r.Amount + r.Bonus - r.Deductions
}

// Validate rejects the request before anything is written. The total must be
// strictly positive and every component non-negative.
func (r PaymentRequest) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", r.EmployeeID).Required()
	v.Field("amount", r.Amount).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("bonus", r.Bonus).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("deductions", r.Deductions).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("payment_date", r.PaymentDate).Required().Custom(func(value interface{}) *internal.AppError {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return internal.NewValidationFieldError("payment_date", "payment_date must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		return nil
	})
	v.Field("payment_method", r.PaymentMethod).OneOf([]string{MethodTransfer, MethodCash}, internal.ErrCodeInvalidMethod)
	if err := v.Validate(); err != nil {
		return err
	}

	if r.TotalAmount() <= 0 {
		return internal.NewValidationError("Total pembayaran harus lebih dari 0", internal.ErrCodeInvalidAmount)
	}

	return nil
}

// ParsedDate returns the payment date; Validate must have passed first.
func (r PaymentRequest) ParsedDate() time.Time {
	t, _ := time.Parse(dateLayout, r.PaymentDate)
	return t
}

// PaymentResult is the handler response: the stored payment plus its receipt.
type PaymentResult struct {
	Payment      *Payment     `json:"payment"`
	Confirmation Confirmation `json:"confirmation"`
}
