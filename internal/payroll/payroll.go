package payroll

import (
	"fmt"
	"strings"
	"time"

	payrollDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/payroll"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const (
	MethodTransfer = "transfer"
	MethodCash     = "cash"
)

// Payment is the internal domain model used by services and converters.
type Payment struct {
	ID            int64      `json:"id"`
	ReferenceID   string     `json:"reference_id"`
	EmployeeID    string     `json:"employee_id"`
	Amount        int64      `json:"amount"`
	Bonus         int64      `json:"bonus"`
	Deductions    int64      `json:"deductions"`
	TotalAmount   int64      `json:"total_amount"`
	PaymentDate   time.Time  `json:"payment_date"`
	PaymentMethod string     `json:"payment_method"`
	BankAccount   *string    `json:"bank_account,omitempty"`
	BankID        *int64     `json:"bank_id,omitempty"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes,omitempty"`
	ProcessedBy   string     `json:"processed_by"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Confirmation is the receipt shown to the admin after a payment completes.
type Confirmation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	HTML        string `json:"html"`
	ConfirmText string `json:"confirm_text"`
}

func ToDataModel(p *Payment) *payrollDatamodel.SalaryPayment {
	return &payrollDatamodel.SalaryPayment{
		ID:            p.ID,
		ReferenceID:   p.ReferenceID,
		EmployeeID:    p.EmployeeID,
		Amount:        p.Amount,
		Bonus:         p.Bonus,
		Deductions:    p.Deductions,
		TotalAmount:   p.TotalAmount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		BankAccount:   p.BankAccount,
		BankID:        p.BankID,
		Status:        p.Status,
		Notes:         p.Notes,
		ProcessedBy:   p.ProcessedBy,
		CompletedAt:   p.CompletedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromDataModel(p *payrollDatamodel.SalaryPayment) *Payment {
	return &Payment{
		ID:            p.ID,
		ReferenceID:   p.ReferenceID,
		EmployeeID:    p.EmployeeID,
		Amount:        p.Amount,
		Bonus:         p.Bonus,
		Deductions:    p.Deductions,
		TotalAmount:   p.TotalAmount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		BankAccount:   p.BankAccount,
		BankID:        p.BankID,
		Status:        p.Status,
		Notes:         p.Notes,
		ProcessedBy:   p.ProcessedBy,
		CompletedAt:   p.CompletedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromDataModelSlice(payments []*payrollDatamodel.SalaryPayment) []*Payment {
	result := make([]*Payment, len(payments))
	for i, p := range payments {
		result[i] = FromDataModel(p)
	}
	return result
}

// FormatIDR renders an amount as Indonesian rupiah with dot separators and no
// decimals, e.g. "Rp 5.300.000".
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

func methodLabel(method string) string {
	if method == MethodTransfer {
		return "Transfer Bank"
	}
	return "Tunai"
}

// BuildConfirmation assembles the success receipt. The bank line only appears
// for transfer payments with a resolved bank.
func BuildConfirmation(employeeName string, totalAmount int64, paymentDate time.Time, method, bankName string) Confirmation {
	var b strings.Builder
	b.WriteString(`<div class="text-left">`)
	fmt.Fprintf(&b, `<p class="mb-2"><strong>Karyawan:</strong> %s</p>`, employeeName)
	fmt.Fprintf(&b, `<p class="mb-2"><strong>Total Dibayar:</strong> %s</p>`, FormatIDR(totalAmount))
	fmt.Fprintf(&b, `<p class="mb-2"><strong>Tanggal:</strong> %d/%d/%d</p>`, paymentDate.Day(), int(paymentDate.Month()), paymentDate.Year())
	fmt.Fprintf(&b, `<p class="mb-2"><strong>Metode:</strong> %s</p>`, methodLabel(method))
	if method == MethodTransfer && bankName != "" {
		fmt.Fprintf(&b, `<p class="mb-2"><strong>Bank:</strong> %s</p>`, bankName)
	}
	b.WriteString(`</div>`)

	return Confirmation{
		Icon:        "success",
		Title:       "Pembayaran Gaji Berhasil",
		HTML:        b.String(),
		ConfirmText: "OK",
	}
}
