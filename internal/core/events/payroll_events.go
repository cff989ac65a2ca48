package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeSalaryPaymentCompleted = "salary_payment.completed"
	EventTypeSalaryPaymentStuck     = "salary_payment.stuck"
)

type SalaryPaymentCompletedEvent struct {
	BaseEvent
	PaymentID   int64  `json:"payment_id"`
	ReferenceID string `json:"reference_id"`
	EmployeeID  string `json:"employee_id"`
	TotalAmount int64  `json:"total_amount"`
	ProcessedBy string `json:"processed_by"`
}

func NewSalaryPaymentCompletedEvent(paymentID int64, referenceID, employeeID string, totalAmount int64, processedBy string) *SalaryPaymentCompletedEvent {
	return &SalaryPaymentCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSalaryPaymentCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id":   paymentID,
				"reference_id": referenceID,
				"employee_id":  employeeID,
				"total_amount": totalAmount,
				"processed_by": processedBy,
			},
		},
		PaymentID:   paymentID,
		ReferenceID: referenceID,
		EmployeeID:  employeeID,
		TotalAmount: totalAmount,
		ProcessedBy: processedBy,
	}
}

// SalaryPaymentStuckEvent marks a payment that was inserted but never
// reached completed status, so the reconciler can re-drive it.
type SalaryPaymentStuckEvent struct {
	BaseEvent
	PaymentID   int64  `json:"payment_id"`
	ReferenceID string `json:"reference_id"`
	EmployeeID  string `json:"employee_id"`
	Reason      string `json:"reason"`
}

func NewSalaryPaymentStuckEvent(paymentID int64, referenceID, employeeID, reason string) *SalaryPaymentStuckEvent {
	return &SalaryPaymentStuckEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSalaryPaymentStuck,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id":   paymentID,
				"reference_id": referenceID,
				"employee_id":  employeeID,
				"reason":       reason,
			},
		},
		PaymentID:   paymentID,
		ReferenceID: referenceID,
		EmployeeID:  employeeID,
		Reason:      reason,
	}
}
