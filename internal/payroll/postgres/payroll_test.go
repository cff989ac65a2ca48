package payroll_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	payrollDatamodel "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/payroll"
	"github.com/harisfebriyan12/kehadiran1/internal/payroll"
	payrollPostgres "github.com/harisfebriyan12/kehadiran1/internal/payroll/postgres"
)

func TestPayrollPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Payroll Postgres Suite")
}

// SQLiteSalaryPayment is a SQLite-compatible model for testing
type SQLiteSalaryPayment struct {
	ID            int64      `gorm:"primaryKey"`
	ReferenceID   string     `gorm:"column:reference_id;uniqueIndex;not null"`
	EmployeeID    string     `gorm:"column:employee_id;not null;index"`
	Amount        int64      `gorm:"column:amount;not null"`
	Bonus         int64      `gorm:"column:bonus;default:0"`
	Deductions    int64      `gorm:"column:deductions;default:0"`
	TotalAmount   int64      `gorm:"column:total_amount;not null"`
	PaymentDate   time.Time  `gorm:"column:payment_date;not null"`
	PaymentMethod string     `gorm:"column:payment_method;not null"`
	BankAccount   *string    `gorm:"column:bank_account"`
	BankID        *int64     `gorm:"column:bank_id"`
	Status        string     `gorm:"column:status;default:pending"`
	Notes         *string    `gorm:"column:notes"`
	ProcessedBy   string     `gorm:"column:processed_by;not null"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (SQLiteSalaryPayment) TableName() string {
	return "salary_payments"
}

var _ = Describe("Payroll PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *payrollPostgres.Repository
		ctx  context.Context
	)

	newRecord := func(employeeID, referenceID string) *payrollDatamodel.SalaryPayment {
		now := time.Now()
		return &payrollDatamodel.SalaryPayment{
			ReferenceID:   referenceID,
			EmployeeID:    employeeID,
			Amount:        5000000,
			Bonus:         500000,
			Deductions:    200000,
			TotalAmount:   5300000,
			PaymentDate:   time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
			PaymentMethod: payroll.MethodTransfer,
			Status:        payroll.StatusPending,
			ProcessedBy:   "admin-1",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteSalaryPayment{})
		Expect(err).NotTo(HaveOccurred())

		repo = payrollPostgres.NewRepository(db)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should persist a payment and assign an id", func() {
			record := newRecord("emp-1", "ref-1")
			err := repo.Create(ctx, record)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(BeNumerically(">", 0))
		})

		It("should reject a duplicate reference id", func() {
			Expect(repo.Create(ctx, newRecord("emp-1", "ref-1"))).To(Succeed())
			err := repo.Create(ctx, newRecord("emp-1", "ref-1"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByID", func() {
		It("should return the stored payment", func() {
			record := newRecord("emp-1", "ref-1")
			Expect(repo.Create(ctx, record)).To(Succeed())

			found, err := repo.GetByID(ctx, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ReferenceID).To(Equal("ref-1"))
			Expect(found.TotalAmount).To(Equal(int64(5300000)))
		})

		It("should return not found for a missing id", func() {
			_, err := repo.GetByID(ctx, 999)
			Expect(err).To(Equal(payroll.ErrRecordNotFound))
		})
	})

	Describe("MarkCompleted", func() {
		It("should flip a pending payment to completed", func() {
			record := newRecord("emp-1", "ref-1")
			Expect(repo.Create(ctx, record)).To(Succeed())

			completedAt := time.Now()
			Expect(repo.MarkCompleted(ctx, record.ID, completedAt)).To(Succeed())

			found, err := repo.GetByID(ctx, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(payroll.StatusCompleted))
			Expect(found.CompletedAt).NotTo(BeNil())
		})

		It("should refuse to complete the same payment twice", func() {
			record := newRecord("emp-1", "ref-1")
			Expect(repo.Create(ctx, record)).To(Succeed())
			Expect(repo.MarkCompleted(ctx, record.ID, time.Now())).To(Succeed())

			err := repo.MarkCompleted(ctx, record.ID, time.Now())
			Expect(err).To(Equal(payroll.ErrRecordNotFound))
		})
	})

	Describe("ListByEmployee", func() {
		It("should return payments newest first", func() {
			older := newRecord("emp-1", "ref-1")
			older.PaymentDate = time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)
			newer := newRecord("emp-1", "ref-2")
			other := newRecord("emp-2", "ref-3")

			Expect(repo.Create(ctx, older)).To(Succeed())
			Expect(repo.Create(ctx, newer)).To(Succeed())
			Expect(repo.Create(ctx, other)).To(Succeed())

			payments, err := repo.ListByEmployee(ctx, "emp-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(2))
			Expect(payments[0].ReferenceID).To(Equal("ref-2"))
			Expect(payments[1].ReferenceID).To(Equal("ref-1"))
		})
	})

	Describe("ListStuckPending", func() {
		It("should return only pending payments older than the cutoff", func() {
			stuck := newRecord("emp-1", "ref-1")
			stuck.CreatedAt = time.Now().Add(-10 * time.Minute)
			fresh := newRecord("emp-1", "ref-2")
			done := newRecord("emp-1", "ref-3")
			done.CreatedAt = time.Now().Add(-10 * time.Minute)

			Expect(repo.Create(ctx, stuck)).To(Succeed())
			Expect(repo.Create(ctx, fresh)).To(Succeed())
			Expect(repo.Create(ctx, done)).To(Succeed())
			Expect(repo.MarkCompleted(ctx, done.ID, time.Now())).To(Succeed())

			cutoff := time.Now().Add(-5 * time.Minute)
			records, err := repo.ListStuckPending(ctx, cutoff)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ReferenceID).To(Equal("ref-1"))
		})
	})
})
