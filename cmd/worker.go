package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harisfebriyan12/kehadiran1/internal/bank"
	bankPostgres "github.com/harisfebriyan12/kehadiran1/internal/bank/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/core/events"
	"github.com/harisfebriyan12/kehadiran1/internal/payroll"
	payrollPostgres "github.com/harisfebriyan12/kehadiran1/internal/payroll/postgres"
	profilePostgres "github.com/harisfebriyan12/kehadiran1/internal/profile/postgres"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
	Long:  `Start and manage background workers, currently the salary payment reconciler.`,
}

// Payment reconciler command
var reconcileWorkerCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Start the salary payment reconciler",
	Long:  `Periodically re-drives salary payments that were inserted but never completed.`,
	Run: func(cmd *cobra.Command, args []string) {
		startReconcileWorker()
	},
}

var reconcileInterval time.Duration

func init() {
	reconcileWorkerCmd.Flags().DurationVar(&reconcileInterval, "interval", time.Minute, "how often to scan for stuck payments")
	workerCmd.AddCommand(reconcileWorkerCmd)
}

func startReconcileWorker() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	sqlDB, err := initDB(config.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize gorm: %v\n", err)
		os.Exit(1)
	}

	eventBus := events.NewEventBus(lg)
	eventBus.Subscribe(events.EventTypeSalaryPaymentCompleted, func(ctx context.Context, event events.Event) error {
		lg.Info("payment completed", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	eventBus.Subscribe(events.EventTypeSalaryPaymentStuck, func(ctx context.Context, event events.Event) error {
		lg.Warn("stuck payment detected", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})

	profileRepo := profilePostgres.NewRepository(gormDB)
	bankService := bank.NewService(bankPostgres.NewRepository(gormDB), lg)
	payrollService := payroll.NewService(payrollPostgres.NewRepository(gormDB), profileRepo, bankService, eventBus, lg)

	lg.Info("payment reconciler is running", "interval", reconcileInterval)

	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if _, err := payrollService.Reconcile(ctx); err != nil {
				lg.Error("reconciliation run failed", "error", err)
			}
			cancel()
		case sig := <-sigChan:
			lg.Info("received signal, shutting down reconciler", "signal", sig)
			if err := sqlDB.Close(); err != nil {
				lg.Error("database close error", "error", err)
			}
			return
		}
	}
}
