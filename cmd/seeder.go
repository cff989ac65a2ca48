package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"salary_payments", "attendances", "profiles", "users", "bank_info"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedBanks(db)

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUser(db, string(hash), "haris@mail.com", "Haris", "admin", "Manajemen", "HR Manager", 12000000)
		seedUser(db, string(hash), "bima@mail.com", "Bima", "employee", "Teknologi", "Backend Engineer", 8500000)
		seedUser(db, string(hash), "sari@mail.com", "Sari", "employee", "Keuangan", "Staff Akuntansi", 7000000)
	},
}

func seedBanks(db *gorm.DB) {
	banks := []struct {
		name string
		code string
	}{
		{"Bank BCA", "014"},
		{"Bank Mandiri", "008"},
		{"Bank BNI", "009"},
		{"Bank BRI", "002"},
	}

	for _, b := range banks {
		var exists int
		row := db.Raw("SELECT 1 FROM bank_info WHERE bank_name = ?", b.name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO bank_info (bank_name, bank_code, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())", b.name, b.code).Error; err != nil {
			log.Fatalf("failed to insert bank %s: %v", b.name, err)
		}
		fmt.Println("Seeded bank:", b.name)
	}
}

func seedUser(db *gorm.DB, passwordHash, email, name, role, department, position string, salary int64) {
	var exists int
	row := db.Raw("SELECT 1 FROM users WHERE email = ?", email).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("user already exists:", email)
		return
	}

	id := uuid.New().String()
	if err := db.Exec("INSERT INTO users (id, email, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", id, email, passwordHash).Error; err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	if err := db.Exec("INSERT INTO profiles (id, name, role, department, position, salary, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, now(), now())", id, name, role, department, position, salary).Error; err != nil {
		log.Fatalf("failed to insert profile %s: %v", email, err)
	}
	fmt.Printf("Seeded %s user: %s\n", role, email)
}
