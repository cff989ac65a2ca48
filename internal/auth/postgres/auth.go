package auth

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	profiledm "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/profile"
	userdm "github.com/harisfebriyan12/kehadiran1/internal/core/datamodel/user"
	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPasswordForEmail(email string) (string, string, bool, error) {
	var passwordHash string
	var userID string
	var isActive bool
	query := `SELECT id, password_hash, is_active FROM users WHERE email = ?`

	row := r.db.Raw(query, strings.ToLower(email)).Row()
	if err := row.Scan(&userID, &passwordHash, &isActive); err != nil {
		if err == sql.ErrNoRows {
			return "", "", false, auth.ErrInvalidCredentials
		}
		return "", "", false, err
	}
	return passwordHash, userID, isActive, nil
}

func (r *Repository) GetUserByID(userID string) (*auth.User, error) {
	var user auth.User
	var rawRole string

	query := `SELECT u.id, u.email, p.role
	          FROM users u
	          JOIN profiles p ON p.id = u.id
	          WHERE u.id = ? AND u.is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email, &rawRole); err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	user.Role = role.Parse(rawRole)
	return &user, nil
}

// CreateUserWithProfile inserts the user row and its employee profile in one
// transaction so a half-registered account can never exist.
func (r *Repository) CreateUserWithProfile(email, passwordHash, name, department, position string) (string, error) {
	id := uuid.New().String()
	now := time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		user := &userdm.User{
			ID:           id,
			Email:        strings.ToLower(email),
			PasswordHash: passwordHash,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		prof := &profiledm.Profile{
			ID:         id,
			Name:       name,
			Role:       string(role.Employee),
			Department: department,
			Position:   position,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return tx.Create(prof).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return "", auth.ErrEmailTaken
		}
		return "", err
	}

	return id, nil
}
