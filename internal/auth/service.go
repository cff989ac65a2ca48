package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harisfebriyan12/kehadiran1/internal/session"
)

type UserRepository interface {
	GetPasswordForEmail(email string) (passwordHash string, userID string, isActive bool, err error)
	GetUserByID(userID string) (*User, error)
	CreateUserWithProfile(email, passwordHash, name, department, position string) (userID string, err error)
}

// SessionStore is the slice of the session registry the auth service needs.
type SessionStore interface {
	Register(ctx context.Context, sess session.Session) error
	Current(ctx context.Context, token string) *session.Session
	Invalidate(ctx context.Context, token string)
}

// Service is the main auth service with dependencies
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	sessions       SessionStore
	bcryptCost     int
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(userRepo UserRepository, tokenGen TokenGenerator, sessions SessionStore, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		sessions:       sessions,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Authenticate validates credentials, registers a session and returns tokens.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, userID, isActive, err := s.userRepo.GetPasswordForEmail(dto.Email)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}
	if !isActive {
		return AuthTokens{}, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, userID, dto.Email)
}

// Register creates a user with an employee profile and signs them in.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	passwordHash, err := s.HashPassword(dto.Password)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := s.userRepo.CreateUserWithProfile(dto.Email, passwordHash, dto.Name, dto.Department, dto.Position)
	if err != nil {
		return AuthTokens{}, err
	}

	s.logger.Info("registered new employee", "user_id", userID, "email", dto.Email)

	return s.issueTokens(ctx, userID, dto.Email)
}

// RefreshTokens validates a refresh token and issues a fresh pair plus a new
// session. The session behind the old access token is left to expire.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	return s.issueTokens(ctx, claims.UserID, claims.Email)
}

// ValidateAccessToken validates the token signature and checks the session
// registry. A token whose session is absent or revoked is rejected.
func (s *Service) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.tokenGenerator.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	if s.sessions.Current(ctx, claims.ID) == nil {
		return nil, ErrSessionRevoked
	}

	return claims, nil
}

// SignOut invalidates the session behind an access token. An expired token
// still signs out its session.
func (s *Service) SignOut(ctx context.Context, tokenString string) error {
	claims, err := s.tokenGenerator.ValidateAccessToken(tokenString)
	if err != nil && err != ErrTokenExpired {
		return err
	}
	if claims == nil {
		return ErrInvalidToken
	}

	s.sessions.Invalidate(ctx, claims.ID)
	return nil
}

// GetUser loads the principal behind a user id.
func (s *Service) GetUser(userID string) (*User, error) {
	return s.userRepo.GetUserByID(userID)
}

func (s *Service) issueTokens(ctx context.Context, userID, email string) (AuthTokens, error) {
	accessToken, jti, err := s.tokenGenerator.GenerateAccessToken(userID, email)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID, email)
	if err != nil {
		return AuthTokens{}, err
	}

	if err := s.sessions.Register(ctx, session.Session{
		Token:    jti,
		UserID:   userID,
		IssuedAt: time.Now(),
	}); err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
