package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

// SessionCookieName carries the access token for page navigation, where no
// Authorization header is available.
const SessionCookieName = "kehadiran_session"

// User is the authenticated principal stored in the request context.
type User struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Role  role.Role `json:"role"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims represents JWT token claims. The registered ID (jti) doubles as the
// session token in the session store.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates signed tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID, email string) (token string, jti string, err error)
	GenerateRefreshToken(userID, email string) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionRevoked     = errors.New("session revoked")
)

// NewJWTTokenGenerator creates a new JWT token generator.
func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// GenerateAccessToken creates a new access token and returns its jti.
func (j *JWTTokenGenerator) GenerateAccessToken(userID, email string) (string, string, error) {
	now := time.Now()
	jti := uuid.New().String()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	return tokenString, jti, nil
}

// GenerateRefreshToken creates a new refresh token.
func (j *JWTTokenGenerator) GenerateRefreshToken(userID, email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.RefreshTokenSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (j *JWTTokenGenerator) ValidateAccessToken(tokenString string) (*Claims, error) {
	return validate(tokenString, j.AccessTokenSecret)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (j *JWTTokenGenerator) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validate(tokenString, j.RefreshTokenSecret)
}

func validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// expired tokens keep their claims so sign-out can still find the session
			if token != nil {
				if claims, ok := token.Claims.(*Claims); ok {
					return claims, ErrTokenExpired
				}
			}
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
