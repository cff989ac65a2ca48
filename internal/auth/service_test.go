package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
	"github.com/harisfebriyan12/kehadiran1/internal/session"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users map[string]mockUser
}

type mockUser struct {
	id           string
	passwordHash string
	isActive     bool
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]mockUser)}
}

func (m *mockUserRepository) addUser(email, password, id string, active bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	m.users[email] = mockUser{id: id, passwordHash: string(hash), isActive: active}
}

func (m *mockUserRepository) GetPasswordForEmail(email string) (string, string, bool, error) {
	u, ok := m.users[email]
	if !ok {
		return "", "", false, ErrInvalidCredentials
	}
	return u.passwordHash, u.id, u.isActive, nil
}

func (m *mockUserRepository) GetUserByID(userID string) (*User, error) {
	for email, u := range m.users {
		if u.id == userID {
			return &User{ID: u.id, Email: email, Role: role.Employee}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (m *mockUserRepository) CreateUserWithProfile(email, passwordHash, name, department, position string) (string, error) {
	if _, ok := m.users[email]; ok {
		return "", ErrEmailTaken
	}
	id := "user-" + email
	m.users[email] = mockUser{id: id, passwordHash: passwordHash, isActive: true}
	return id, nil
}

// Mock SessionStore for testing
type mockSessionStore struct {
	sessions map[string]session.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]session.Session)}
}

func (m *mockSessionStore) Register(ctx context.Context, sess session.Session) error {
	m.sessions[sess.Token] = sess
	return nil
}

func (m *mockSessionStore) Current(ctx context.Context, token string) *session.Session {
	if sess, ok := m.sessions[token]; ok {
		return &sess
	}
	return nil
}

func (m *mockSessionStore) Invalidate(ctx context.Context, token string) {
	delete(m.sessions, token)
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		userRepo *mockUserRepository
		sessions *mockSessionStore
		tokenGen *JWTTokenGenerator
		service  *Service
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		userRepo = newMockUserRepository()
		userRepo.addUser("bima@mail.com", "password123", "user-1", true)
		userRepo.addUser("nonaktif@mail.com", "password123", "user-2", false)

		sessions = newMockSessionStore()
		tokenGen = NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		service = NewService(userRepo, tokenGen, sessions, bcrypt.MinCost, slog.Default())
		ctx = context.Background()
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("returns tokens and registers a session", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(tokens.AccessToken).NotTo(gomega.BeEmpty())
			gomega.Expect(tokens.RefreshToken).NotTo(gomega.BeEmpty())

			claims, err := tokenGen.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(claims.UserID).To(gomega.Equal("user-1"))

			sess := sessions.Current(ctx, claims.ID)
			gomega.Expect(sess).NotTo(gomega.BeNil())
			gomega.Expect(sess.UserID).To(gomega.Equal("user-1"))
		})

		ginkgo.It("rejects a wrong password", func() {
			_, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "salah"})
			gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			gomega.Expect(sessions.sessions).To(gomega.BeEmpty())
		})

		ginkgo.It("rejects an unknown email", func() {
			_, err := service.Authenticate(ctx, LoginDTO{Email: "ghost@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
		})

		ginkgo.It("rejects an inactive user", func() {
			_, err := service.Authenticate(ctx, LoginDTO{Email: "nonaktif@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.Equal(ErrUserInactive))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("creates the user and signs them in", func() {
			dto := RegisterDTO{
				Email:      "sari@mail.com",
				Password:   "password123",
				Name:       "Sari",
				Department: "Finance",
				Position:   "Staff Akuntansi",
			}
			tokens, err := service.Register(ctx, dto)
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(tokens.AccessToken).NotTo(gomega.BeEmpty())
			gomega.Expect(sessions.sessions).To(gomega.HaveLen(1))

			_, err = service.Authenticate(ctx, LoginDTO{Email: "sari@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())
		})

		ginkgo.It("rejects a taken email", func() {
			dto := RegisterDTO{Email: "bima@mail.com", Password: "password123", Name: "Bima"}
			_, err := service.Register(ctx, dto)
			gomega.Expect(err).To(gomega.Equal(ErrEmailTaken))
		})

		ginkgo.It("rejects a short password", func() {
			dto := RegisterDTO{Email: "baru@mail.com", Password: "abc", Name: "Baru"}
			_, err := service.Register(ctx, dto)
			gomega.Expect(err).NotTo(gomega.BeNil())
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("rejects a token whose session was revoked", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())

			_, err = service.ValidateAccessToken(ctx, tokens.AccessToken)
			gomega.Expect(err).To(gomega.BeNil())

			claims, err := tokenGen.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).To(gomega.BeNil())
			sessions.Invalidate(ctx, claims.ID)

			_, err = service.ValidateAccessToken(ctx, tokens.AccessToken)
			gomega.Expect(err).To(gomega.Equal(ErrSessionRevoked))
		})

		ginkgo.It("rejects a garbage token", func() {
			_, err := service.ValidateAccessToken(ctx, "not-a-token")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("SignOut", func() {
		ginkgo.It("invalidates the session behind the token", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())

			gomega.Expect(service.SignOut(ctx, tokens.AccessToken)).To(gomega.Succeed())

			_, err = service.ValidateAccessToken(ctx, tokens.AccessToken)
			gomega.Expect(err).To(gomega.Equal(ErrSessionRevoked))
		})

		ginkgo.It("signs out an already expired token", func() {
			expiredGen := NewJWTTokenGenerator("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)
			expiredService := NewService(userRepo, expiredGen, sessions, bcrypt.MinCost, slog.Default())

			tokens, err := expiredService.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(sessions.sessions).To(gomega.HaveLen(1))

			gomega.Expect(expiredService.SignOut(ctx, tokens.AccessToken)).To(gomega.Succeed())
			gomega.Expect(sessions.sessions).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("issues a fresh pair with its own session", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())

			refreshed, err := service.RefreshTokens(ctx, tokens.RefreshToken)
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(refreshed.AccessToken).NotTo(gomega.Equal(tokens.AccessToken))
			gomega.Expect(sessions.sessions).To(gomega.HaveLen(2))
		})

		ginkgo.It("rejects an access token used as a refresh token", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "bima@mail.com", Password: "password123"})
			gomega.Expect(err).To(gomega.BeNil())

			_, err = service.RefreshTokens(ctx, tokens.AccessToken)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})
})
