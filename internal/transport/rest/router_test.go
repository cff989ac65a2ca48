package rest_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
	"github.com/harisfebriyan12/kehadiran1/internal/transport/rest"
)

func TestRest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transport REST Suite")
}

type stubAuthService struct {
	sessions map[string]*auth.Claims
}

func (s *stubAuthService) Authenticate(ctx context.Context, dto auth.LoginDTO) (auth.AuthTokens, error) {
	return auth.AuthTokens{}, auth.ErrInvalidCredentials
}

func (s *stubAuthService) Register(ctx context.Context, dto auth.RegisterDTO) (auth.AuthTokens, error) {
	return auth.AuthTokens{}, auth.ErrInvalidCredentials
}

func (s *stubAuthService) RefreshTokens(ctx context.Context, refreshToken string) (auth.AuthTokens, error) {
	return auth.AuthTokens{}, auth.ErrInvalidToken
}

func (s *stubAuthService) ValidateAccessToken(ctx context.Context, token string) (*auth.Claims, error) {
	if claims, ok := s.sessions[token]; ok {
		return claims, nil
	}
	return nil, auth.ErrInvalidToken
}

func (s *stubAuthService) SignOut(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type stubRoleResolver struct {
	roles map[string]role.Role
}

func (s *stubRoleResolver) ResolveRole(ctx context.Context, userID string) role.Role {
	return s.roles[userID]
}

var _ = Describe("Page Routing", func() {
	var router *chi.Mux

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		authSvc := &stubAuthService{
			sessions: map[string]*auth.Claims{
				"employee-token": {UserID: "employee-1"},
				"admin-token":    {UserID: "admin-1"},
			},
		}
		roles := &stubRoleResolver{
			roles: map[string]role.Role{
				"employee-1": role.Employee,
				"admin-1":    role.Admin,
			},
		}

		router = chi.NewRouter()
		rest.RegisterAllRoutes(router, nil, nil, rest.Handlers{
			Auth: auth.NewHandler(authSvc, roles),
		}, authSvc, roles, slogger)
	})

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should redirect the root path to login without a session", func() {
		w := get("/", "")
		Expect(w.Code).To(Equal(http.StatusSeeOther))
		Expect(w.Header().Get("Location")).To(Equal("/login"))
	})

	It("should redirect an unknown path exactly like the root path", func() {
		w := get("/no-such-page", "")
		Expect(w.Code).To(Equal(http.StatusSeeOther))
		Expect(w.Header().Get("Location")).To(Equal("/login"))
	})

	It("should land an unknown path on the dashboard for an employee session", func() {
		w := get("/no-such-page", "employee-token")
		Expect(w.Code).To(Equal(http.StatusSeeOther))
		Expect(w.Header().Get("Location")).To(Equal("/dashboard"))
	})

	It("should land an unknown path on the admin panel for an admin session", func() {
		w := get("/there/is/no/such/page", "admin-token")
		Expect(w.Code).To(Equal(http.StatusSeeOther))
		Expect(w.Header().Get("Location")).To(Equal("/admin"))
	})

	It("should serve the login shell without redirecting", func() {
		w := get("/login", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`data-page="login"`))
	})

	It("should bounce an employee off an admin page", func() {
		w := get("/admin/users", "employee-token")
		Expect(w.Code).To(Equal(http.StatusSeeOther))
		Expect(w.Header().Get("Location")).To(Equal("/dashboard"))
	})
})
