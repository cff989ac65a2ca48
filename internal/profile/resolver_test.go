package profile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
	"github.com/harisfebriyan12/kehadiran1/internal/session"
)

func TestProfile(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Profile Module Suite")
}

// Mock RoleRepository for testing
type mockRoleRepository struct {
	mu          sync.Mutex
	roles       map[string]string
	calls       int
	returnError error
	// when set, the lookup blocks until released
	block chan struct{}
}

func newMockRoleRepository() *mockRoleRepository {
	return &mockRoleRepository{
		roles: map[string]string{
			"admin-1":    "admin",
			"employee-1": "employee",
		},
	}
}

func (m *mockRoleRepository) GetRole(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	err := m.returnError
	role, ok := m.roles[userID]
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("profile not found")
	}
	return role, nil
}

func (m *mockRoleRepository) setError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnError = err
}

func (m *mockRoleRepository) setRole(userID, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[userID] = value
}

func (m *mockRoleRepository) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ = ginkgo.Describe("Resolver", func() {
	var (
		repo     *mockRoleRepository
		resolver *Resolver
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		repo = newMockRoleRepository()
		resolver = NewResolver(repo, slog.Default())
		ctx = context.Background()
	})

	ginkgo.Describe("ResolveRole", func() {
		ginkgo.It("resolves the stored role", func() {
			gomega.Expect(resolver.ResolveRole(ctx, "admin-1")).To(gomega.Equal(role.Admin))
			gomega.Expect(resolver.ResolveRole(ctx, "employee-1")).To(gomega.Equal(role.Employee))
		})

		ginkgo.It("treats any non-admin value as employee", func() {
			repo.setRole("odd-1", "supervisor")
			gomega.Expect(resolver.ResolveRole(ctx, "odd-1")).To(gomega.Equal(role.Employee))
		})

		ginkgo.It("resolves a lookup failure to the unknown role", func() {
			repo.setError(errors.New("connection refused"))
			gomega.Expect(resolver.ResolveRole(ctx, "admin-1")).To(gomega.Equal(role.Unknown))
		})

		ginkgo.It("never caches the unknown role", func() {
			repo.setError(errors.New("connection refused"))
			gomega.Expect(resolver.ResolveRole(ctx, "admin-1")).To(gomega.Equal(role.Unknown))

			repo.setError(nil)
			gomega.Expect(resolver.ResolveRole(ctx, "admin-1")).To(gomega.Equal(role.Admin))
		})

		ginkgo.It("returns the unknown role for an empty user id", func() {
			gomega.Expect(resolver.ResolveRole(ctx, "")).To(gomega.Equal(role.Unknown))
		})

		ginkgo.It("serves repeat lookups from the cache", func() {
			resolver.ResolveRole(ctx, "admin-1")
			resolver.ResolveRole(ctx, "admin-1")
			gomega.Expect(repo.callCount()).To(gomega.Equal(1))
		})
	})

	ginkgo.Describe("stale resolutions", func() {
		ginkgo.It("drops a slow lookup that finishes after a newer one", func() {
			release := make(chan struct{})
			repo.mu.Lock()
			repo.block = release
			repo.mu.Unlock()

			slowDone := make(chan role.Role, 1)
			go func() {
				slowDone <- resolver.Refresh(ctx, "admin-1")
			}()

			// wait until the slow lookup is in flight
			gomega.Eventually(repo.callCount).Should(gomega.Equal(1))

			// a newer resolution starts and finishes while the first hangs
			repo.mu.Lock()
			repo.block = nil
			repo.roles["admin-1"] = "employee"
			repo.mu.Unlock()
			gomega.Expect(resolver.Refresh(ctx, "admin-1")).To(gomega.Equal(role.Employee))

			// releasing the stale lookup must not overwrite the newer role
			close(release)
			gomega.Eventually(slowDone).Should(gomega.Receive(gomega.Equal(role.Employee)))
			gomega.Expect(resolver.ResolveRole(ctx, "admin-1")).To(gomega.Equal(role.Employee))
		})
	})

	ginkgo.Describe("auth events", func() {
		ginkgo.It("drops the cached role on a transition", func() {
			resolver.ResolveRole(ctx, "admin-1")
			gomega.Expect(repo.callCount()).To(gomega.Equal(1))

			resolver.HandleAuthEvent(session.AuthEvent{Type: session.EventLogout, UserID: "admin-1"})

			resolver.ResolveRole(ctx, "admin-1")
			gomega.Expect(repo.callCount()).To(gomega.Equal(2))
		})

		ginkgo.It("ignores events without a user id", func() {
			resolver.ResolveRole(ctx, "admin-1")
			resolver.HandleAuthEvent(session.AuthEvent{Type: session.EventLogout})
			resolver.ResolveRole(ctx, "admin-1")
			gomega.Expect(repo.callCount()).To(gomega.Equal(1))
		})
	})
})
