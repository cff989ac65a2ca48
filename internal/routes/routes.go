package routes

import (
	"strings"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

// Capability is the access tier a view path requires.
type Capability string

const (
	CapabilityPublic   Capability = "public"
	CapabilityEmployee Capability = "employee"
	CapabilityAdmin    Capability = "admin"
)

// AuthState is the authorization snapshot the guard decides against. It is
// recomputed from (session, role) on every navigation; a cached decision is
// never reused across requests.
type AuthState int

const (
	StateLoading AuthState = iota
	StateUnauthenticated
	StateAuthenticatedEmployee
	StateAuthenticatedAdmin
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticatedEmployee:
		return "authenticated_employee"
	case StateAuthenticatedAdmin:
		return "authenticated_admin"
	}
	return "unknown"
}

// StateFor maps a session/role pair onto an AuthState. An unresolved role
// downgrades to employee: it never grants admin capability.
func StateFor(hasSession bool, r role.Role) AuthState {
	if !hasSession {
		return StateUnauthenticated
	}
	if r.IsAdmin() {
		return StateAuthenticatedAdmin
	}
	return StateAuthenticatedEmployee
}

const (
	PathLogin    = "/login"
	PathRegister = "/register"

	PathDashboard     = "/dashboard"
	PathProfileSetup  = "/profile-setup"
	PathProfileEditor = "/profile-editor"
	PathHistory       = "/history"

	PathAdmin              = "/admin"
	PathAdminUsers         = "/admin/users"
	PathAdminDepartments   = "/admin/departments"
	PathAdminPositions     = "/admin/positions"
	PathAdminSalaryPayment = "/admin/salary-payment"
	PathAdminLocation      = "/admin/location"
	PathAdminBank          = "/admin/bank"
	PathAdminAttendance    = "/admin/attendance"

	PathRoot = "/"
)

// Classification maps each view path to the capability it requires. Every
// routable path has exactly one entry; anything absent falls back to the
// "/" redirect policy.
type Classification map[string]Capability

func DefaultClassification() Classification {
	return Classification{
		PathLogin:    CapabilityPublic,
		PathRegister: CapabilityPublic,

		PathDashboard:     CapabilityEmployee,
		PathProfileSetup:  CapabilityEmployee,
		PathProfileEditor: CapabilityEmployee,
		PathHistory:       CapabilityEmployee,

		PathAdmin:              CapabilityAdmin,
		PathAdminUsers:         CapabilityAdmin,
		PathAdminDepartments:   CapabilityAdmin,
		PathAdminPositions:     CapabilityAdmin,
		PathAdminSalaryPayment: CapabilityAdmin,
		PathAdminLocation:      CapabilityAdmin,
		PathAdminBank:          CapabilityAdmin,
		PathAdminAttendance:    CapabilityAdmin,
	}
}

// Decision is the guard verdict for one (state, path) pair. Suspend means
// the state is still loading and no navigation decision may be made yet.
type Decision struct {
	Allow      bool
	Suspend    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Landing is the default landing path for a state: admins land on the admin
// panel, everyone else on the employee dashboard, absent sessions on login.
func Landing(state AuthState) string {
	switch state {
	case StateAuthenticatedAdmin:
		return PathAdmin
	case StateAuthenticatedEmployee:
		return PathDashboard
	default:
		return PathLogin
	}
}

// Decide maps an authorization snapshot and a requested path to a guard
// verdict. It is pure: same inputs, same verdict, no I/O. Unknown paths and
// "/" share one redirect policy so a bare not-found page is never rendered.
func (c Classification) Decide(state AuthState, path string) Decision {
	if state == StateLoading {
		return Decision{Suspend: true}
	}

	path = normalize(path)

	capability, known := c[path]
	if !known || path == PathRoot {
		return redirect(Landing(state))
	}

	switch state {
	case StateUnauthenticated:
		if capability == CapabilityPublic {
			return allow()
		}
		return redirect(PathLogin)

	case StateAuthenticatedEmployee:
		switch capability {
		case CapabilityPublic:
			return redirect(PathDashboard)
		case CapabilityAdmin:
			return redirect(PathDashboard)
		default:
			return allow()
		}

	case StateAuthenticatedAdmin:
		if capability == CapabilityPublic {
			return redirect(PathAdmin)
		}
		return allow()
	}

	return redirect(Landing(state))
}

func normalize(path string) string {
	if path == "" {
		return PathRoot
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return PathRoot
	}
	return path
}
