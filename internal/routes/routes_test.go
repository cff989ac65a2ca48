package routes

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
)

func TestRoutes(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Routes Module Suite")
}

var _ = ginkgo.Describe("StateFor", func() {
	ginkgo.It("maps no session to unauthenticated", func() {
		gomega.Expect(StateFor(false, role.Admin)).To(gomega.Equal(StateUnauthenticated))
	})

	ginkgo.It("maps an admin session to the admin state", func() {
		gomega.Expect(StateFor(true, role.Admin)).To(gomega.Equal(StateAuthenticatedAdmin))
	})

	ginkgo.It("maps an employee session to the employee state", func() {
		gomega.Expect(StateFor(true, role.Employee)).To(gomega.Equal(StateAuthenticatedEmployee))
	})

	ginkgo.It("never grants admin to an unresolved role", func() {
		gomega.Expect(StateFor(true, role.Unknown)).To(gomega.Equal(StateAuthenticatedEmployee))
	})
})

var _ = ginkgo.Describe("Decide", func() {
	var classification Classification

	ginkgo.BeforeEach(func() {
		classification = DefaultClassification()
	})

	ginkgo.Describe("unauthenticated visitors", func() {
		ginkgo.It("allows the public pages", func() {
			for _, path := range []string{PathLogin, PathRegister} {
				d := classification.Decide(StateUnauthenticated, path)
				gomega.Expect(d.Allow).To(gomega.BeTrue(), path)
				gomega.Expect(d.RedirectTo).To(gomega.BeEmpty(), path)
			}
		})

		ginkgo.It("redirects every protected page to the login page", func() {
			for _, path := range []string{PathDashboard, PathHistory, PathAdmin, PathAdminSalaryPayment} {
				d := classification.Decide(StateUnauthenticated, path)
				gomega.Expect(d.Allow).To(gomega.BeFalse(), path)
				gomega.Expect(d.RedirectTo).To(gomega.Equal(PathLogin), path)
			}
		})
	})

	ginkgo.Describe("authenticated employees", func() {
		ginkgo.It("allows the employee pages", func() {
			for _, path := range []string{PathDashboard, PathProfileSetup, PathProfileEditor, PathHistory} {
				d := classification.Decide(StateAuthenticatedEmployee, path)
				gomega.Expect(d.Allow).To(gomega.BeTrue(), path)
			}
		})

		ginkgo.It("bounces admin pages to the dashboard, not the login page", func() {
			for _, path := range []string{PathAdmin, PathAdminUsers, PathAdminSalaryPayment, PathAdminAttendance} {
				d := classification.Decide(StateAuthenticatedEmployee, path)
				gomega.Expect(d.Allow).To(gomega.BeFalse(), path)
				gomega.Expect(d.RedirectTo).To(gomega.Equal(PathDashboard), path)
			}
		})

		ginkgo.It("sends public pages to the dashboard", func() {
			d := classification.Decide(StateAuthenticatedEmployee, PathLogin)
			gomega.Expect(d.RedirectTo).To(gomega.Equal(PathDashboard))
		})
	})

	ginkgo.Describe("authenticated admins", func() {
		ginkgo.It("allows both admin and employee pages", func() {
			for _, path := range []string{PathAdmin, PathAdminSalaryPayment, PathDashboard, PathHistory} {
				d := classification.Decide(StateAuthenticatedAdmin, path)
				gomega.Expect(d.Allow).To(gomega.BeTrue(), path)
			}
		})

		ginkgo.It("sends public pages to the admin landing", func() {
			d := classification.Decide(StateAuthenticatedAdmin, PathRegister)
			gomega.Expect(d.RedirectTo).To(gomega.Equal(PathAdmin))
		})
	})

	ginkgo.Describe("unclassified paths", func() {
		ginkgo.It("treats them exactly like the root path", func() {
			for _, state := range []AuthState{StateUnauthenticated, StateAuthenticatedEmployee, StateAuthenticatedAdmin} {
				rootDecision := classification.Decide(state, PathRoot)
				unknownDecision := classification.Decide(state, "/no-such-page")
				gomega.Expect(unknownDecision).To(gomega.Equal(rootDecision))
			}
		})

		ginkgo.It("lands each state on its home page", func() {
			gomega.Expect(classification.Decide(StateUnauthenticated, "/stray").RedirectTo).To(gomega.Equal(PathLogin))
			gomega.Expect(classification.Decide(StateAuthenticatedEmployee, "/stray").RedirectTo).To(gomega.Equal(PathDashboard))
			gomega.Expect(classification.Decide(StateAuthenticatedAdmin, "/stray").RedirectTo).To(gomega.Equal(PathAdmin))
		})
	})

	ginkgo.Describe("loading state", func() {
		ginkgo.It("suspends instead of redirecting", func() {
			d := classification.Decide(StateLoading, PathAdmin)
			gomega.Expect(d.Suspend).To(gomega.BeTrue())
			gomega.Expect(d.Allow).To(gomega.BeFalse())
			gomega.Expect(d.RedirectTo).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("path normalization", func() {
		ginkgo.It("ignores trailing slashes", func() {
			d := classification.Decide(StateAuthenticatedAdmin, PathAdmin+"/")
			gomega.Expect(d.Allow).To(gomega.BeTrue())
		})
	})
})

var _ = ginkgo.Describe("Landing", func() {
	ginkgo.It("is the admin panel for admins", func() {
		gomega.Expect(Landing(StateAuthenticatedAdmin)).To(gomega.Equal(PathAdmin))
	})

	ginkgo.It("is the dashboard for employees", func() {
		gomega.Expect(Landing(StateAuthenticatedEmployee)).To(gomega.Equal(PathDashboard))
	})

	ginkgo.It("is the login page otherwise", func() {
		gomega.Expect(Landing(StateUnauthenticated)).To(gomega.Equal(PathLogin))
	})
})
