package session_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/harisfebriyan12/kehadiran1/internal/session"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Session Store Suite")
}

var _ = Describe("Store", func() {
	var (
		srv    *miniredis.Miniredis
		client *redis.Client
		store  *session.Store
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		srv, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())

		client = redis.NewClient(&redis.Options{Addr: srv.Addr()})
		store = session.NewStore(client, time.Hour, slog.Default())
		ctx = context.Background()
	})

	AfterEach(func() {
		store.Close()
		client.Close()
		srv.Close()
	})

	Describe("Register and Current", func() {
		It("resolves a registered session", func() {
			err := store.Register(ctx, session.Session{Token: "tok-1", UserID: "user-1"})
			Expect(err).NotTo(HaveOccurred())

			sess := store.Current(ctx, "tok-1")
			Expect(sess).NotTo(BeNil())
			Expect(sess.UserID).To(Equal("user-1"))
		})

		It("rejects a session without token or user id", func() {
			Expect(store.Register(ctx, session.Session{Token: "", UserID: "u"})).To(HaveOccurred())
			Expect(store.Register(ctx, session.Session{Token: "t", UserID: ""})).To(HaveOccurred())
		})

		It("treats an unknown token as no session", func() {
			Expect(store.Current(ctx, "never-registered")).To(BeNil())
		})

		It("treats an expired session as no session", func() {
			err := store.Register(ctx, session.Session{Token: "tok-2", UserID: "user-2"})
			Expect(err).NotTo(HaveOccurred())

			srv.FastForward(2 * time.Hour)

			Expect(store.Current(ctx, "tok-2")).To(BeNil())
		})

		It("treats a lookup error as no session", func() {
			err := store.Register(ctx, session.Session{Token: "tok-3", UserID: "user-3"})
			Expect(err).NotTo(HaveOccurred())

			srv.SetError("backend unavailable")

			Expect(store.Current(ctx, "tok-3")).To(BeNil())
		})
	})

	Describe("Invalidate", func() {
		It("removes the session", func() {
			err := store.Register(ctx, session.Session{Token: "tok-4", UserID: "user-4"})
			Expect(err).NotTo(HaveOccurred())

			store.Invalidate(ctx, "tok-4")

			Expect(store.Current(ctx, "tok-4")).To(BeNil())
		})
	})

	Describe("Watch", func() {
		It("publishes login and logout transitions", func() {
			var events []session.AuthEvent
			cancel := store.Watch(func(ev session.AuthEvent) {
				events = append(events, ev)
			})
			defer cancel()

			err := store.Register(ctx, session.Session{Token: "tok-5", UserID: "user-5"})
			Expect(err).NotTo(HaveOccurred())
			store.Invalidate(ctx, "tok-5")

			Expect(events).To(HaveLen(2))
			Expect(events[0].Type).To(Equal(session.EventLogin))
			Expect(events[0].UserID).To(Equal("user-5"))
			Expect(events[1].Type).To(Equal(session.EventLogout))
		})

		It("never invokes a cancelled subscription", func() {
			calls := 0
			cancel := store.Watch(func(session.AuthEvent) { calls++ })
			cancel()

			err := store.Register(ctx, session.Session{Token: "tok-6", UserID: "user-6"})
			Expect(err).NotTo(HaveOccurred())

			Expect(calls).To(BeZero())
		})

		It("never invokes any subscription after Close", func() {
			calls := 0
			store.Watch(func(session.AuthEvent) { calls++ })
			store.Close()

			err := store.Register(ctx, session.Session{Token: "tok-7", UserID: "user-7"})
			Expect(err).NotTo(HaveOccurred())

			Expect(calls).To(BeZero())
		})
	})
})
