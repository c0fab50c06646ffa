package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"redactsync/internal/http/handler/middleware"
	"redactsync/pkg/jwt"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type stubValidator struct {
	err   error
	scope string
}

func (s *stubValidator) Authorize(_ string, scope string) (*jwt.Claims, error) {
	s.scope = scope
	if s.err != nil {
		return nil, s.err
	}
	return &jwt.Claims{Scopes: []string{scope}}, nil
}

var _ = Describe("Middleware", func() {
	var (
		w      *httptest.ResponseRecorder
		req    *http.Request
		seenID string
		called bool
		next   http.HandlerFunc
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/sync/1/0x1111111111111111111111111111111111111111", nil)
		seenID = ""
		called = false
		next = func(w http.ResponseWriter, r *http.Request) {
			called = true
			seenID = middleware.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			_, err := uuid.Parse(seenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("should keep a valid incoming id", func() {
			id := uuid.NewString()
			req.Header.Set(middleware.RequestIDHeader, id)
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			Expect(seenID).To(Equal(id))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)
			Expect(called).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Authorize", func() {
		var validator *stubValidator

		BeforeEach(func() {
			validator = &stubValidator{}
		})

		JustBeforeEach(func() {
			middleware.NewAuthMiddleware(zap.NewNop().Sugar(), validator).Authorize(jwt.ScopeWrite, next)(w, req)
		})

		When("no token is sent", func() {
			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(called).To(BeFalse())
			})
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer token")
			})

			It("should call the next handler", func() {
				Expect(called).To(BeTrue())
				Expect(validator.scope).To(Equal(jwt.ScopeWrite))
			})
		})

		When("a read-only token is checked against both scopes", func() {
			var service *jwt.JWTService

			BeforeEach(func() {
				service = jwt.NewJWTService([]byte("secret"))
				signed, err := service.Issue(jwt.TokenInfo{
					Subject:    "viewer",
					Scopes:     []string{jwt.ScopeRead},
					Expiration: time.Hour,
				})
				Expect(err).NotTo(HaveOccurred())
				req.Header.Set("Authorization", "Bearer "+signed)
			})

			It("should allow reads only", func() {
				auth := middleware.NewAuthMiddleware(zap.NewNop().Sugar(), service)

				read := httptest.NewRecorder()
				auth.Authorize(jwt.ScopeRead, next)(read, req)
				Expect(read.Code).To(Equal(http.StatusTeapot))

				write := httptest.NewRecorder()
				auth.Authorize(jwt.ScopeWrite, next)(write, req)
				Expect(write.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer token")
				validator.err = errors.New("expired")
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(called).To(BeFalse())
			})
		})
	})
})
