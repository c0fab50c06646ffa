package jwt_test

import (
	"redactsync/pkg/jwt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		now     time.Time
		signed  string
	)

	BeforeEach(func() {
		now = time.Unix(1_700_000_000, 0)
		jwt.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { jwt.TimeNow = time.Now })

		service = jwt.NewJWTService([]byte("secret"))

		var err error
		signed, err = service.Issue(jwt.TokenInfo{
			Subject:    "wallet-host",
			Scopes:     []string{jwt.ScopeWrite},
			Expiration: time.Hour,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate its own token", func() {
		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Subject).To(Equal("wallet-host"))
		Expect(claims.Allows(jwt.ScopeWrite)).To(BeTrue())
	})

	It("should reject an expired token", func() {
		now = now.Add(2 * time.Hour)
		_, err := service.Validate(signed)
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})

	It("should reject a token signed with another secret", func() {
		other := jwt.NewJWTService([]byte("other"))
		_, err := other.Validate(signed)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	Describe("Authorize", func() {
		It("should accept a granted scope", func() {
			_, err := service.Authorize(signed, jwt.ScopeWrite)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a missing scope", func() {
			readOnly, err := service.Issue(jwt.TokenInfo{Subject: "viewer", Expiration: time.Hour})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Authorize(readOnly, jwt.ScopeWrite)
			Expect(err).To(MatchError(jwt.ErrMissingScope))
		})
	})
})
