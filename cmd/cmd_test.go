package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"redactsync/internal/config"
	"redactsync/internal/core"
	"redactsync/internal/decrypt"
	"redactsync/internal/fhe"
	"redactsync/internal/http/handler"
	"redactsync/internal/http/handler/fake"
	"redactsync/internal/http/handler/middleware"
	"redactsync/internal/http/payload"
	"redactsync/internal/storage"
	"redactsync/pkg/jwt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Cmd", func() {
	Describe("readSnapshots", func() {
		var (
			ctx       context.Context
			snapshots *storage.Snapshots
		)

		BeforeEach(func() {
			ctx = context.Background()
			snapshots = storage.NewSnapshots(storage.NewMemory())
		})

		When("nothing was persisted", func() {
			It("should return an empty dump", func() {
				out, err := readSnapshots(ctx, snapshots)
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Claims).To(BeNil())
				Expect(out.Decryptions).To(BeNil())
				Expect(out.Tokens).To(BeNil())
			})
		})

		When("decryptions were persisted", func() {
			BeforeEach(func() {
				handle := fhe.HandleFromUint64(9)
				value := fhe.ZeroValue(fhe.Uint128)
				Expect(snapshots.Save(ctx, core.KeyDecryptions, []decrypt.Result{{
					Handle:  handle,
					Account: common.HexToAddress("0x1111111111111111111111111111111111111111"),
					Type:    fhe.Uint128,
					Value:   &value,
					State:   decrypt.StateSuccess,
				}})).To(Succeed())
			})

			It("should decode them", func() {
				out, err := readSnapshots(ctx, snapshots)
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Decryptions).To(HaveLen(1))
				Expect(out.Decryptions[0].Handle.String()).To(Equal("9"))
			})
		})
	})

	Describe("openKV", func() {
		It("should open the in-memory backend", func() {
			kv, err := openKV(config.BackendMemory, "", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(kv).To(BeAssignableToTypeOf(&storage.Memory{}))
		})
	})

	Describe("registerRoutes", func() {
		const account = "0x1111111111111111111111111111111111111111"

		var (
			mux      *http.ServeMux
			fakeSync *fake.SyncService
			service  *jwt.JWTService
		)

		issue := func(scopes ...string) string {
			signed, err := service.Issue(jwt.TokenInfo{Subject: "host", Scopes: scopes, Expiration: time.Hour})
			Expect(err).NotTo(HaveOccurred())
			return signed
		}

		serve := func(method, target, body, token string) int {
			req := httptest.NewRequest(method, target, strings.NewReader(body))
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w.Code
		}

		BeforeEach(func() {
			logger := zap.NewNop().Sugar()
			service = jwt.NewJWTService([]byte("s3cret"))
			fakeSync = new(fake.SyncService)
			h := handler.NewSyncHandler(logger, payload.Decoder{}, fakeSync, new(fake.NoticeHandler), new(fake.PermitStore))

			mux = http.NewServeMux()
			registerRoutes(mux, middleware.NewAuthMiddleware(logger, service), h)
		})

		It("should refuse anonymous reads of balances and decryptions", func() {
			Expect(serve(http.MethodGet, "/sync/1/"+account, "", "")).To(Equal(http.StatusUnauthorized))
			Expect(serve(http.MethodGet, "/sync/1/search/"+account, "", "")).To(Equal(http.StatusUnauthorized))
			Expect(serve(http.MethodPost, "/sync/decrypt", `{}`, "")).To(Equal(http.StatusUnauthorized))
			Expect(fakeSync.SnapshotCallCount()).To(BeZero())
			Expect(fakeSync.SearchArbitraryCallCount()).To(BeZero())
			Expect(fakeSync.RequestDecryptCallCount()).To(BeZero())
		})

		It("should serve snapshots to a read token", func() {
			Expect(serve(http.MethodGet, "/sync/1/"+account, "", issue(jwt.ScopeRead))).To(Equal(http.StatusOK))
			Expect(fakeSync.SnapshotCallCount()).To(Equal(1))
		})

		It("should refuse session changes to a read token", func() {
			body := `{"chain":1,"account":"` + account + `"}`
			Expect(serve(http.MethodPost, "/sync/session", body, issue(jwt.ScopeRead))).To(Equal(http.StatusUnauthorized))
			Expect(fakeSync.SetSessionCallCount()).To(BeZero())
		})
	})

	Describe("token", func() {
		It("should print a token the service accepts", func() {
			app := NewApp()
			var out bytes.Buffer
			app.Writer = &out

			Expect(app.Run([]string{"redactsync", "token", "--secret", "s3cret", "--subject", "host"})).To(Succeed())

			claims, err := jwt.NewJWTService([]byte("s3cret")).Authorize(strings.TrimSpace(out.String()), jwt.ScopeWrite)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Subject).To(Equal("host"))
			Expect(claims.Allows(jwt.ScopeRead)).To(BeTrue())
		})

		It("should fail without a secret", func() {
			app := NewApp()
			app.Writer = &bytes.Buffer{}
			Expect(app.Run([]string{"redactsync", "token", "--secret", ""})).NotTo(Succeed())
		})
	})
})
