package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"redactsync/internal/fhe"
	"redactsync/internal/oracle"
	"time"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		srv      *httptest.Server
		client   *oracle.Client
		account  common.Address
		received map[string]string
		reply    string
	)

	BeforeEach(func() {
		account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		received = nil
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.URL.Path).To(Equal("/unseal"))
			Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
			_, _ = w.Write([]byte(reply))
		}))
		client = oracle.NewClient(srv.URL+"/", time.Second)
	})

	AfterEach(func() {
		srv.Close()
	})

	It("should refuse accounts without a permit", func() {
		Expect(client.Ready(account)).To(BeFalse())
		_, err := client.Unseal(context.Background(), fhe.HandleFromUint64(5), fhe.Uint128, account)
		Expect(err).To(MatchError(oracle.ErrNoPermit))
	})

	When("a permit is registered", func() {
		BeforeEach(func() {
			client.SetPermit(account, "permit-1")
		})

		It("should unseal the value", func() {
			reply = `{"success":true,"data":"1234"}`
			v, err := client.Unseal(context.Background(), fhe.HandleFromUint64(5), fhe.Uint128, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Uint().Int64()).To(Equal(int64(1234)))

			Expect(received["ctHash"]).To(Equal("5"))
			Expect(received["utype"]).To(Equal("uint128"))
			Expect(received["permit"]).To(Equal("permit-1"))
		})

		It("should surface oracle errors", func() {
			reply = `{"success":false,"error":"permit expired"}`
			_, err := client.Unseal(context.Background(), fhe.HandleFromUint64(5), fhe.Uint128, account)
			Expect(err).To(MatchError(oracle.ErrUnsealFailed))
			Expect(err.Error()).To(ContainSubstring("permit expired"))
		})

		It("should reject malformed data", func() {
			reply = `{"success":true,"data":"not-a-number"}`
			_, err := client.Unseal(context.Background(), fhe.HandleFromUint64(5), fhe.Uint128, account)
			Expect(err).To(MatchError(oracle.ErrInvalidAnswer))
		})

		It("should forget a removed permit", func() {
			client.RemovePermit(account)
			Expect(client.Ready(account)).To(BeFalse())
		})
	})
})
