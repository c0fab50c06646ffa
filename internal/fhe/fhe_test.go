package fhe_test

import (
	"encoding/json"
	"math/big"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handle", func() {
	It("should treat the zero value as the uninitialized sentinel", func() {
		Expect(fhe.Handle{}.IsZero()).To(BeTrue())
		Expect(fhe.HandleFromUint64(7).IsZero()).To(BeFalse())
	})

	It("should keep the full 256 bits through its text form", func() {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
		h, err := fhe.HandleFromBig(max)
		Expect(err).NotTo(HaveOccurred())

		text, err := h.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal(max.String()))

		var parsed fhe.Handle
		Expect(parsed.UnmarshalText(text)).To(Succeed())
		Expect(parsed).To(Equal(h))
		Expect(parsed.Big().Cmp(max)).To(BeZero())
	})

	It("should reject values wider than 256 bits", func() {
		_, err := fhe.HandleFromBig(new(big.Int).Lsh(big.NewInt(1), 256))
		Expect(err).To(MatchError(fhe.ErrHandleOverflow))
	})

	It("should work as a json map key", func() {
		in := map[fhe.Handle]int{fhe.HandleFromUint64(42): 1}
		data, err := json.Marshal(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`{"42":1}`))

		out := map[fhe.Handle]int{}
		Expect(json.Unmarshal(data, &out)).To(Succeed())
		Expect(out).To(Equal(in))
	})
})

var _ = Describe("Plaintext", func() {
	DescribeTable("zero values",
		func(t fhe.ValueType, expected string) {
			Expect(fhe.ZeroValue(t).String()).To(Equal(expected))
		},
		Entry("bool", fhe.Bool, "false"),
		Entry("uint128", fhe.Uint128, "0"),
		Entry("address", fhe.Address, common.Address{}.Hex()),
	)

	It("should reject values outside the type domain", func() {
		_, err := fhe.NewPlaintext(fhe.Uint8, big.NewInt(256))
		Expect(err).To(HaveOccurred())

		_, err = fhe.NewPlaintext(fhe.Uint8, big.NewInt(-1))
		Expect(err).To(HaveOccurred())
	})

	It("should round trip through json", func() {
		p, err := fhe.NewPlaintext(fhe.Uint128, big.NewInt(1_000_000))
		Expect(err).NotTo(HaveOccurred())

		data, err := json.Marshal(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`{"type":"uint128","value":"1000000"}`))

		var out fhe.Plaintext
		Expect(json.Unmarshal(data, &out)).To(Succeed())
		Expect(out.Type).To(Equal(fhe.Uint128))
		Expect(out.Uint().Int64()).To(Equal(int64(1_000_000)))
	})
})
