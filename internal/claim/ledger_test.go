package claim_test

import (
	"context"
	"errors"
	"math/big"
	"redactsync/internal/claim"
	"redactsync/internal/claim/fake"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"
	"redactsync/internal/token"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func tuple(handle int64, requested, decryptedAmount int64, decrypted bool, to common.Address, claimed bool) ethereum.ClaimTuple {
	return ethereum.ClaimTuple{
		CtHash:          big.NewInt(handle),
		RequestedAmount: big.NewInt(requested),
		DecryptedAmount: big.NewInt(decryptedAmount),
		Decrypted:       decrypted,
		To:              to,
		Claimed:         claimed,
	}
}

func returns(v any) ethereum.Result {
	return ethereum.Result{Success: true, Values: []any{v}}
}

var _ = Describe("Ledger", func() {
	const chainID = uint64(11155111)

	var (
		ledger     *claim.Ledger
		fakeReader *fake.ChainReader
		ctx        context.Context
		account    common.Address
		other      common.Address
		usdc       common.Address
		eusdc      common.Address
		pair       token.AddressPair
	)

	BeforeEach(func() {
		ctx = context.Background()
		account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		other = common.HexToAddress("0x5555555555555555555555555555555555555555")
		usdc = common.HexToAddress("0x3333333333333333333333333333333333333333")
		eusdc = common.HexToAddress("0x4444444444444444444444444444444444444444")
		pair = token.AddressPair{ERC20: usdc, FHERC20: &eusdc}

		fakeReader = new(fake.ChainReader)
		ledger = claim.NewLedger(zap.NewNop().Sugar(), fakeReader)
	})

	load := func(tuples ...ethereum.ClaimTuple) {
		fakeReader.MulticallReturnsOnCall(fakeReader.MulticallCallCount(), []ethereum.Result{returns(tuples)}, nil)
		Expect(ledger.FetchPair(ctx, chainID, account, pair)).To(Succeed())
	}

	Describe("FetchForAccount", func() {
		It("should read getUserClaims from the confidential leg only", func() {
			load(tuple(1, 100, 0, false, account, false))

			_, _, calls := fakeReader.MulticallArgsForCall(0)
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Target).To(Equal(eusdc))
			Expect(calls[0].Method).To(Equal("getUserClaims"))

			claims := ledger.All(chainID)
			Expect(claims).To(HaveLen(1))
			Expect(claims[0].ERC20).To(Equal(usdc))
			Expect(claims[0].FHERC20).To(Equal(eusdc))
			Expect(claims[0].Handle).To(Equal(fhe.HandleFromUint64(1)))
		})

		It("should skip pairs without a confidential leg", func() {
			Expect(ledger.FetchForAccount(ctx, chainID, account, []token.AddressPair{{ERC20: usdc}})).To(Succeed())
			Expect(fakeReader.MulticallCallCount()).To(BeZero())
		})

		It("should overwrite a claim in place on refetch", func() {
			load(tuple(1, 100, 0, false, account, false))
			load(tuple(1, 100, 90, true, account, false))

			claims := ledger.All(chainID)
			Expect(claims).To(HaveLen(1))
			Expect(claims[0].Decrypted).To(BeTrue())
			Expect(claims[0].DecryptedAmount.Int64()).To(Equal(int64(90)))
		})

		It("should do nothing without an account", func() {
			Expect(ledger.FetchPair(ctx, chainID, common.Address{}, pair)).To(Succeed())
			Expect(fakeReader.MulticallCallCount()).To(BeZero())
		})
	})

	Describe("Aggregate", func() {
		BeforeEach(func() {
			load(
				tuple(1, 100, 0, false, account, false),
				tuple(2, 50, 40, true, account, false),
				tuple(3, 1000, 1000, true, other, false),
				tuple(4, 70, 70, true, account, true),
			)
		})

		It("should fold unclaimed claims owned by the account", func() {
			totals := ledger.Aggregate(chainID, usdc, account)
			Expect(totals.Requested.Int64()).To(Equal(int64(150)))
			Expect(totals.Decrypted.Int64()).To(Equal(int64(40)))
			Expect(totals.Pending.Int64()).To(Equal(int64(100)))
		})

		It("should exclude a removed claim", func() {
			c, ok := ledger.Get(chainID, usdc, fhe.HandleFromUint64(1))
			Expect(ok).To(BeTrue())
			Expect(ledger.Remove(chainID, c)).To(BeTrue())

			totals := ledger.Aggregate(chainID, usdc, account)
			Expect(totals.Requested.Int64()).To(Equal(int64(50)))
			Expect(totals.Pending.Sign()).To(BeZero())
		})

		It("should remove only decrypted claims on claim all", func() {
			Expect(ledger.RemoveClaimable(chainID, usdc)).To(Equal(3))

			claims := ledger.All(chainID)
			Expect(claims).To(HaveLen(1))
			Expect(claims[0].Decrypted).To(BeFalse())
			Expect(ledger.Pending(chainID)).To(HaveLen(1))
		})
	})

	Describe("RefetchPending", func() {
		BeforeEach(func() {
			load(
				tuple(1, 100, 0, false, account, false),
				tuple(2, 50, 40, true, account, false),
			)
		})

		It("should only read claims that are not decrypted", func() {
			fakeReader.MulticallReturnsOnCall(1, []ethereum.Result{returns(tuple(1, 100, 95, true, account, false))}, nil)

			Expect(ledger.RefetchPending(ctx, chainID, ledger.All(chainID))).To(Succeed())

			_, _, calls := fakeReader.MulticallArgsForCall(1)
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Method).To(Equal("getClaim"))
			Expect(calls[0].Args[0].(*big.Int).Int64()).To(Equal(int64(1)))

			c, _ := ledger.Get(chainID, usdc, fhe.HandleFromUint64(1))
			Expect(c.Decrypted).To(BeTrue())
			Expect(ledger.Pending(chainID)).To(BeEmpty())
		})

		It("should not resurrect a claim removed during the read", func() {
			pending := ledger.Pending(chainID)
			ledger.Remove(chainID, pending[0])
			fakeReader.MulticallReturnsOnCall(1, []ethereum.Result{returns(tuple(1, 100, 95, true, account, false))}, nil)

			Expect(ledger.RefetchPending(ctx, chainID, pending)).To(Succeed())
			_, ok := ledger.Get(chainID, usdc, fhe.HandleFromUint64(1))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ValidateAndPrune", func() {
		BeforeEach(func() {
			load(
				tuple(1, 100, 0, false, account, false),
				tuple(2, 50, 40, true, account, false),
				tuple(3, 60, 0, false, account, false),
			)
		})

		It("should remove claimed and unreadable claims and update changed ones", func() {
			fakeReader.MulticallReturnsOnCall(1, []ethereum.Result{
				returns(tuple(1, 100, 100, true, account, false)),
				returns(tuple(2, 50, 40, true, account, true)),
				{Err: ethereum.ErrCallReverted},
			}, nil)

			report, err := ledger.ValidateAndPrune(ctx, chainID, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(report).To(Equal(claim.PruneReport{Checked: 3, Updated: 2, Removed: 2}))

			claims := ledger.All(chainID)
			Expect(claims).To(HaveLen(1))
			Expect(claims[0].Handle).To(Equal(fhe.HandleFromUint64(1)))
			Expect(claims[0].Decrypted).To(BeTrue())
			Expect(claims[0].DecryptedAmount.Int64()).To(Equal(int64(100)))
		})

		It("should not restore a claim removed while the sweep was reading", func() {
			stored := ledger.All(chainID)
			fakeReader.MulticallStub = func(context.Context, uint64, []ethereum.Call) ([]ethereum.Result, error) {
				ledger.Remove(chainID, stored[0])
				return []ethereum.Result{
					returns(tuple(1, 100, 100, true, account, false)),
					returns(tuple(2, 50, 40, true, account, false)),
					returns(tuple(3, 60, 0, false, account, false)),
				}, nil
			}

			report, err := ledger.ValidateAndPrune(ctx, chainID, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Updated).To(BeZero())

			_, ok := ledger.Get(chainID, usdc, stored[0].Handle)
			Expect(ok).To(BeFalse())
			Expect(ledger.All(chainID)).To(HaveLen(2))
		})

		It("should prune nothing when the round trip fails", func() {
			fakeReader.MulticallReturnsOnCall(1, nil, errors.New("connection reset"))

			_, err := ledger.ValidateAndPrune(ctx, chainID, account)
			Expect(err).To(HaveOccurred())
			Expect(ledger.All(chainID)).To(HaveLen(3))
		})
	})

	Describe("Export and Import", func() {
		It("should restore the ledger with exact amounts", func() {
			huge, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
			Expect(ok).To(BeTrue())
			t := tuple(7, 0, 0, true, account, false)
			t.RequestedAmount = huge
			t.DecryptedAmount = huge
			load(t)

			restored := claim.NewLedger(zap.NewNop().Sugar(), fakeReader)
			restored.Import(ledger.Export())

			c, ok := restored.Get(chainID, usdc, fhe.HandleFromUint64(7))
			Expect(ok).To(BeTrue())
			Expect(c.RequestedAmount.Cmp(huge)).To(BeZero())
		})
	})
})
