package token_test

import (
	"context"
	"errors"
	"math/big"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"
	"redactsync/internal/token"
	"redactsync/internal/token/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type chainState map[string]ethereum.Result

func callKey(target common.Address, method string) string {
	return target.Hex() + "." + method
}

func returns(v any) ethereum.Result {
	return ethereum.Result{Success: true, Values: []any{v}}
}

func (c chainState) respond(_ context.Context, _ uint64, calls []ethereum.Call) ([]ethereum.Result, error) {
	out := make([]ethereum.Result, len(calls))
	for i, call := range calls {
		if r, ok := c[callKey(call.Target, call.Method)]; ok {
			out[i] = r
			continue
		}
		out[i] = call.Fail(ethereum.ErrCallReverted)
	}
	return out, nil
}

var _ = Describe("Store", func() {
	const chainID = uint64(11155111)

	var (
		store         *token.Store
		fakeReader    *fake.ChainReader
		fakeDecrypter *fake.Decrypter
		fakeCatalog   *fake.Catalog
		chain         chainState
		ctx           context.Context
		account       common.Address
		registry      common.Address
		usdc          common.Address
		eusdc         common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		registry = common.HexToAddress("0x2222222222222222222222222222222222222222")
		usdc = common.HexToAddress("0x3333333333333333333333333333333333333333")
		eusdc = common.HexToAddress("0x4444444444444444444444444444444444444444")

		chain = chainState{
			callKey(registry, "getFherc20"):      returns(eusdc),
			callKey(registry, "getIsStablecoin"): returns(true),
			callKey(registry, "getIsWETH"):       returns(false),
			callKey(usdc, "name"):                returns("USD Coin"),
			callKey(usdc, "symbol"):              returns("USDC"),
			callKey(usdc, "decimals"):            returns(uint8(6)),
			callKey(eusdc, "name"):               returns("Confidential USD Coin"),
			callKey(eusdc, "symbol"):             returns("eUSDC"),
			callKey(eusdc, "decimals"):           returns(uint8(6)),
		}

		fakeReader = new(fake.ChainReader)
		fakeReader.MulticallStub = func(ctx context.Context, c uint64, calls []ethereum.Call) ([]ethereum.Result, error) {
			return chain.respond(ctx, c, calls)
		}
		fakeDecrypter = new(fake.Decrypter)
		fakeCatalog = new(fake.Catalog)

		store = token.NewStore(
			zap.NewNop().Sugar(),
			fakeReader,
			fakeDecrypter,
			fakeCatalog,
			map[uint64]common.Address{chainID: registry},
			10,
		)
	})

	Describe("ListPairs", func() {
		When("the catalog lists an address without metadata", func() {
			BeforeEach(func() {
				fakeCatalog.LoadReturns([]token.Pair{{PublicToken: token.TokenMeta{Address: usdc, Image: "usdc.png"}}}, nil)
			})

			It("should resolve registry flags and metadata of both legs", func() {
				pairs, err := store.ListPairs(ctx, chainID)
				Expect(err).NotTo(HaveOccurred())
				Expect(pairs).To(HaveLen(1))

				p := pairs[0]
				Expect(p.PublicToken.Symbol).To(Equal("USDC"))
				Expect(p.PublicToken.Decimals).To(Equal(uint8(6)))
				Expect(p.PublicToken.Image).To(Equal("usdc.png"))
				Expect(p.ConfidentialToken).NotTo(BeNil())
				Expect(p.ConfidentialToken.Address).To(Equal(eusdc))
				Expect(p.ConfidentialToken.Symbol).To(Equal("eUSDC"))
				Expect(p.ConfidentialDeployed).To(BeTrue())
				Expect(p.IsStablecoin).To(BeTrue())
				Expect(p.IsWETH).To(BeFalse())

				Expect(fakeReader.MulticallCallCount()).To(Equal(2))
			})
		})

		When("the registry has no wrapper for the token", func() {
			BeforeEach(func() {
				chain[callKey(registry, "getFherc20")] = returns(common.Address{})
				fakeCatalog.LoadReturns([]token.Pair{{PublicToken: token.TokenMeta{Address: usdc}}}, nil)
			})

			It("should leave the confidential leg empty", func() {
				pairs, err := store.ListPairs(ctx, chainID)
				Expect(err).NotTo(HaveOccurred())
				Expect(pairs[0].ConfidentialToken).To(BeNil())
				Expect(pairs[0].ConfidentialDeployed).To(BeFalse())
				Expect(pairs[0].ConfidentialSymbol()).To(Equal("eUSDC"))
			})
		})

		When("the catalog cannot be loaded", func() {
			BeforeEach(func() {
				fakeCatalog.LoadReturns(nil, errors.New("offline"))
			})

			It("should not fail", func() {
				pairs, err := store.ListPairs(ctx, chainID)
				Expect(err).NotTo(HaveOccurred())
				Expect(pairs).To(BeEmpty())
				Expect(fakeReader.MulticallCallCount()).To(BeZero())
			})
		})

		When("the chain reader is unreachable", func() {
			BeforeEach(func() {
				fakeCatalog.LoadReturns([]token.Pair{{PublicToken: token.TokenMeta{Address: usdc}}}, nil)
				fakeReader.MulticallStub = nil
				fakeReader.MulticallReturns(nil, errors.New("connection refused"))
			})

			It("should return the error", func() {
				_, err := store.ListPairs(ctx, chainID)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("FetchBalances", func() {
		BeforeEach(func() {
			fakeCatalog.LoadReturns([]token.Pair{{PublicToken: token.TokenMeta{Address: usdc}}}, nil)
			_, err := store.ListPairs(ctx, chainID)
			Expect(err).NotTo(HaveOccurred())

			chain[callKey(usdc, "balanceOf")] = returns(big.NewInt(100))
			chain[callKey(eusdc, "encBalanceOf")] = returns(big.NewInt(77))
		})

		It("should degrade only the field whose read failed", func() {
			Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())

			b, ok := store.Balances(chainID, account, usdc)
			Expect(ok).To(BeTrue())
			Expect(b.PublicBalance.Int64()).To(Equal(int64(100)))
			Expect(b.Allowance).To(BeNil())
			Expect(b.ConfidentialState()).To(Equal(token.ConfidentialSealed))
			Expect(*b.ConfidentialHandle).To(Equal(fhe.HandleFromUint64(77)))
		})

		It("should hand sealed handles to the decrypter", func() {
			Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())

			Expect(fakeDecrypter.DispatchCallCount()).To(Equal(1))
			_, handle, valueType, acc := fakeDecrypter.DispatchArgsForCall(0)
			Expect(handle).To(Equal(fhe.HandleFromUint64(77)))
			Expect(valueType).To(Equal(fhe.Uint128))
			Expect(acc).To(Equal(account))
		})

		It("should keep balances per account", func() {
			Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())

			_, ok := store.Balances(chainID, common.HexToAddress("0x9999999999999999999999999999999999999999"), usdc)
			Expect(ok).To(BeFalse())
		})

		When("the balance handle is the zero sentinel", func() {
			BeforeEach(func() {
				chain[callKey(eusdc, "encBalanceOf")] = returns(big.NewInt(0))
			})

			It("should report a zero balance without decrypting", func() {
				Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())

				b, _ := store.Balances(chainID, account, usdc)
				Expect(b.ConfidentialState()).To(Equal(token.ConfidentialZero))
				Expect(fakeDecrypter.DispatchCallCount()).To(BeZero())
			})
		})

		When("the round trip fails", func() {
			BeforeEach(func() {
				Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())
				fakeReader.MulticallStub = nil
				fakeReader.MulticallReturns(nil, errors.New("timeout"))
			})

			It("should keep the previous balances", func() {
				Expect(store.FetchBalances(ctx, chainID, account)).NotTo(Succeed())

				b, ok := store.Balances(chainID, account, usdc)
				Expect(ok).To(BeTrue())
				Expect(b.PublicBalance.Int64()).To(Equal(int64(100)))
			})
		})

		When("no account is connected", func() {
			It("should do nothing", func() {
				calls := fakeReader.MulticallCallCount()
				Expect(store.FetchBalances(ctx, chainID, common.Address{})).To(Succeed())
				Expect(fakeReader.MulticallCallCount()).To(Equal(calls))
			})
		})
	})

	Describe("native token", func() {
		BeforeEach(func() {
			store.Import(token.State{
				Pairs: map[uint64]map[common.Address]token.Pair{
					chainID: {token.NativeTokenAddress: {PublicToken: token.TokenMeta{Address: token.NativeTokenAddress, Symbol: "ETH", Decimals: 18}}},
				},
			})
			fakeReader.NativeBalanceReturns(big.NewInt(5), nil)
		})

		It("should use the native balance for the public balance and the allowance", func() {
			Expect(store.FetchBalances(ctx, chainID, account)).To(Succeed())

			b, ok := store.Balances(chainID, account, token.NativeTokenAddress)
			Expect(ok).To(BeTrue())
			Expect(b.PublicBalance.Int64()).To(Equal(int64(5)))
			Expect(b.Allowance.Int64()).To(Equal(int64(5)))
			Expect(b.ConfidentialState()).To(Equal(token.ConfidentialUnknown))
			Expect(fakeReader.NativeBalanceCallCount()).To(Equal(1))
			Expect(fakeReader.MulticallCallCount()).To(BeZero())
		})
	})

	Describe("RefetchSingle", func() {
		BeforeEach(func() {
			chain[callKey(usdc, "balanceOf")] = returns(big.NewInt(42))
			chain[callKey(usdc, "allowance")] = returns(big.NewInt(7))
		})

		It("should resolve the wrapper of an unknown token through the registry", func() {
			Expect(store.RefetchSingle(ctx, chainID, account, usdc)).To(Succeed())

			b, ok := store.Balances(chainID, account, usdc)
			Expect(ok).To(BeTrue())
			Expect(b.PublicBalance.Int64()).To(Equal(int64(42)))
			Expect(b.Allowance.Int64()).To(Equal(int64(7)))
		})
	})

	Describe("arbitrary tokens", func() {
		BeforeEach(func() {
			chain[callKey(eusdc, "isFherc20")] = returns(true)
			chain[callKey(eusdc, "erc20")] = returns(usdc)
			chain[callKey(usdc, "balanceOf")] = returns(big.NewInt(12))
		})

		It("should find the pair from its confidential leg without storing it", func() {
			found, err := store.SearchArbitrary(ctx, chainID, account, eusdc)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Pair.PublicToken.Address).To(Equal(usdc))
			Expect(found.Pair.ConfidentialToken.Address).To(Equal(eusdc))
			Expect(found.Balances.PublicBalance.Int64()).To(Equal(int64(12)))

			Expect(store.Pairs(chainID)).To(BeEmpty())
			Expect(store.IsArbitrary(chainID, usdc)).To(BeFalse())
		})

		It("should treat a reverting wrapper lookup as a public token", func() {
			found, err := store.SearchArbitrary(ctx, chainID, account, usdc)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Pair.PublicToken.Address).To(Equal(usdc))
			Expect(found.Pair.ConfidentialToken.Address).To(Equal(eusdc))
		})

		It("should reject a search without an account", func() {
			_, err := store.SearchArbitrary(ctx, chainID, common.Address{}, usdc)
			Expect(err).To(MatchError(token.ErrNotConnected))
		})

		It("should add and remove a user token", func() {
			found, err := store.SearchArbitrary(ctx, chainID, account, usdc)
			Expect(err).NotTo(HaveOccurred())

			store.AddArbitrary(chainID, account, found)
			Expect(store.IsArbitrary(chainID, usdc)).To(BeTrue())
			Expect(store.Pairs(chainID)).To(HaveLen(1))
			_, ok := store.Balances(chainID, account, usdc)
			Expect(ok).To(BeTrue())

			store.RemoveArbitrary(chainID, usdc)
			Expect(store.IsArbitrary(chainID, usdc)).To(BeFalse())
			Expect(store.Pairs(chainID)).To(BeEmpty())
			_, ok = store.Balances(chainID, account, usdc)
			Expect(ok).To(BeFalse())
		})

		It("should survive an export and import", func() {
			found, err := store.SearchArbitrary(ctx, chainID, account, usdc)
			Expect(err).NotTo(HaveOccurred())
			store.AddArbitrary(chainID, account, found)

			restored := token.NewStore(zap.NewNop().Sugar(), fakeReader, fakeDecrypter, fakeCatalog, nil, 10)
			restored.Import(store.Export())

			Expect(restored.IsArbitrary(chainID, usdc)).To(BeTrue())
			p, ok := restored.Pair(chainID, usdc)
			Expect(ok).To(BeTrue())
			Expect(p.PublicToken.Symbol).To(Equal("USDC"))
		})
	})
})
