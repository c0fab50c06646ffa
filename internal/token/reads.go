package token

import (
	"context"
	"math/big"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

// nativeMeta describes the native pseudo-token, which has no contract to read.
var nativeMeta = TokenMeta{
	Address:  NativeTokenAddress,
	Name:     "Ether",
	Symbol:   "ETH",
	Decimals: 18,
}

// batch collects calls and hands back their index in the request.
type batch struct {
	calls []ethereum.Call
}

func (b *batch) add(call ethereum.Call) int {
	b.calls = append(b.calls, call)
	return len(b.calls) - 1
}

func chunks[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		out = append(out, items[start:min(start+size, len(items))])
	}
	return out
}

type registryIdx struct {
	fherc20, stablecoin, weth int
}

type metaIdx struct {
	name, symbol, decimals int
}

// resolvePairs reads registry flags and token metadata for candidates, one
// registry multicall and one metadata multicall per chunk. A transport
// failure aborts the whole resolution.
func (s *Store) resolvePairs(ctx context.Context, chain uint64, candidates []AddressPair) ([]Pair, error) {
	out := make([]Pair, 0, len(candidates))
	for _, chunk := range chunks(candidates, s.batchSize) {
		pairs, err := s.resolveChunk(ctx, chain, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, pairs...)
	}
	return out, nil
}

func (s *Store) resolveChunk(ctx context.Context, chain uint64, candidates []AddressPair) ([]Pair, error) {
	resolved := make([]AddressPair, len(candidates))
	copy(resolved, candidates)
	pairs := make([]Pair, len(candidates))

	if registry, ok := s.registries[chain]; ok {
		var b batch
		idx := make([]registryIdx, len(candidates))
		for i, c := range candidates {
			idx[i] = registryIdx{fherc20: -1}
			if !c.HasConfidential() {
				idx[i].fherc20 = b.add(ethereum.NewCall(registry, ethereum.RegistryABI, "getFherc20", c.ERC20))
			}
			idx[i].stablecoin = b.add(ethereum.NewCall(registry, ethereum.RegistryABI, "getIsStablecoin", c.ERC20))
			idx[i].weth = b.add(ethereum.NewCall(registry, ethereum.RegistryABI, "getIsWETH", c.ERC20))
		}

		results, err := s.reader.Multicall(ctx, chain, b.calls)
		if err != nil {
			return nil, err
		}

		for i := range candidates {
			if idx[i].fherc20 >= 0 {
				var fherc20 common.Address
				if results[idx[i].fherc20].Decode(&fherc20) == nil && fherc20 != (common.Address{}) {
					resolved[i].FHERC20 = &fherc20
				}
			}
			_ = results[idx[i].stablecoin].Decode(&pairs[i].IsStablecoin)
			_ = results[idx[i].weth].Decode(&pairs[i].IsWETH)
		}
	}

	var b batch
	public := make([]metaIdx, len(resolved))
	confidential := make([]*metaIdx, len(resolved))
	for i, r := range resolved {
		if !r.IsNative() {
			public[i] = metaCalls(&b, r.ERC20)
		}
		if r.HasConfidential() {
			m := metaCalls(&b, *r.FHERC20)
			confidential[i] = &m
		}
	}

	var results []ethereum.Result
	if len(b.calls) > 0 {
		var err error
		results, err = s.reader.Multicall(ctx, chain, b.calls)
		if err != nil {
			return nil, err
		}
	}

	for i, r := range resolved {
		if r.IsNative() {
			pairs[i].PublicToken = nativeMeta
		} else {
			pairs[i].PublicToken = decodeMeta(r.ERC20, results, public[i])
		}
		if confidential[i] != nil {
			meta := decodeMeta(*r.FHERC20, results, *confidential[i])
			pairs[i].ConfidentialToken = &meta
			pairs[i].ConfidentialDeployed = true
		}
	}

	return pairs, nil
}

func metaCalls(b *batch, token common.Address) metaIdx {
	return metaIdx{
		name:     b.add(ethereum.NewCall(token, ethereum.ERC20ABI, "name")),
		symbol:   b.add(ethereum.NewCall(token, ethereum.ERC20ABI, "symbol")),
		decimals: b.add(ethereum.NewCall(token, ethereum.ERC20ABI, "decimals")),
	}
}

func decodeMeta(token common.Address, results []ethereum.Result, idx metaIdx) TokenMeta {
	meta := TokenMeta{Address: token}
	for _, err := range []error{
		results[idx.name].Decode(&meta.Name),
		results[idx.symbol].Decode(&meta.Symbol),
		results[idx.decimals].Decode(&meta.Decimals),
	} {
		if err != nil {
			meta.Error = err.Error()
			break
		}
	}
	return meta
}

type balanceIdx struct {
	public, handle, allowance int
}

// readBalances returns one Balances per pair in order. A reverted sub-call
// leaves only its field nil; a transport failure returns an error and no
// balances.
func (s *Store) readBalances(ctx context.Context, chain uint64, account common.Address, pairs []AddressPair) ([]Balances, error) {
	out := make([]Balances, 0, len(pairs))
	for _, chunk := range chunks(pairs, s.batchSize) {
		balances, err := s.readBalanceChunk(ctx, chain, account, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, balances...)
	}
	return out, nil
}

func (s *Store) readBalanceChunk(ctx context.Context, chain uint64, account common.Address, pairs []AddressPair) ([]Balances, error) {
	var b batch
	idx := make([]balanceIdx, len(pairs))
	hasNative := false
	for i, p := range pairs {
		idx[i] = balanceIdx{public: -1, handle: -1, allowance: -1}
		if p.IsNative() {
			hasNative = true
		} else {
			idx[i].public = b.add(ethereum.NewCall(p.ERC20, ethereum.ERC20ABI, "balanceOf", account))
			if p.HasConfidential() {
				idx[i].allowance = b.add(ethereum.NewCall(p.ERC20, ethereum.ERC20ABI, "allowance", account, *p.FHERC20))
			}
		}
		if p.HasConfidential() {
			idx[i].handle = b.add(ethereum.NewCall(*p.FHERC20, ethereum.ConfidentialABI, "encBalanceOf", account))
		}
	}

	var results []ethereum.Result
	if len(b.calls) > 0 {
		var err error
		results, err = s.reader.Multicall(ctx, chain, b.calls)
		if err != nil {
			return nil, err
		}
	}

	var native *big.Int
	if hasNative {
		var err error
		native, err = s.reader.NativeBalance(ctx, chain, account)
		if err != nil {
			s.logs.Errorw("failed to read native balance", "error", err, "chain", chain, "account", account.Hex())
			native = nil
		}
	}

	out := make([]Balances, len(pairs))
	for i, p := range pairs {
		if p.IsNative() {
			if native != nil {
				out[i].PublicBalance = new(big.Int).Set(native)
				out[i].Allowance = new(big.Int).Set(native)
			}
		} else {
			out[i].PublicBalance = decodeAmount(results, idx[i].public)
			out[i].Allowance = decodeAmount(results, idx[i].allowance)
		}
		if idx[i].handle >= 0 {
			if v := decodeAmount(results, idx[i].handle); v != nil {
				if h, err := fhe.HandleFromBig(v); err == nil {
					out[i].ConfidentialHandle = &h
				}
			}
		}
	}
	return out, nil
}

func decodeAmount(results []ethereum.Result, i int) *big.Int {
	if i < 0 {
		return nil
	}
	var v *big.Int
	if err := results[i].Decode(&v); err != nil {
		return nil
	}
	return v
}
