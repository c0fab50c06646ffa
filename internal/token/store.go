package token

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"redactsync/internal/cache"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrNotConnected = errors.New("no account connected")
	ErrNoRegistry   = errors.New("no registry configured for chain")
)

const defaultBatchSize = 50

// Store keeps token pair metadata and per-account balances for every chain.
type Store struct {
	logs       *zap.SugaredLogger
	reader     ChainReader
	decrypter  Decrypter
	catalog    Catalog
	registries map[uint64]common.Address
	batchSize  int

	pairs     *cache.Cache[PairKey, Pair]
	balances  *cache.Cache[BalanceKey, Balances]
	arbitrary *cache.Cache[PairKey, bool]
}

func NewStore(logger *zap.SugaredLogger, reader ChainReader, decrypter Decrypter, catalog Catalog, registries map[uint64]common.Address, batchSize int) *Store {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Store{
		logs:       logger,
		reader:     reader,
		decrypter:  decrypter,
		catalog:    catalog,
		registries: registries,
		batchSize:  batchSize,
		pairs:      cache.New[PairKey, Pair](),
		balances:   cache.New[BalanceKey, Balances](),
		arbitrary:  cache.New[PairKey, bool](),
	}
}

// ListPairs merges the predefined catalog with user-added tokens, resolves
// metadata for entries that lack it and returns the chain's pairs.
func (s *Store) ListPairs(ctx context.Context, chain uint64) ([]Pair, error) {
	if chain == 0 {
		return nil, nil
	}

	if s.catalog != nil {
		predefined, err := s.catalog.Load(ctx, chain)
		if err != nil {
			s.logs.Errorw("failed to load predefined token catalog", "error", err, "chain", chain)
		}
		for _, p := range predefined {
			if p.HasMetadata() {
				s.pairs.Set(PairKey{Chain: chain, Token: p.PublicToken.Address}, p)
				continue
			}
			if _, ok := s.pairs.Get(PairKey{Chain: chain, Token: p.PublicToken.Address}); !ok {
				s.pairs.Set(PairKey{Chain: chain, Token: p.PublicToken.Address}, p)
			}
		}
	}

	var missing []AddressPair
	for _, token := range s.ArbitraryTokens(chain) {
		if p, ok := s.pairs.Get(PairKey{Chain: chain, Token: token}); !ok || !p.HasMetadata() {
			missing = append(missing, AddressPair{ERC20: token})
		}
	}
	for _, p := range s.Pairs(chain) {
		if !p.HasMetadata() && !s.IsArbitrary(chain, p.PublicToken.Address) {
			missing = append(missing, p.Addresses())
		}
	}

	if len(missing) > 0 {
		resolved, err := s.resolvePairs(ctx, chain, missing)
		if err != nil {
			return s.Pairs(chain), fmt.Errorf("resolve pairs: %w", err)
		}
		for _, p := range resolved {
			s.storeResolved(chain, p)
		}
		s.logs.Infow("token pairs resolved", "chain", chain, "count", len(resolved))
	}

	return s.Pairs(chain), nil
}

// RefetchPair re-resolves the metadata of one pair, e.g. after its
// confidential wrapper got deployed.
func (s *Store) RefetchPair(ctx context.Context, chain uint64, token common.Address) error {
	if chain == 0 {
		return nil
	}
	candidate := AddressPair{ERC20: token}
	if known, ok := s.pairs.Get(PairKey{Chain: chain, Token: token}); ok {
		candidate = known.Addresses()
	}
	resolved, err := s.resolvePairs(ctx, chain, []AddressPair{candidate})
	if err != nil {
		return fmt.Errorf("resolve pair %s: %w", token.Hex(), err)
	}
	for _, p := range resolved {
		s.storeResolved(chain, p)
	}
	return nil
}

// FetchBalances refreshes the balances of every known pair for account.
func (s *Store) FetchBalances(ctx context.Context, chain uint64, account common.Address) error {
	if chain == 0 || account == (common.Address{}) {
		return nil
	}

	pairs := s.AddressPairs(chain)
	if len(pairs) == 0 {
		return nil
	}

	balances, err := s.readBalances(ctx, chain, account, pairs)
	if err != nil {
		return fmt.Errorf("read balances: %w", err)
	}

	for i, pair := range pairs {
		s.balances.Set(BalanceKey{Chain: chain, Account: account, Token: pair.ERC20}, balances[i])
	}
	s.requestDecryptions(ctx, account, balances)

	s.logs.Debugw("balances fetched", "chain", chain, "account", account.Hex(), "pairs", len(pairs))
	return nil
}

// RefetchSingle refreshes the balances of one pair, resolving its
// confidential counterpart through the registry when the pair is unknown.
func (s *Store) RefetchSingle(ctx context.Context, chain uint64, account common.Address, token common.Address) error {
	if chain == 0 || account == (common.Address{}) {
		return nil
	}

	pair, ok := s.pairs.Get(PairKey{Chain: chain, Token: token})
	addresses := pair.Addresses()
	if !ok || !addresses.HasConfidential() {
		fherc20, err := s.lookupConfidential(ctx, chain, token)
		if err != nil {
			return fmt.Errorf("lookup confidential token of %s: %w", token.Hex(), err)
		}
		addresses = AddressPair{ERC20: token, FHERC20: fherc20}
	}

	balances, err := s.readBalances(ctx, chain, account, []AddressPair{addresses})
	if err != nil {
		return fmt.Errorf("read balances of %s: %w", token.Hex(), err)
	}

	s.balances.Set(BalanceKey{Chain: chain, Account: account, Token: token}, balances[0])
	s.requestDecryptions(ctx, account, balances)
	return nil
}

// SearchArbitrary accepts either leg of a pair and returns the pair with the
// account's balances. Nothing is stored; see AddArbitrary.
func (s *Store) SearchArbitrary(ctx context.Context, chain uint64, account common.Address, address common.Address) (PairWithBalances, error) {
	if account == (common.Address{}) {
		return PairWithBalances{}, ErrNotConnected
	}

	calls := []ethereum.Call{
		ethereum.NewCall(address, ethereum.ConfidentialABI, "isFherc20"),
		ethereum.NewCall(address, ethereum.ConfidentialABI, "erc20"),
	}
	if registry, ok := s.registries[chain]; ok {
		calls = append(calls, ethereum.NewCall(registry, ethereum.RegistryABI, "getFherc20", address))
	}

	results, err := s.reader.Multicall(ctx, chain, calls)
	if err != nil {
		return PairWithBalances{}, fmt.Errorf("inspect %s: %w", address.Hex(), err)
	}

	var isFherc20 bool
	if results[0].Decode(&isFherc20) != nil {
		isFherc20 = false
	}

	candidate := AddressPair{ERC20: address}
	if isFherc20 {
		var underlying common.Address
		if err := results[1].Decode(&underlying); err != nil {
			return PairWithBalances{}, fmt.Errorf("read underlying token of %s: %w", address.Hex(), err)
		}
		wrapper := address
		candidate = AddressPair{ERC20: underlying, FHERC20: &wrapper}
	} else if len(results) > 2 {
		var fherc20 common.Address
		if results[2].Decode(&fherc20) == nil && fherc20 != (common.Address{}) {
			candidate.FHERC20 = &fherc20
		}
	}

	resolved, err := s.resolvePairs(ctx, chain, []AddressPair{candidate})
	if err != nil {
		return PairWithBalances{}, fmt.Errorf("resolve pair: %w", err)
	}
	pair := resolved[0]

	balances, err := s.readBalances(ctx, chain, account, []AddressPair{pair.Addresses()})
	if err != nil {
		return PairWithBalances{}, fmt.Errorf("read balances: %w", err)
	}

	return PairWithBalances{Pair: pair, Balances: balances[0]}, nil
}

// AddArbitrary persists a search result as a user-added token.
func (s *Store) AddArbitrary(chain uint64, account common.Address, found PairWithBalances) {
	key := PairKey{Chain: chain, Token: found.Pair.PublicToken.Address}
	s.pairs.Set(key, found.Pair)
	if account != (common.Address{}) {
		s.balances.Set(BalanceKey{Chain: chain, Account: account, Token: key.Token}, found.Balances)
	}
	s.arbitrary.Set(key, true)
}

// RemoveArbitrary drops the pair, its balances for every account and its
// user-added marker.
func (s *Store) RemoveArbitrary(chain uint64, token common.Address) {
	key := PairKey{Chain: chain, Token: token}
	s.arbitrary.Delete(key)
	s.pairs.Delete(key)
	s.balances.DeleteFunc(func(k BalanceKey, _ Balances) bool {
		return k.Chain == chain && k.Token == token
	})
}

func (s *Store) Pair(chain uint64, token common.Address) (Pair, bool) {
	return s.pairs.Get(PairKey{Chain: chain, Token: token})
}

// Pairs returns the chain's pairs ordered by public token address.
func (s *Store) Pairs(chain uint64) []Pair {
	var out []Pair
	s.pairs.Range(func(k PairKey, p Pair) bool {
		if k.Chain == chain {
			out = append(out, p)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].PublicToken.Address[:], out[j].PublicToken.Address[:]) < 0
	})
	return out
}

func (s *Store) AddressPairs(chain uint64) []AddressPair {
	pairs := s.Pairs(chain)
	out := make([]AddressPair, len(pairs))
	for i, p := range pairs {
		out[i] = p.Addresses()
	}
	return out
}

func (s *Store) Balances(chain uint64, account common.Address, token common.Address) (Balances, bool) {
	return s.balances.Get(BalanceKey{Chain: chain, Account: account, Token: token})
}

func (s *Store) IsArbitrary(chain uint64, token common.Address) bool {
	_, ok := s.arbitrary.Get(PairKey{Chain: chain, Token: token})
	return ok
}

func (s *Store) ArbitraryTokens(chain uint64) []common.Address {
	var out []common.Address
	s.arbitrary.Range(func(k PairKey, _ bool) bool {
		if k.Chain == chain {
			out = append(out, k.Token)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

// OnChange calls fn after any pair, balance or user-token write.
func (s *Store) OnChange(fn func()) func() {
	unsubs := []func(){
		s.pairs.Subscribe(func(cache.Event[PairKey, Pair]) { fn() }),
		s.balances.Subscribe(func(cache.Event[BalanceKey, Balances]) { fn() }),
		s.arbitrary.Subscribe(func(cache.Event[PairKey, bool]) { fn() }),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

// storeResolved keeps catalog-only fields of an existing entry, and its
// metadata when the fresh read failed.
func (s *Store) storeResolved(chain uint64, p Pair) {
	key := PairKey{Chain: chain, Token: p.PublicToken.Address}
	if existing, ok := s.pairs.Get(key); ok {
		if p.PublicToken.Error != "" && existing.HasMetadata() {
			p.PublicToken = existing.PublicToken
		}
		if p.ConfidentialToken != nil && p.ConfidentialToken.Error != "" && existing.ConfidentialToken != nil && existing.ConfidentialToken.Address == p.ConfidentialToken.Address {
			p.ConfidentialToken = existing.ConfidentialToken
		}
		if p.PublicToken.Image == "" {
			p.PublicToken.Image = existing.PublicToken.Image
		}
		if p.ConfidentialToken != nil && p.ConfidentialToken.Image == "" && existing.ConfidentialToken != nil {
			p.ConfidentialToken.Image = existing.ConfidentialToken.Image
		}
		if p.FragmentedPair == nil {
			p.FragmentedPair = existing.FragmentedPair
		}
	}
	s.pairs.Set(key, p)
}

func (s *Store) requestDecryptions(ctx context.Context, account common.Address, balances []Balances) {
	if s.decrypter == nil {
		return
	}
	for _, b := range balances {
		if b.ConfidentialState() == ConfidentialSealed {
			s.decrypter.Dispatch(ctx, *b.ConfidentialHandle, fhe.Uint128, account)
		}
	}
}

func (s *Store) lookupConfidential(ctx context.Context, chain uint64, token common.Address) (*common.Address, error) {
	registry, ok := s.registries[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoRegistry, chain)
	}

	results, err := s.reader.Multicall(ctx, chain, []ethereum.Call{
		ethereum.NewCall(registry, ethereum.RegistryABI, "getFherc20", token),
	})
	if err != nil {
		return nil, err
	}

	var fherc20 common.Address
	if err := results[0].Decode(&fherc20); err != nil || fherc20 == (common.Address{}) {
		return nil, nil
	}
	return &fherc20, nil
}

// Export returns the persisted form of the store.
func (s *Store) Export() State {
	state := State{
		Pairs:     map[uint64]map[common.Address]Pair{},
		Balances:  map[uint64]map[common.Address]map[common.Address]Balances{},
		Arbitrary: map[uint64][]common.Address{},
	}

	s.pairs.Range(func(k PairKey, p Pair) bool {
		if state.Pairs[k.Chain] == nil {
			state.Pairs[k.Chain] = map[common.Address]Pair{}
		}
		state.Pairs[k.Chain][k.Token] = p
		return true
	})

	s.balances.Range(func(k BalanceKey, b Balances) bool {
		if state.Balances[k.Chain] == nil {
			state.Balances[k.Chain] = map[common.Address]map[common.Address]Balances{}
		}
		if state.Balances[k.Chain][k.Account] == nil {
			state.Balances[k.Chain][k.Account] = map[common.Address]Balances{}
		}
		state.Balances[k.Chain][k.Account][k.Token] = b
		return true
	})

	s.arbitrary.Range(func(k PairKey, _ bool) bool {
		state.Arbitrary[k.Chain] = append(state.Arbitrary[k.Chain], k.Token)
		return true
	})
	for _, tokens := range state.Arbitrary {
		sort.Slice(tokens, func(i, j int) bool {
			return bytes.Compare(tokens[i][:], tokens[j][:]) < 0
		})
	}

	return state
}

// Import replaces the store contents without notifying subscribers.
func (s *Store) Import(state State) {
	pairs := map[PairKey]Pair{}
	for chain, byToken := range state.Pairs {
		for token, p := range byToken {
			pairs[PairKey{Chain: chain, Token: token}] = p
		}
	}

	balances := map[BalanceKey]Balances{}
	for chain, byAccount := range state.Balances {
		for account, byToken := range byAccount {
			for token, b := range byToken {
				balances[BalanceKey{Chain: chain, Account: account, Token: token}] = b
			}
		}
	}

	arbitrary := map[PairKey]bool{}
	for chain, tokens := range state.Arbitrary {
		for _, token := range tokens {
			arbitrary[PairKey{Chain: chain, Token: token}] = true
		}
	}

	s.pairs.Load(pairs)
	s.balances.Load(balances)
	s.arbitrary.Load(arbitrary)
}
