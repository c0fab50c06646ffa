package core

import (
	"context"
	"errors"
	"fmt"
	"redactsync/internal/cache"
	"redactsync/internal/claim"
	"redactsync/internal/decrypt"
	"redactsync/internal/fhe"
	"redactsync/internal/metrics"
	"redactsync/internal/token"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Engine ties the token store, the claim ledger and the decryption cache to
// one session and to persistence.
type Engine struct {
	logs        *zap.SugaredLogger
	tokens      *token.Store
	claims      *claim.Ledger
	decryptions *decrypt.Cache
	snapshots   Snapshots

	mu      sync.RWMutex
	session Session

	dirty  atomic.Bool
	unsubs []func()
}

func NewEngine(logger *zap.SugaredLogger, tokens *token.Store, claims *claim.Ledger, decryptions *decrypt.Cache, snapshots Snapshots) *Engine {
	e := &Engine{
		logs:        logger,
		tokens:      tokens,
		claims:      claims,
		decryptions: decryptions,
		snapshots:   snapshots,
	}

	markDirty := func() { e.dirty.Store(true) }
	e.unsubs = []func(){
		tokens.OnChange(markDirty),
		claims.Subscribe(func(cache.Event[claim.Key, claim.Claim]) { markDirty() }),
		decryptions.Subscribe(func(cache.Event[decrypt.Key, decrypt.Result]) { markDirty() }),
	}

	return e
}

func (e *Engine) Claims() *claim.Ledger {
	return e.claims
}

// SetSession switches the chain and account and reports whether it changed.
func (e *Engine) SetSession(s Session) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == s {
		return false
	}
	e.session = s
	e.logs.Infow("session changed", "chain", s.Chain, "account", s.Account.Hex())
	return true
}

func (e *Engine) Session() Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session
}

// OnTransactionConfirmed applies the scoped invalidation for a mined
// transaction. Every step runs even when an earlier one fails.
func (e *Engine) OnTransactionConfirmed(ctx context.Context, c Confirmation) error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
	if c.Token == (common.Address{}) {
		return ErrMissingToken
	}
	if c.Kind == KindClaim && c.ClaimHandle == nil {
		return ErrMissingHandle
	}

	session := e.Session()
	if c.Chain == 0 {
		c.Chain = session.Chain
	}
	if c.Account == (common.Address{}) {
		c.Account = session.Account
	}
	if c.Chain == 0 || c.Account == (common.Address{}) {
		return ErrNoSession
	}

	metrics.Confirmations.WithLabelValues(string(c.Kind)).Inc()
	e.logs.Infow("transaction confirmed", "kind", c.Kind, "chain", c.Chain, "account", c.Account.Hex(), "token", c.Token.Hex(), "tx", c.TxHash)

	var errs error
	switch c.Kind {
	case KindDeploy:
		if err := e.tokens.RefetchPair(ctx, c.Chain, c.Token); err != nil {
			errs = errors.Join(errs, fmt.Errorf("refetch pair: %w", err))
		}
	case KindClaim:
		e.claims.Remove(c.Chain, claim.Claim{Handle: *c.ClaimHandle, ERC20: c.Token})
	case KindClaimAll:
		e.claims.RemoveClaimable(c.Chain, c.Token)
	}

	switch c.Kind {
	case KindDecrypt, KindClaim, KindClaimAll:
		if err := e.claims.FetchPair(ctx, c.Chain, c.Account, e.addressPair(c)); err != nil {
			errs = errors.Join(errs, fmt.Errorf("fetch pair claims: %w", err))
		}
	}

	if err := e.tokens.RefetchSingle(ctx, c.Chain, c.Account, c.Token); err != nil {
		errs = errors.Join(errs, fmt.Errorf("refetch balances: %w", err))
	}

	return errs
}

func (e *Engine) addressPair(c Confirmation) token.AddressPair {
	pair := token.AddressPair{ERC20: c.Token}
	if p, ok := e.tokens.Pair(c.Chain, c.Token); ok {
		pair = p.Addresses()
	}
	if !pair.HasConfidential() && c.Confidential != nil {
		pair.FHERC20 = c.Confidential
	}
	return pair
}

// RequestDecrypt resolves handle for account through the decryption cache.
func (e *Engine) RequestDecrypt(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) (decrypt.Result, bool) {
	return e.decryptions.RequestDecrypt(ctx, handle, valueType, account)
}

// SearchArbitrary looks up a token the catalog does not list. Nothing is
// stored until AddArbitrary.
func (e *Engine) SearchArbitrary(ctx context.Context, chain uint64, account common.Address, address common.Address) (token.PairWithBalances, error) {
	return e.tokens.SearchArbitrary(ctx, chain, account, address)
}

func (e *Engine) AddArbitrary(chain uint64, account common.Address, found token.PairWithBalances) {
	e.tokens.AddArbitrary(chain, account, found)
}

func (e *Engine) RemoveArbitrary(chain uint64, address common.Address) {
	e.tokens.RemoveArbitrary(chain, address)
}

// Snapshot assembles everything known for account on chain.
func (e *Engine) Snapshot(chain uint64, account common.Address) AccountSnapshot {
	snapshot := AccountSnapshot{
		Chain:   chain,
		Account: account,
		Pairs:   []PairView{},
		Claims:  []claim.Claim{},
	}

	for _, p := range e.tokens.Pairs(chain) {
		view := PairView{
			Pair:              p,
			ConfidentialState: token.ConfidentialUnknown.String(),
			Claims:            e.claims.Aggregate(chain, p.PublicToken.Address, account),
			Arbitrary:         e.tokens.IsArbitrary(chain, p.PublicToken.Address),
		}

		if b, ok := e.tokens.Balances(chain, account, p.PublicToken.Address); ok {
			view.Balances = &b
			view.ConfidentialState = b.ConfidentialState().String()
			if b.ConfidentialHandle != nil {
				if res, ok := e.decryptions.Get(*b.ConfidentialHandle, fhe.Uint128, account); ok {
					view.Decrypted = &res
				}
			}
		}

		snapshot.Pairs = append(snapshot.Pairs, view)
	}

	for _, c := range e.claims.All(chain) {
		if c.To == account {
			snapshot.Claims = append(snapshot.Claims, c)
		}
	}

	return snapshot
}

// RefreshPairs lists the session chain's pairs.
func (e *Engine) RefreshPairs(ctx context.Context) error {
	session := e.Session()
	if session.Chain == 0 {
		return nil
	}
	_, err := e.tokens.ListPairs(ctx, session.Chain)
	return err
}

func (e *Engine) RefreshBalances(ctx context.Context) error {
	session := e.Session()
	return e.tokens.FetchBalances(ctx, session.Chain, session.Account)
}

// ConfidentialPairs counts the session chain's pairs that have a
// confidential leg, the only ones that can hold claims.
func (e *Engine) ConfidentialPairs() int {
	n := 0
	for _, p := range e.tokens.AddressPairs(e.Session().Chain) {
		if p.FHERC20 != nil {
			n++
		}
	}
	return n
}

// FetchClaims reads the session account's claims for every known pair.
func (e *Engine) FetchClaims(ctx context.Context) error {
	session := e.Session()
	if !session.Valid() {
		return nil
	}
	return e.claims.FetchForAccount(ctx, session.Chain, session.Account, e.tokens.AddressPairs(session.Chain))
}

// RefreshPendingClaims re-reads undecrypted claims and returns how many
// remain pending.
func (e *Engine) RefreshPendingClaims(ctx context.Context) (int, error) {
	session := e.Session()
	if !session.Valid() {
		return 0, nil
	}
	if err := e.claims.RefetchPending(ctx, session.Chain, e.claims.Pending(session.Chain)); err != nil {
		return len(e.claims.Pending(session.Chain)), err
	}
	return len(e.claims.Pending(session.Chain)), nil
}

func (e *Engine) HasPendingClaims() bool {
	return len(e.claims.Pending(e.Session().Chain)) > 0
}

// OnPendingClaim calls fn whenever a claim waiting for decryption is stored.
func (e *Engine) OnPendingClaim(fn func()) func() {
	return e.claims.Subscribe(func(ev cache.Event[claim.Key, claim.Claim]) {
		if !ev.Deleted && !ev.Value.Decrypted {
			fn()
		}
	})
}

func (e *Engine) ValidateClaims(ctx context.Context) (claim.PruneReport, error) {
	session := e.Session()
	return e.claims.ValidateAndPrune(ctx, session.Chain, session.Account)
}

// Persist writes all three caches.
func (e *Engine) Persist(ctx context.Context) error {
	e.dirty.Store(false)

	var errs error
	if err := e.snapshots.Save(ctx, KeyClaims, e.claims.Export()); err != nil {
		errs = errors.Join(errs, fmt.Errorf("save claims: %w", err))
	}
	if err := e.snapshots.Save(ctx, KeyDecryptions, e.decryptions.Export()); err != nil {
		errs = errors.Join(errs, fmt.Errorf("save decryptions: %w", err))
	}
	if err := e.snapshots.Save(ctx, KeyTokens, e.tokens.Export()); err != nil {
		errs = errors.Join(errs, fmt.Errorf("save tokens: %w", err))
	}

	if errs != nil {
		e.dirty.Store(true)
	}
	return errs
}

// Flush persists only when something changed since the last write.
func (e *Engine) Flush(ctx context.Context) (bool, error) {
	if !e.dirty.Load() {
		return false, nil
	}
	return true, e.Persist(ctx)
}

// Restore loads whatever was persisted. Missing keys leave the cache empty.
func (e *Engine) Restore(ctx context.Context) error {
	var claims claim.State
	found, err := e.snapshots.Load(ctx, KeyClaims, &claims)
	if err != nil {
		return fmt.Errorf("load claims: %w", err)
	}
	if found {
		e.claims.Import(claims)
	}

	var decryptions []decrypt.Result
	found, err = e.snapshots.Load(ctx, KeyDecryptions, &decryptions)
	if err != nil {
		return fmt.Errorf("load decryptions: %w", err)
	}
	if found {
		e.decryptions.Import(decryptions)
	}

	var tokens token.State
	found, err = e.snapshots.Load(ctx, KeyTokens, &tokens)
	if err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}
	if found {
		e.tokens.Import(tokens)
	}

	e.logs.Infow("state restored", "claimChains", len(claims), "decryptions", len(decryptions), "pairChains", len(tokens.Pairs))
	return nil
}

// Close stops change tracking and waits for in-flight decryptions.
func (e *Engine) Close() {
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.decryptions.Wait()
}
