package claim

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"redactsync/internal/cache"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"
	"redactsync/internal/metrics"
	"redactsync/internal/token"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Ledger tracks decrypt-to-claim records per chain, token and handle.
type Ledger struct {
	logs   *zap.SugaredLogger
	reader ChainReader
	claims *cache.Cache[Key, Claim]
}

func NewLedger(logger *zap.SugaredLogger, reader ChainReader) *Ledger {
	return &Ledger{
		logs:   logger,
		reader: reader,
		claims: cache.New[Key, Claim](),
	}
}

// FetchForAccount reads the claims of account from every pair with a
// confidential leg and merges them in. Pairs whose read fails are skipped.
func (l *Ledger) FetchForAccount(ctx context.Context, chain uint64, account common.Address, pairs []token.AddressPair) error {
	if chain == 0 || account == (common.Address{}) {
		return nil
	}

	var withConfidential []token.AddressPair
	var calls []ethereum.Call
	for _, p := range pairs {
		if !p.HasConfidential() {
			continue
		}
		withConfidential = append(withConfidential, p)
		calls = append(calls, ethereum.NewCall(*p.FHERC20, ethereum.ConfidentialABI, "getUserClaims", account))
	}
	if len(calls) == 0 {
		return nil
	}

	results, err := l.reader.Multicall(ctx, chain, calls)
	if err != nil {
		return fmt.Errorf("read user claims: %w", err)
	}

	fetched := 0
	for i, res := range results {
		pair := withConfidential[i]

		var tuples []ethereum.ClaimTuple
		if err := res.Decode(&tuples); err != nil {
			l.logs.Errorw("failed to read user claims", "error", err, "chain", chain, "token", pair.ERC20.Hex())
			continue
		}

		for _, t := range tuples {
			c, err := fromTuple(t, pair.ERC20, *pair.FHERC20)
			if err != nil {
				l.logs.Errorw("skipping malformed claim", "error", err, "chain", chain, "token", pair.ERC20.Hex())
				continue
			}
			l.claims.Set(c.Key(chain), c)
			fetched++
		}
	}

	l.updateGauge()
	l.logs.Debugw("claims fetched", "chain", chain, "account", account.Hex(), "claims", fetched)
	return nil
}

// FetchPair is FetchForAccount scoped to one pair.
func (l *Ledger) FetchPair(ctx context.Context, chain uint64, account common.Address, pair token.AddressPair) error {
	return l.FetchForAccount(ctx, chain, account, []token.AddressPair{pair})
}

// Aggregate folds the unclaimed claims owned by account for the pair.
func (l *Ledger) Aggregate(chain uint64, erc20 common.Address, account common.Address) Totals {
	totals := Totals{
		Requested: new(big.Int),
		Decrypted: new(big.Int),
		Pending:   new(big.Int),
	}
	if account == (common.Address{}) {
		return totals
	}

	for _, c := range l.ForPair(chain, erc20) {
		if c.Claimed || c.To != account {
			continue
		}
		totals.Requested.Add(totals.Requested, amount(c.RequestedAmount))
		if c.Decrypted {
			totals.Decrypted.Add(totals.Decrypted, amount(c.DecryptedAmount))
		} else {
			totals.Pending.Add(totals.Pending, amount(c.RequestedAmount))
		}
	}
	return totals
}

// Remove deletes one claim, typically after its claim transaction confirmed.
func (l *Ledger) Remove(chain uint64, c Claim) bool {
	removed := l.claims.Delete(c.Key(chain))
	if removed {
		l.updateGauge()
	}
	return removed
}

// RemoveClaimable deletes every decrypted claim of the pair and leaves the
// pending ones in place.
func (l *Ledger) RemoveClaimable(chain uint64, erc20 common.Address) int {
	removed := l.claims.DeleteFunc(func(k Key, c Claim) bool {
		return k.Chain == chain && k.ERC20 == erc20 && c.Decrypted
	})
	if len(removed) > 0 {
		l.updateGauge()
	}
	return len(removed)
}

func (l *Ledger) Get(chain uint64, erc20 common.Address, handle fhe.Handle) (Claim, bool) {
	return l.claims.Get(Key{Chain: chain, ERC20: erc20, Handle: handle})
}

// All returns the chain's claims ordered by token and handle.
func (l *Ledger) All(chain uint64) []Claim {
	return l.collect(func(k Key, _ Claim) bool { return k.Chain == chain })
}

func (l *Ledger) ForPair(chain uint64, erc20 common.Address) []Claim {
	return l.collect(func(k Key, _ Claim) bool { return k.Chain == chain && k.ERC20 == erc20 })
}

// Pending returns the chain's claims still waiting for decryption.
func (l *Ledger) Pending(chain uint64) []Claim {
	return l.collect(func(k Key, c Claim) bool { return k.Chain == chain && !c.Decrypted })
}

// RefetchPending re-reads the on-chain state of the claims that are not yet
// decrypted. Claims removed while the read was in flight stay removed.
func (l *Ledger) RefetchPending(ctx context.Context, chain uint64, claims []Claim) error {
	var pending []Claim
	for _, c := range claims {
		if !c.Decrypted {
			pending = append(pending, c)
		}
	}
	if chain == 0 || len(pending) == 0 {
		return nil
	}

	results, err := l.readClaims(ctx, chain, pending)
	if err != nil {
		return fmt.Errorf("read pending claims: %w", err)
	}

	for i, res := range results {
		stored := pending[i]
		var t ethereum.ClaimTuple
		if err := res.Decode(&t); err != nil {
			continue
		}
		fresh, err := fromTuple(t, stored.ERC20, stored.FHERC20)
		if err != nil {
			continue
		}
		if _, ok := l.claims.Get(stored.Key(chain)); !ok {
			continue
		}
		l.claims.Set(stored.Key(chain), fresh)
	}

	l.updateGauge()
	return nil
}

// ValidateAndPrune checks every stored claim of the chain against the
// contract. Claims whose read fails or that are claimed on chain are
// removed; claims whose mutable fields differ are overwritten. When the
// round trip itself fails nothing is pruned.
func (l *Ledger) ValidateAndPrune(ctx context.Context, chain uint64, account common.Address) (PruneReport, error) {
	var report PruneReport
	if chain == 0 || account == (common.Address{}) {
		return report, nil
	}

	stored := l.All(chain)
	if len(stored) == 0 {
		return report, nil
	}
	report.Checked = len(stored)

	results, err := l.readClaims(ctx, chain, stored)
	if err != nil {
		return report, fmt.Errorf("read claims: %w", err)
	}

	for i, res := range results {
		c := stored[i]

		var t ethereum.ClaimTuple
		if err := res.Decode(&t); err != nil {
			l.logs.Infow("removing claim that cannot be read", "chain", chain, "ctHash", c.Handle.String(), "error", err)
			if l.claims.Delete(c.Key(chain)) {
				metrics.ClaimsPruned.WithLabelValues("read_failed").Inc()
				report.Removed++
			}
			continue
		}

		onChain := Claim{
			Decrypted:       t.Decrypted,
			Claimed:         t.Claimed,
			DecryptedAmount: amount(t.DecryptedAmount),
		}
		if _, ok := l.claims.Get(c.Key(chain)); !ok {
			continue
		}
		if c.differs(onChain) {
			c.Decrypted = onChain.Decrypted
			c.Claimed = onChain.Claimed
			c.DecryptedAmount = onChain.DecryptedAmount
			l.claims.Set(c.Key(chain), c)
			report.Updated++
		}

		if onChain.Claimed {
			if l.claims.Delete(c.Key(chain)) {
				metrics.ClaimsPruned.WithLabelValues("claimed").Inc()
				report.Removed++
			}
		}
	}

	l.updateGauge()
	l.logs.Infow("claims validated", "chain", chain, "checked", report.Checked, "updated", report.Updated, "removed", report.Removed)
	return report, nil
}

func (l *Ledger) Subscribe(fn func(cache.Event[Key, Claim])) func() {
	return l.claims.Subscribe(fn)
}

func (l *Ledger) Export() State {
	state := State{}
	l.claims.Range(func(k Key, c Claim) bool {
		if state[k.Chain] == nil {
			state[k.Chain] = map[common.Address]map[fhe.Handle]Claim{}
		}
		if state[k.Chain][k.ERC20] == nil {
			state[k.Chain][k.ERC20] = map[fhe.Handle]Claim{}
		}
		state[k.Chain][k.ERC20][k.Handle] = c
		return true
	})
	return state
}

// Import replaces the ledger contents without notifying subscribers.
func (l *Ledger) Import(state State) {
	items := map[Key]Claim{}
	for chain, byToken := range state {
		for erc20, byHandle := range byToken {
			for handle, c := range byHandle {
				items[Key{Chain: chain, ERC20: erc20, Handle: handle}] = c
			}
		}
	}
	l.claims.Load(items)
	l.updateGauge()
}

func (l *Ledger) readClaims(ctx context.Context, chain uint64, claims []Claim) ([]ethereum.Result, error) {
	calls := make([]ethereum.Call, len(claims))
	for i, c := range claims {
		calls[i] = ethereum.NewCall(c.FHERC20, ethereum.ConfidentialABI, "getClaim", c.Handle.Big())
	}
	return l.reader.Multicall(ctx, chain, calls)
}

func (l *Ledger) collect(match func(Key, Claim) bool) []Claim {
	type entry struct {
		key   Key
		claim Claim
	}
	var entries []entry
	l.claims.Range(func(k Key, c Claim) bool {
		if match(k, c) {
			entries = append(entries, entry{key: k, claim: c})
		}
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		if cmp := bytes.Compare(entries[i].key.ERC20[:], entries[j].key.ERC20[:]); cmp != 0 {
			return cmp < 0
		}
		return entries[i].key.Handle.Big().Cmp(entries[j].key.Handle.Big()) < 0
	})

	out := make([]Claim, len(entries))
	for i, e := range entries {
		out[i] = e.claim
	}
	return out
}

func (l *Ledger) updateGauge() {
	var pending, claimable float64
	l.claims.Range(func(_ Key, c Claim) bool {
		switch {
		case !c.Decrypted:
			pending++
		case c.Claimable():
			claimable++
		}
		return true
	})
	metrics.ClaimsTracked.WithLabelValues("pending").Set(pending)
	metrics.ClaimsTracked.WithLabelValues("claimable").Set(claimable)
}
