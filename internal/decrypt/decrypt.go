package decrypt

import (
	"context"
	"redactsync/internal/cache"
	"redactsync/internal/fhe"
	"redactsync/internal/metrics"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const DefaultRateLimit = 5 * time.Second

// Cache holds one decryption result per (handle, account) and makes sure
// at most one oracle round trip per key happens inside the rate-limit window.
type Cache struct {
	logs    *zap.SugaredLogger
	oracle  Oracle
	results *cache.Cache[Key, Result]
	window  time.Duration

	mu       sync.Mutex
	attempts map[Key]time.Time

	wg sync.WaitGroup

	TimeNow func() time.Time
}

func NewCache(logger *zap.SugaredLogger, oracle Oracle, window time.Duration) *Cache {
	if window <= 0 {
		window = DefaultRateLimit
	}
	return &Cache{
		logs:     logger,
		oracle:   oracle,
		results:  cache.New[Key, Result](),
		window:   window,
		attempts: make(map[Key]time.Time),
		TimeNow:  time.Now,
	}
}

// RequestDecrypt returns the result for handle as seen by account. The
// boolean is false when an attempt for the same key is already in flight
// inside the rate-limit window; callers should retry on their next poll.
func (c *Cache) RequestDecrypt(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) (Result, bool) {
	if handle.IsZero() {
		metrics.DecryptRequests.WithLabelValues("zero").Inc()
		return zeroResult(valueType, account), true
	}

	if !c.oracle.Ready(account) {
		metrics.DecryptRequests.WithLabelValues("not_ready").Inc()
		return Result{Handle: handle, Account: account, Type: valueType, State: StatePending}, true
	}

	key := Key{Handle: handle, Account: account}

	c.mu.Lock()
	existing, ok := c.results.Get(key)
	if ok && existing.State != StateError {
		c.mu.Unlock()
		metrics.DecryptRequests.WithLabelValues("cached").Inc()
		return existing, true
	}

	now := c.TimeNow()
	if !ok {
		if last, seen := c.attempts[key]; seen && now.Sub(last) < c.window {
			c.mu.Unlock()
			metrics.DecryptRequests.WithLabelValues("rate_limited").Inc()
			return Result{}, false
		}
	}

	c.attempts[key] = now
	c.results.Set(key, Result{Handle: handle, Account: account, Type: valueType, State: StatePending})
	c.mu.Unlock()

	metrics.DecryptRequests.WithLabelValues("dispatched").Inc()
	result := c.unseal(ctx, key, valueType)
	c.results.Set(key, result)

	return result, true
}

// Dispatch requests a decryption without waiting for it.
func (c *Cache) Dispatch(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) {
	if handle.IsZero() {
		return
	}
	if existing, ok := c.results.Get(Key{Handle: handle, Account: account}); ok && existing.State != StateError {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.RequestDecrypt(ctx, handle, valueType, account)
	}()
}

// Wait blocks until every dispatched request has finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Get is a read-only lookup that never reaches the oracle.
func (c *Cache) Get(handle fhe.Handle, valueType fhe.ValueType, account common.Address) (Result, bool) {
	if handle.IsZero() {
		return zeroResult(valueType, account), true
	}
	return c.results.Get(Key{Handle: handle, Account: account})
}

func (c *Cache) Subscribe(fn func(cache.Event[Key, Result])) func() {
	return c.results.Subscribe(fn)
}

// Export lists the cached results ordered by handle then account.
func (c *Cache) Export() []Result {
	snapshot := c.results.Snapshot()
	out := make([]Result, 0, len(snapshot))
	for _, r := range snapshot {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := out[i].Handle.String(), out[j].Handle.String()
		if hi != hj {
			return hi < hj
		}
		return out[i].Account.Hex() < out[j].Account.Hex()
	})
	return out
}

// Import restores persisted results. Pending entries are dropped: nothing
// can be in flight for them after a restart.
func (c *Cache) Import(results []Result) {
	items := make(map[Key]Result, len(results))
	for _, r := range results {
		if r.State == StatePending {
			continue
		}
		items[r.Key()] = r
	}
	c.results.Load(items)
}

func (c *Cache) unseal(ctx context.Context, key Key, valueType fhe.ValueType) Result {
	start := time.Now()
	value, err := c.oracle.Unseal(ctx, key.Handle, valueType, key.Account)
	metrics.OracleLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.OracleCalls.WithLabelValues("error").Inc()
		c.logs.Errorw("unseal failed",
			"error", err,
			"handle", key.Handle.String(),
			"account", key.Account.Hex())
		return Result{
			Handle:  key.Handle,
			Account: key.Account,
			Type:    valueType,
			Error:   err.Error(),
			State:   StateError,
		}
	}

	metrics.OracleCalls.WithLabelValues("success").Inc()
	c.logs.Debugw("handle unsealed", "handle", key.Handle.String(), "account", key.Account.Hex())
	return Result{
		Handle:  key.Handle,
		Account: key.Account,
		Type:    valueType,
		Value:   &value,
		State:   StateSuccess,
	}
}

func zeroResult(valueType fhe.ValueType, account common.Address) Result {
	zero := fhe.ZeroValue(valueType)
	return Result{
		Account: account,
		Type:    valueType,
		Value:   &zero,
		State:   StateSuccess,
	}
}
