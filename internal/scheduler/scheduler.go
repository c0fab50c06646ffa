package scheduler

import (
	"context"
	"redactsync/internal/core"
	"redactsync/internal/metrics"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBalanceInterval  = 5 * time.Second
	DefaultClaimInterval    = 10 * time.Second
	DefaultValidateInterval = 60 * time.Second

	flushTimeout = 10 * time.Second
)

type Config struct {
	BalanceInterval  time.Duration
	ClaimInterval    time.Duration
	ValidateInterval time.Duration
}

// Scheduler runs the balance tick, the pending-claim poll and the claim
// validation sweep for the current session.
type Scheduler struct {
	logs   *zap.SugaredLogger
	syncer Syncer
	gate   *Gate
	cfg    Config

	wake    chan struct{}
	flushMu sync.Mutex

	cancel context.CancelFunc
	unsub  func()
	wg     sync.WaitGroup

	lastSession core.Session
	claimPairs  int
}

func NewScheduler(logger *zap.SugaredLogger, syncer Syncer, gate *Gate, cfg Config) *Scheduler {
	if cfg.BalanceInterval <= 0 {
		cfg.BalanceInterval = DefaultBalanceInterval
	}
	if cfg.ClaimInterval <= 0 {
		cfg.ClaimInterval = DefaultClaimInterval
	}
	if cfg.ValidateInterval <= 0 {
		cfg.ValidateInterval = DefaultValidateInterval
	}
	return &Scheduler{
		logs:   logger,
		syncer: syncer,
		gate:   gate,
		cfg:    cfg,
		wake:   make(chan struct{}, 1),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.unsub = s.syncer.OnPendingClaim(func() {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	})

	s.wg.Add(3)
	go s.run(ctx, s.cfg.BalanceInterval, s.balanceTick)
	go s.claimLoop(ctx)
	go s.run(ctx, s.cfg.ValidateInterval, s.validateTick)

	s.logs.Infow("scheduler started",
		"balanceInterval", s.cfg.BalanceInterval,
		"claimInterval", s.cfg.ClaimInterval,
		"validateInterval", s.cfg.ValidateInterval,
	)
}

// Stop ends every loop and writes pending changes one last time.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.wg.Wait()
	s.unsub()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	s.flush(ctx)

	s.logs.Infow("scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	defer s.wg.Done()

	tick(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx)
		}
	}
}

func (s *Scheduler) balanceTick(ctx context.Context) {
	session := s.syncer.Session()
	if !session.Valid() {
		return
	}

	if session != s.lastSession {
		if err := s.syncer.RefreshPairs(ctx); err != nil {
			s.logs.Errorw("failed to refresh token pairs", "error", err, "chain", session.Chain)
		} else {
			s.lastSession = session
			s.claimPairs = -1
		}
	}

	// Claims are read again whenever a confidential pair appears or goes.
	if session == s.lastSession {
		if pairs := s.syncer.ConfidentialPairs(); pairs != s.claimPairs {
			if err := s.syncer.FetchClaims(ctx); err != nil {
				s.logs.Errorw("failed to fetch claims", "error", err, "chain", session.Chain)
			} else {
				s.claimPairs = pairs
			}
		}
	}

	if s.gate != nil && s.gate.Held() {
		metrics.SchedulerTicks.WithLabelValues("balances", "skipped").Inc()
		return
	}

	if err := s.syncer.RefreshBalances(ctx); err != nil {
		metrics.SchedulerTicks.WithLabelValues("balances", "error").Inc()
		s.logs.Errorw("failed to refresh balances", "error", err, "chain", session.Chain, "account", session.Account.Hex())
		return
	}
	metrics.SchedulerTicks.WithLabelValues("balances", "ok").Inc()
	s.flush(ctx)
}

// claimLoop polls pending claims and idles while there are none, until the
// ledger reports a new pending claim.
func (s *Scheduler) claimLoop(ctx context.Context) {
	defer s.wg.Done()

	timer := time.NewTimer(s.cfg.ClaimInterval)
	defer timer.Stop()

	for {
		if !s.syncer.HasPendingClaims() {
			select {
			case <-ctx.Done():
				return
			case <-s.wake:
			}
			timer.Reset(s.cfg.ClaimInterval)
		}

		select {
		case <-ctx.Done():
			return
		case <-s.wake:
			continue
		case <-timer.C:
		}

		remaining, err := s.syncer.RefreshPendingClaims(ctx)
		if err != nil {
			metrics.SchedulerTicks.WithLabelValues("claims", "error").Inc()
			s.logs.Errorw("failed to refetch pending claims", "error", err)
		} else {
			metrics.SchedulerTicks.WithLabelValues("claims", "ok").Inc()
			s.flush(ctx)
		}
		if remaining == 0 {
			s.logs.Debugw("no pending claims left, claim poll idle")
		}
		timer.Reset(s.cfg.ClaimInterval)
	}
}

func (s *Scheduler) validateTick(ctx context.Context) {
	if !s.syncer.Session().Valid() {
		return
	}

	report, err := s.syncer.ValidateClaims(ctx)
	if err != nil {
		metrics.SchedulerTicks.WithLabelValues("validate", "error").Inc()
		s.logs.Errorw("failed to validate claims", "error", err)
		return
	}
	metrics.SchedulerTicks.WithLabelValues("validate", "ok").Inc()
	if report.Removed > 0 || report.Updated > 0 {
		s.flush(ctx)
	}
}

func (s *Scheduler) flush(ctx context.Context) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if _, err := s.syncer.Flush(ctx); err != nil {
		s.logs.Errorw("failed to persist state", "error", err)
	}
}
