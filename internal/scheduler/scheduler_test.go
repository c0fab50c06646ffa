package scheduler_test

import (
	"context"
	"errors"
	"redactsync/internal/claim"
	"redactsync/internal/core"
	"redactsync/internal/scheduler"
	"redactsync/internal/scheduler/fake"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		sched      *scheduler.Scheduler
		fakeSyncer *fake.Syncer
		gate       *scheduler.Gate
		cfg        scheduler.Config
		session    core.Session

		wakeMu sync.Mutex
		wake   func()
	)

	BeforeEach(func() {
		session = core.Session{
			Chain:   11155111,
			Account: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		}
		fakeSyncer = new(fake.Syncer)
		fakeSyncer.SessionStub = func() core.Session { return session }
		fakeSyncer.OnPendingClaimStub = func(fn func()) func() {
			wakeMu.Lock()
			defer wakeMu.Unlock()
			wake = fn
			return func() {}
		}
		gate = scheduler.NewGate(time.Minute)
		cfg = scheduler.Config{
			BalanceInterval:  10 * time.Millisecond,
			ClaimInterval:    10 * time.Millisecond,
			ValidateInterval: time.Hour,
		}
	})

	JustBeforeEach(func() {
		sched = scheduler.NewScheduler(zap.NewNop().Sugar(), fakeSyncer, gate, cfg)
		sched.Start(context.Background())
	})

	AfterEach(func() {
		sched.Stop()
	})

	Describe("balance tick", func() {
		It("should list pairs and fetch claims once per session and refresh balances every tick", func() {
			Eventually(fakeSyncer.RefreshBalancesCallCount).Should(BeNumerically(">=", 3))
			Expect(fakeSyncer.RefreshPairsCallCount()).To(Equal(1))
			Expect(fakeSyncer.FetchClaimsCallCount()).To(Equal(1))
			Expect(fakeSyncer.FlushCallCount()).To(BeNumerically(">=", 1))
		})

		When("no account is connected", func() {
			BeforeEach(func() {
				session = core.Session{}
			})

			It("should not touch the chain", func() {
				Consistently(fakeSyncer.RefreshBalancesCallCount, 50*time.Millisecond).Should(BeZero())
				Expect(fakeSyncer.ValidateClaimsCallCount()).To(BeZero())
			})
		})

		When("listing pairs fails", func() {
			BeforeEach(func() {
				var calls atomic.Int32
				fakeSyncer.RefreshPairsStub = func(context.Context) error {
					if calls.Add(1) == 1 {
						return errors.New("registry unreachable")
					}
					return nil
				}
			})

			It("should retry on the next tick before fetching claims", func() {
				Eventually(fakeSyncer.RefreshPairsCallCount).Should(Equal(2))
				Eventually(fakeSyncer.FetchClaimsCallCount).Should(Equal(1))
				Consistently(fakeSyncer.RefreshPairsCallCount, 50*time.Millisecond).Should(Equal(2))
			})
		})

		When("a confidential pair is added mid-session", func() {
			var pairs atomic.Int32

			BeforeEach(func() {
				pairs.Store(1)
				fakeSyncer.ConfidentialPairsStub = func() int { return int(pairs.Load()) }
			})

			It("should fetch claims again", func() {
				Eventually(fakeSyncer.FetchClaimsCallCount).Should(Equal(1))
				Consistently(fakeSyncer.FetchClaimsCallCount, 50*time.Millisecond).Should(Equal(1))

				pairs.Store(2)
				Eventually(fakeSyncer.FetchClaimsCallCount).Should(Equal(2))
			})
		})

		When("a transaction awaits confirmation", func() {
			BeforeEach(func() {
				gate.Hold("0xabc")
			})

			It("should skip balance refreshes until it is released", func() {
				Eventually(fakeSyncer.RefreshPairsCallCount).Should(Equal(1))
				Consistently(fakeSyncer.RefreshBalancesCallCount, 50*time.Millisecond).Should(BeZero())

				gate.Release("0xabc")
				Eventually(fakeSyncer.RefreshBalancesCallCount).Should(BeNumerically(">=", 1))
			})
		})
	})

	Describe("claim poll", func() {
		It("should stay idle without pending claims and resume when one appears", func() {
			Consistently(fakeSyncer.RefreshPendingClaimsCallCount, 50*time.Millisecond).Should(BeZero())

			fakeSyncer.HasPendingClaimsReturns(true)
			fakeSyncer.RefreshPendingClaimsReturns(1, nil)
			wakeMu.Lock()
			notify := wake
			wakeMu.Unlock()
			notify()

			Eventually(fakeSyncer.RefreshPendingClaimsCallCount).Should(BeNumerically(">=", 2))
		})
	})

	Describe("validation sweep", func() {
		It("should validate on start", func() {
			Eventually(fakeSyncer.ValidateClaimsCallCount).Should(Equal(1))
		})

		When("the sweep changes the ledger", func() {
			BeforeEach(func() {
				fakeSyncer.ValidateClaimsReturns(claim.PruneReport{Checked: 2, Removed: 1}, nil)
				cfg.BalanceInterval = time.Hour
			})

			It("should flush", func() {
				Eventually(fakeSyncer.ValidateClaimsCallCount).Should(Equal(1))
				// one flush from the first balance tick, one from the sweep
				Eventually(fakeSyncer.FlushCallCount).Should(Equal(2))
			})
		})
	})

	Describe("Stop", func() {
		It("should flush a last time", func() {
			Eventually(fakeSyncer.FlushCallCount).Should(BeNumerically(">=", 1))
			sched.Stop()
			before := fakeSyncer.FlushCallCount()
			Expect(before).To(BeNumerically(">=", 2))
		})
	})
})

var _ = Describe("Gate", func() {
	var (
		gate *scheduler.Gate
		now  time.Time
	)

	BeforeEach(func() {
		now = time.Unix(1_700_000_000, 0)
		gate = scheduler.NewGate(time.Minute)
		gate.TimeNow = func() time.Time { return now }
	})

	It("should be held until every hold is released", func() {
		Expect(gate.Held()).To(BeFalse())
		gate.Hold("a")
		gate.Hold("b")
		gate.Release("a")
		Expect(gate.Held()).To(BeTrue())
		gate.Release("b")
		Expect(gate.Held()).To(BeFalse())
	})

	It("should expire a hold that is never released", func() {
		gate.Hold("a")
		now = now.Add(2 * time.Minute)
		Expect(gate.Held()).To(BeFalse())
	})
})
