package cache_test

import (
	"redactsync/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cache", func() {
	var (
		c      *cache.Cache[string, int]
		events []cache.Event[string, int]
		unsub  func()
	)

	BeforeEach(func() {
		c = cache.New[string, int]()
		events = nil
		unsub = c.Subscribe(func(ev cache.Event[string, int]) {
			events = append(events, ev)
		})
	})

	It("should replace whole records and notify subscribers", func() {
		c.Set("a", 1)
		c.Set("a", 2)

		v, ok := c.Get("a")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(2))
		Expect(events).To(Equal([]cache.Event[string, int]{
			{Key: "a", Value: 1},
			{Key: "a", Value: 2},
		}))
	})

	It("should notify deletes only for present keys", func() {
		c.Set("a", 1)
		Expect(c.Delete("a")).To(BeTrue())
		Expect(c.Delete("a")).To(BeFalse())

		Expect(events).To(HaveLen(2))
		Expect(events[1]).To(Equal(cache.Event[string, int]{Key: "a", Value: 1, Deleted: true}))
	})

	It("should delete by predicate", func() {
		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)

		removed := c.DeleteFunc(func(_ string, v int) bool { return v%2 == 1 })
		Expect(removed).To(ConsistOf("a", "c"))
		Expect(c.Len()).To(Equal(1))
	})

	It("should stop notifying after unsubscribe", func() {
		unsub()
		c.Set("a", 1)
		Expect(events).To(BeEmpty())
	})

	It("should load without notifying", func() {
		c.Load(map[string]int{"x": 9})
		Expect(events).To(BeEmpty())
		Expect(c.Snapshot()).To(Equal(map[string]int{"x": 9}))
	})
})
