package cache_test

import (
	"time"

	"github.com/mgnsk/intrusive/cache"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var _ = Describe("setting values", func() {
	var c *cache.Cache[string, string]

	BeforeEach(func() {
		c = cache.New[string, string]()
	})

	AfterEach(func() {
		Expect(c.Close()).To(Succeed())
		Expect(c.Len()).To(BeZero())
	})

	When("value exists", func() {
		Specify("it is overwritten", func() {
			replaced, err := c.Set("key", "value")
			Expect(err).NotTo(HaveOccurred())
			Expect(replaced).To(BeFalse())
			Expect(c.Len()).To(Equal(1))

			replaced, err = c.Set("key", "newValue")
			Expect(err).NotTo(HaveOccurred())
			Expect(replaced).To(BeTrue())
			Expect(c.Len()).To(Equal(1))

			value, ok := c.Get("key")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("newValue"))
		})
	})

	When("the cache is closed", func() {
		Specify("setting fails", func() {
			Expect(c.Close()).To(Succeed())

			_, err := c.Set("key", "value")
			Expect(err).To(MatchError(cache.ErrClosed))
		})
	})
})

var _ = Describe("evicting values", func() {
	var c *cache.Cache[int, int]

	BeforeEach(func() {
		c = cache.New[int, int]()
		for i := 0; i < 5; i++ {
			_, err := c.Set(i, i*10)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		Expect(c.Close()).To(Succeed())
	})

	Specify("an arbitrary key is evicted", func() {
		value, ok := c.Evict(2)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(20))
		Expect(c.Exists(2)).To(BeFalse())
		Expect(c.Keys()).To(Equal([]int{0, 1, 3, 4}))
	})

	Specify("a missing key is not evicted", func() {
		_, ok := c.Evict(100)
		Expect(ok).To(BeFalse())
		Expect(c.Len()).To(Equal(5))
	})
})

var _ = Describe("capacity overflow", func() {
	var (
		c    *cache.Cache[int, int]
		hook *test.Hook
	)

	DescribeTable(
		"eviction order",
		func(policy cache.Policy, expected []int) {
			var logger *logrus.Logger
			logger, hook = test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			c = cache.New[int, int](
				cache.WithCapacity(3),
				cache.WithPolicy(policy),
				cache.WithLogger(logger),
			)
			defer c.Close()

			for i := 0; i < 3; i++ {
				_, err := c.Set(i, i)
				Expect(err).NotTo(HaveOccurred())
			}

			// Touch the oldest key.
			Expect(c.Exists(0)).To(BeTrue())

			_, err := c.Set(3, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Len()).To(Equal(3))
			Expect(c.Keys()).To(Equal(expected))
			Expect(hook.LastEntry().Data).To(HaveKeyWithValue("reason", "capacity"))
			Expect(hook.LastEntry().Data).To(HaveKeyWithValue("component", "cache"))
		},
		Entry("FIFO", cache.FIFO, []int{1, 2, 3}),
		Entry("LRU", cache.LRU, []int{2, 0, 3}),
	)
})

var _ = Describe("autoexpiry", func() {
	var c *cache.Cache[string, string]

	BeforeEach(func() {
		c = cache.New[string, string](cache.WithTTL(20 * time.Millisecond))
	})

	AfterEach(func() {
		Expect(c.Close()).To(Succeed())
	})

	Specify("value with non-zero TTL will be evicted", func() {
		_, err := c.Set("key", "value")
		Expect(err).NotTo(HaveOccurred())

		_, err = c.SetTTL("forever", "value", 0)
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() int {
			return c.Len()
		}).Should(Equal(1))

		Expect(c.Exists("key")).To(BeFalse())
		Expect(c.Exists("forever")).To(BeTrue())
	})
})

var _ = Describe("invalid options", func() {
	Specify("an unknown policy panics", func() {
		Expect(func() {
			cache.New[int, int](cache.WithPolicy("random"))
		}).To(Panic())
	})

	Specify("a negative capacity panics", func() {
		Expect(func() {
			cache.New[int, int](cache.WithCapacity(-1))
		}).To(Panic())
	})
})
