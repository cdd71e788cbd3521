package adder

import (
	"math/rand"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Adder", func() {
	var (
		adder *Adder
	)

	BeforeEach(func() {
		adder = NewAdder("Adder")
	})

	AfterEach(func() {
		adder = nil
	})

	It("should have a name", func() {
		Expect(adder.Name()).To(Equal("Adder"))
	})

	It("should add positive numbers", func() {
		Expect(adder.Add(5, 3)).To(Equal(int32(8)))
	})

	It("should add negative numbers", func() {
		Expect(adder.Add(-7, -3)).To(Equal(int32(-10)))
	})

	It("should add zero", func() {
		Expect(adder.Add(5, 0)).To(Equal(int32(5)))
		Expect(adder.Add(-3, 0)).To(Equal(int32(-3)))
		Expect(adder.Add(0, 0)).To(Equal(int32(0)))
	})

	It("should add positive and negative numbers", func() {
		Expect(adder.Add(5, -3)).To(Equal(int32(2)))
		Expect(adder.Add(3, -5)).To(Equal(int32(-2)))
		Expect(adder.Add(4, -4)).To(Equal(int32(0)))
	})

	It("should add large numbers", func() {
		result := adder.Add(1000000, 2000000)

		Expect(result).To(BeNumerically(">", 0))
		Expect(result).To(Equal(int32(3000000)))
	})

	It("should add near the integer limit", func() {
		result := adder.Add(MaxInt-100, 50)

		Expect(result).To(BeNumerically("<", MaxInt))
		Expect(result).To(Equal(MaxInt - 50))
	})

	It("should be commutative", func() {
		Expect(adder.Add(15, 25)).To(Equal(adder.Add(25, 15)))
	})

	It("should handle multiple scenarios", func() {
		Expect(adder.Add(7, 3)).To(Equal(int32(10)))
		Expect(adder.Add(-2, -3)).To(Equal(int32(-5)))
		Expect(adder.Add(-4, 5)).To(Equal(int32(1)))
		Expect(adder.Add(10, 5)).To(BeNumerically(">", 0))
		Expect(adder.Add(1, 1)).NotTo(BeZero())
	})

	It("should return an int32", func() {
		Expect(adder.Add(1, 2)).To(BeAssignableToTypeOf(int32(0)))
	})

	It("should wrap around on overflow", func() {
		Expect(adder.Add(MaxInt, 1)).To(Equal(MinInt))
		Expect(adder.Add(MinInt, -1)).To(Equal(MaxInt))
		Expect(adder.Add(MaxInt, MaxInt)).To(Equal(int32(-2)))
	})

	It("should be safe to use concurrently", func() {
		var wg sync.WaitGroup
		results := make([]int32, 64)

		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = adder.Add(int32(i), int32(i))
			}(i)
		}
		wg.Wait()

		for i, r := range results {
			Expect(r).To(Equal(int32(2 * i)))
		}
	})
})

var _ = Describe("Add", func() {
	DescribeTable("literal cases",
		func(a, b, expected int32) {
			Expect(Add(a, b)).To(Equal(expected))
		},
		Entry("positive", int32(5), int32(3), int32(8)),
		Entry("negative", int32(-7), int32(-3), int32(-10)),
		Entry("mixed sign", int32(5), int32(-3), int32(2)),
		Entry("large", int32(1000000), int32(2000000), int32(3000000)),
		Entry("near max", MaxInt-100, int32(50), MaxInt-50),
		Entry("wraps past max", MaxInt, int32(1), MinInt),
		Entry("wraps past min", MinInt, int32(-1), MaxInt),
	)

	Context("properties", func() {
		var (
			samples []int32
		)

		BeforeEach(func() {
			r := rand.New(rand.NewSource(GinkgoRandomSeed()))

			samples = []int32{0, 1, -1, MaxInt, MinInt}
			for i := 0; i < 1000; i++ {
				samples = append(samples, int32(r.Uint32()))
			}
		})

		It("should be commutative", func() {
			for i := 1; i < len(samples); i++ {
				a, b := samples[i-1], samples[i]
				Expect(Add(a, b)).To(Equal(Add(b, a)))
			}
		})

		It("should have zero as identity", func() {
			for _, a := range samples {
				Expect(Add(a, 0)).To(Equal(a))
			}
		})

		It("should cancel out with the negation", func() {
			for _, a := range samples {
				Expect(Add(a, -a)).To(BeZero())
			}
		})
	})
})
