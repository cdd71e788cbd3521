package hooking

import (
	"sync"

	"github.com/sarchlab/adder"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AdditionCounter", func() {
	var (
		counter *AdditionCounter
		a1, a2  *adder.Adder
	)

	BeforeEach(func() {
		counter = NewAdditionCounter()
		builder := adder.MakeBuilder().WithHook(counter)
		a1 = builder.Build("A1")
		a2 = builder.Build("A2")
	})

	It("should count per adder", func() {
		a1.Add(1, 2)
		a1.Add(3, 4)
		a2.Add(adder.MinInt, -1)

		Expect(counter.Count("A1")).To(Equal(
			AdditionCount{Name: "A1", Additions: 2}))
		Expect(counter.Count("A2")).To(Equal(
			AdditionCount{Name: "A2", Additions: 1, Overflows: 1}))
		Expect(counter.Total()).To(Equal(uint64(3)))
	})

	It("should list adders in the order they are seen", func() {
		a2.Add(1, 1)
		a1.Add(1, 1)

		snapshot := counter.Snapshot()

		Expect(snapshot).To(HaveLen(2))
		Expect(snapshot[0].Name).To(Equal("A2"))
		Expect(snapshot[1].Name).To(Equal("A1"))
	})

	It("should return an empty count for unknown adders", func() {
		Expect(counter.Count("none")).To(Equal(AdditionCount{Name: "none"}))
	})

	It("should count concurrent additions", func() {
		var wg sync.WaitGroup

		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				a1.Add(1, 1)
			}()
		}
		wg.Wait()

		Expect(counter.Count("A1").Additions).To(Equal(uint64(100)))
	})
})
