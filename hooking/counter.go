package hooking

import (
	"sync"

	"github.com/sarchlab/adder"
)

// AdditionCount is the number of additions an Adder has performed.
type AdditionCount struct {
	Name      string `json:"name"`
	Additions uint64 `json:"additions"`
	Overflows uint64 `json:"overflows"`
}

// AdditionCounter counts the additions performed by each hooked Adder.
type AdditionCounter struct {
	lock   sync.Mutex
	names  []string
	counts map[string]*AdditionCount
}

// NewAdditionCounter creates a new AdditionCounter.
func NewAdditionCounter() *AdditionCounter {
	return &AdditionCounter{
		counts: make(map[string]*AdditionCount),
	}
}

// Func counts the addition if it is completed.
func (c *AdditionCounter) Func(ctx adder.HookCtx) {
	if ctx.Pos != adder.HookPosAfterAdd {
		return
	}

	addition, ok := ctx.Item.(adder.Addition)
	if !ok {
		return
	}

	name := domainName(ctx.Domain)

	c.lock.Lock()
	defer c.lock.Unlock()

	count, found := c.counts[name]
	if !found {
		count = &AdditionCount{Name: name}
		c.counts[name] = count
		c.names = append(c.names, name)
	}

	count.Additions++
	if addition.Overflowed() {
		count.Overflows++
	}
}

// Count returns the count of the Adder with the given name.
func (c *AdditionCounter) Count(name string) AdditionCount {
	c.lock.Lock()
	defer c.lock.Unlock()

	count, found := c.counts[name]
	if !found {
		return AdditionCount{Name: name}
	}

	return *count
}

// Snapshot returns the counts of all Adders, in the order they are first
// seen.
func (c *AdditionCounter) Snapshot() []AdditionCount {
	c.lock.Lock()
	defer c.lock.Unlock()

	counts := make([]AdditionCount, 0, len(c.names))
	for _, name := range c.names {
		counts = append(counts, *c.counts[name])
	}

	return counts
}

// Total returns the number of additions across all Adders.
func (c *AdditionCounter) Total() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	var total uint64
	for _, count := range c.counts {
		total += count.Additions
	}

	return total
}
