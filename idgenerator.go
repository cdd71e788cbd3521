package adder

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var (
	idGeneratorMutex sync.Mutex
	idGenerator      IDGenerator
)

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

// UseSequentialIDGenerator configures the ID generator to generate IDs in
// sequential.
func UseSequentialIDGenerator() {
	setIDGenerator(&sequentialIDGenerator{})
}

// UseParallelIDGenerator configures the ID generator to generate globally
// unique IDs. The IDs generated will not be deterministic anymore.
func UseParallelIDGenerator() {
	setIDGenerator(parallelIDGenerator{})
}

func setIDGenerator(g IDGenerator) {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if idGenerator != nil {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = g
}

// SelectIDGenerator picks the parallel generator if parallel is set and the
// sequential one otherwise. It fails if IDs have already been generated by a
// generator of the other kind.
func SelectIDGenerator(parallel bool) error {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	var want IDGenerator = &sequentialIDGenerator{}
	if parallel {
		want = parallelIDGenerator{}
	}

	if idGenerator == nil {
		idGenerator = want
		return nil
	}

	if reflect.TypeOf(idGenerator) != reflect.TypeOf(want) {
		return fmt.Errorf("id generator %T is already in use", idGenerator)
	}

	return nil
}

// GetIDGenerator returns the ID generator in use. A sequential generator is
// selected if none has been configured.
func GetIDGenerator() IDGenerator {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if idGenerator == nil {
		idGenerator = &sequentialIDGenerator{}
	}

	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

type parallelIDGenerator struct{}

func (parallelIDGenerator) Generate() string {
	return xid.New().String()
}
