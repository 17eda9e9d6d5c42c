package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-gamekit/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("play")
	assert.Equal(t, "play_1", gen.Generate())
	assert.Equal(t, "play_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("play")
	a, b := gen.Generate(), gen.Generate()
	assert.True(t, strings.HasPrefix(a, "play_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}

func TestUUIDGenerator_TimeOrdered(t *testing.T) {
	gen := idgen.NewUUID("")
	id, err := uuid.Parse(gen.Generate())
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSequentialGenerator_Concurrent(t *testing.T) {
	gen := idgen.NewSequential("play")

	var wg sync.WaitGroup
	ids := make(chan string, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}
