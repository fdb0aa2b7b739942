package vector_test

import (
	"sync"
	"testing"

	"github.com/npillmayer/pvec/persistent/vector"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefZeroValue(t *testing.T) {
	var r vector.Ref[int]
	assert.Equal(t, 0, r.Load().Len())
	r.Store(vector.Of(1, 2))
	assert.Equal(t, []int{1, 2}, r.Load().ToSlice())
}

func TestRefConcurrentSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	tracing.Select("pvec.vector").SetTraceLevel(tracing.LevelError)
	//
	r := vector.NewRef(vector.Immutable[int](vector.BitsPerLevel(2)))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r.Swap(func(v vector.Vector[int]) vector.Vector[int] {
					return v.Push(g)
				})
			}
		}(g)
	}
	wg.Wait()
	v := r.Load()
	require.Equal(t, 8*200, v.Len())
	require.NoError(t, v.Check())
	counts := make(map[int]int)
	for x := range v.Values() {
		counts[x]++
	}
	for g := 0; g < 8; g++ {
		assert.Equal(t, 200, counts[g], "pushes of goroutine %d", g)
	}
}
