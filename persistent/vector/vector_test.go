package vector_test

import (
	"testing"

	"github.com/npillmayer/pvec/persistent/vector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyVector(t *testing.T) {
	v := vector.Empty[int]()
	assert.Equal(t, 0, v.Len())
	_, err := v.Get(0)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Update(0, 1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Pop()
	assert.ErrorIs(t, err, vector.ErrEmptyCollection)
	assert.True(t, v.Last().IsNothing())
	assert.True(t, v.First().IsNothing())
	assert.NoError(t, v.Check())
	assert.Equal(t, 32, v.Degree())
}

func TestZeroValueIsUsable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	v := vector.Vector[string]{}.Push("a").Push("b")
	require.Equal(t, 2, v.Len())
	x, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", x)
}

func TestPushFiveAndPopAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	v := vector.Immutable[int](vector.BitsPerLevel(2))
	for i := 1; i <= 5; i++ {
		v = v.Push(i)
	}
	require.Equal(t, 5, v.Len())
	x, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	x, err = v.Get(4)
	require.NoError(t, err)
	assert.Equal(t, 5, x)
	//
	for n := 4; n >= 0; n-- {
		v, err = v.Pop()
		require.NoError(t, err)
		require.Equal(t, n, v.Len())
		require.NoError(t, v.Check())
		for i := 0; i < n; i++ {
			x, err = v.Get(i)
			require.NoError(t, err)
			assert.Equal(t, i+1, x, "item %d after pop to length %d", i, n)
		}
	}
	_, err = v.Pop()
	assert.ErrorIs(t, err, vector.ErrEmptyCollection)
}

func TestUpdateLeavesOriginalIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	v1 := vector.Immutable[int]()
	for i := 0; i <= 100; i++ {
		v1 = v1.Push(i)
	}
	v2, err := v1.Update(50, 999)
	require.NoError(t, err)
	x, _ := v1.Get(50)
	assert.Equal(t, 50, x)
	x, _ = v2.Get(50)
	assert.Equal(t, 999, x)
	for i := 0; i <= 100; i++ {
		if i == 50 {
			continue
		}
		a, _ := v1.Get(i)
		b, _ := v2.Get(i)
		require.Equal(t, a, b, "index %d", i)
	}
	require.NoError(t, v2.Check())
}

func TestBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	v := vector.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, vector.BitsPerLevel(2))
	for _, i := range []int{-1, 9, 10, 1000} {
		_, err := v.Get(i)
		assert.ErrorIs(t, err, vector.ErrIndexOutOfRange, "Get(%d)", i)
		w, err := v.Update(i, 0)
		assert.ErrorIs(t, err, vector.ErrIndexOutOfRange, "Update(%d)", i)
		assert.Equal(t, v.Len(), w.Len())
	}
	var x int
	var err error
	switch m := v.Lookup(9).Match(); m {
	case m.Ok(&x):
		t.Errorf("expected Lookup(9) to fail, is Ok(%d)", x)
	case m.Err(&err):
		assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	}
	assert.Equal(t, 9, v.Lookup(8).WithDefault(-1))
}

func TestPushPopInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	for _, bits := range []int{1, 2, 5} {
		v := vector.Immutable[int](vector.BitsPerLevel(bits))
		for n := 0; n < 300; n++ {
			w, err := v.Push(-1).Pop()
			require.NoError(t, err)
			require.Equal(t, v.Len(), w.Len())
			require.NoError(t, w.Check())
			assert.Equal(t, v.ToSlice(), w.ToSlice())
			v = v.Push(n)
		}
	}
}

func TestFirstLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	v := vector.FromSlice(seq(0, 70), vector.BitsPerLevel(3))
	var x int
	switch m := v.Last().Match(); m {
	case m.Just(&x):
	case m.Nothing():
		t.Error("expected non-empty vector to have a last item")
	}
	assert.Equal(t, 69, x)
	assert.Equal(t, 0, v.First().WithDefault(-1))
}

func TestPersistenceOfAllVersions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pvec.vector")
	defer teardown()
	//
	versions := []vector.Vector[int]{vector.Immutable[int](vector.BitsPerLevel(2))}
	for i := 0; i < 200; i++ {
		versions = append(versions, versions[len(versions)-1].Push(i))
	}
	popped := versions[len(versions)-1]
	for i := 0; i < 120; i++ {
		var err error
		popped, err = popped.Pop()
		require.NoError(t, err)
		w, err := popped.Update(popped.Len()/2, -i)
		require.NoError(t, err)
		require.NoError(t, w.Check())
	}
	for n, v := range versions {
		require.Equal(t, n, v.Len())
		require.NoError(t, v.Check())
		assert.Equal(t, seq(0, n), v.ToSlice(), "version %d", n)
	}
}

// ---------------------------------------------------------------------------

func seq(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}
