package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/randalmurphal/armory/pkg/armory/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name string
}

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Keys())
}

func TestRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	r.Register("one", 1)
	r.Register("two", 2)

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestRegisterPreservesIdentity(t *testing.T) {
	r := New[string, *item]()
	p := &item{name: "x"}

	r.Register("x", p)

	got, ok := r.Get("x")
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Same(t, p, r.Snapshot()["x"])
}

func TestRegisterOverwrite(t *testing.T) {
	r := New[string, *item]()
	first := &item{name: "first"}
	second := &item{name: "second"}

	r.Register("a", &item{})
	r.Register("x", first)
	r.Register("b", &item{})
	r.Register("x", second)

	assert.Equal(t, 3, r.Len())
	got, _ := r.Get("x")
	assert.Same(t, second, got)
	assert.Equal(t, []string{"a", "x", "b"}, r.Keys(), "overwrite keeps position")

	count := 0
	for k := range r.All() {
		if k == "x" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUnregister(t *testing.T) {
	r := New[string, int]()
	r.Register("x", 1)
	r.Register("y", 2)

	require.NoError(t, r.Unregister("x"))

	assert.False(t, r.Has("x"))
	assert.NotContains(t, r.Snapshot(), "x")
	assert.Equal(t, []string{"y"}, r.Keys())
}

func TestUnregisterMissing(t *testing.T) {
	r := New[string, int]()
	r.Register("x", 1)

	err := r.Unregister("missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.Key)
	assert.Equal(t, 1, r.Len())
}

func TestUnregisterTwice(t *testing.T) {
	r := New[string, int]()
	r.Register("x", 1)

	require.NoError(t, r.Unregister("x"))
	assert.True(t, errors.IsNotFound(r.Unregister("x")))
}

func TestUnregisterNonStringKey(t *testing.T) {
	r := New[int, string]()

	var nf *errors.NotFoundError
	require.ErrorAs(t, r.Unregister(42), &nf)
	assert.Equal(t, "42", nf.Key)
}

func TestReregisterAppends(t *testing.T) {
	r := New[string, int]()
	r.Register("a", 1)
	r.Register("b", 2)
	require.NoError(t, r.Unregister("a"))
	r.Register("a", 3)

	assert.Equal(t, []string{"b", "a"}, r.Keys())
}

func TestAllInsertionOrder(t *testing.T) {
	r := New[string, int]()
	names := []string{"iron", "wood", "steel", "stone", "diamond"}
	for i, n := range names {
		r.Register(n, i)
	}

	var keys []string
	var values []int
	for k, v := range r.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, names, keys)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, values)
}

func TestAllEarlyStop(t *testing.T) {
	r := New[string, int]()
	r.Register("one", 1)
	r.Register("two", 2)
	r.Register("three", 3)

	count := 0
	for range r.All() {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestAllEmpty(t *testing.T) {
	r := New[string, int]()

	called := false
	for range r.All() {
		called = true
	}

	assert.False(t, called)
}

func TestAllAllowsMutation(t *testing.T) {
	r := New[string, int]()
	r.Register("one", 1)
	r.Register("two", 2)
	r.Register("three", 3)

	var visited []string
	for k := range r.All() {
		visited = append(visited, k)
		require.NoError(t, r.Unregister(k))
		r.Register(k+"-new", 0)
	}

	assert.Equal(t, []string{"one", "two", "three"}, visited)
	assert.Equal(t, []string{"one-new", "two-new", "three-new"}, r.Keys())
}

func TestSnapshotIsDetached(t *testing.T) {
	r := New[string, int]()
	r.Register("x", 1)

	snap := r.Snapshot()
	r.Register("y", 2)
	snap["z"] = 3

	assert.Len(t, snap, 2)
	assert.False(t, r.Has("z"))
	assert.NotContains(t, snap, "y")
}

func TestKeysIsCopy(t *testing.T) {
	r := New[string, int]()
	r.Register("x", 1)

	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"x"}, r.Keys())
}

func TestConcurrentAccess(t *testing.T) {
	r := New[string, int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			r.Register(key, i)
			_, _ = r.Get(key)
			for range r.All() {
			}
			if i%2 == 0 {
				_ = r.Unregister(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, r.Len())
	assert.Len(t, r.Keys(), 25)
}
