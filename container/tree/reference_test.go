package tree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	refOps      = 20000
	refValRange = 2000
)

// reference keeps the same set of values in two independent
// ordered containers that the trees are checked against
type reference struct {
	set *btree.BTreeG[int]
	rb  *redblacktree.Tree
}

func newReference() *reference {
	return &reference{
		set: btree.NewOrderedG[int](16),
		rb:  redblacktree.NewWithIntComparator(),
	}
}

func (r *reference) insert(v int) bool {
	_, replaced := r.set.ReplaceOrInsert(v)
	r.rb.Put(v, struct{}{})
	return !replaced
}

func (r *reference) delete(v int) bool {
	_, deleted := r.set.Delete(v)
	r.rb.Remove(v)
	return deleted
}

func (r *reference) values() []int {
	values := make([]int, 0, r.set.Len())
	r.set.Ascend(func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (r *reference) successor(v int) (res int, ok bool) {
	r.set.AscendGreaterOrEqual(v+1, func(item int) bool {
		res, ok = item, true
		return false
	})
	return res, ok
}

func (r *reference) predecessor(v int) (res int, ok bool) {
	r.set.DescendLessOrEqual(v-1, func(item int) bool {
		res, ok = item, true
		return false
	})
	return res, ok
}

func (r *reference) ceil(v int) (int, bool) {
	n, ok := r.rb.Ceiling(v)
	if !ok {
		return 0, false
	}
	return n.Key.(int), true
}

func (r *reference) floor(v int) (int, bool) {
	n, ok := r.rb.Floor(v)
	if !ok {
		return 0, false
	}
	return n.Key.(int), true
}

func assertQueriesMatch(t *testing.T, tree *Tree[int], ref *reference, rg *rand.Rand) {
	t.Helper()
	for i := 0; i < 50; i++ {
		key := rg.Intn(refValRange+20) - 10

		expected, ok := ref.successor(key)
		v, err := tree.Successor(key)
		if ok {
			assert.NoError(t, err)
			assert.Equal(t, expected, v, "successor of %d", key)
		} else {
			assert.Error(t, err, "successor of %d", key)
		}

		expected, ok = ref.predecessor(key)
		v, err = tree.Predecessor(key)
		if ok {
			assert.NoError(t, err)
			assert.Equal(t, expected, v, "predecessor of %d", key)
		} else {
			assert.Error(t, err, "predecessor of %d", key)
		}

		expected, ok = ref.ceil(key)
		v, found := tree.Ceil(key)
		assert.Equal(t, ok, found, "ceil of %d", key)
		assert.Equal(t, expected, v, "ceil of %d", key)

		expected, ok = ref.floor(key)
		v, found = tree.Floor(key)
		assert.Equal(t, ok, found, "floor of %d", key)
		assert.Equal(t, expected, v, "floor of %d", key)
	}
}

func TestTreeMatchesReference(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			rg := rand.New(rand.NewSource(0))
			tree := newTree(t, kind)
			ref := newReference()

			for i := 0; i < refOps; i++ {
				v := rg.Intn(refValRange)
				if rg.Intn(3) == 0 {
					require.Equal(t, ref.delete(v), tree.Delete(v), "delete %d", v)
				} else {
					require.Equal(t, ref.insert(v), tree.Insert(v), "insert %d", v)
				}
				require.Equal(t, ref.set.Len(), tree.Len())

				if kind == KindAVL {
					require.True(t, tree.Balanced(), "after operation %d", i)
				}

				if i%1000 == 0 {
					assert.Equal(t, ref.values(), tree.ToSlice())
					assertQueriesMatch(t, tree, ref, rg)
				}
			}

			assert.Equal(t, ref.values(), tree.ToSlice())
			assertQueriesMatch(t, tree, ref, rg)
			assertTreeInvariants(t, tree)

			if kind == KindAVL {
				bound := 2 * math.Log2(float64(tree.Len()+1))
				assert.LessOrEqual(t, float64(tree.Height()), bound)
			}

			if min, ok := ref.set.Min(); ok {
				v, err := tree.Min()
				assert.NoError(t, err)
				assert.Equal(t, min, v)
			}
			if max, ok := ref.set.Max(); ok {
				v, err := tree.Max()
				assert.NoError(t, err)
				assert.Equal(t, max, v)
			}
		})
	}
}

func TestTreeRemoveAbsentIsIdempotent(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			rg := rand.New(rand.NewSource(1))
			tree := newTree(t, kind)
			for i := 0; i < 500; i++ {
				tree.Insert(rg.Intn(1000) * 2)
			}

			before := tree.ToSlice()
			for i := 0; i < 500; i++ {
				assert.False(t, tree.Delete(rg.Intn(1000)*2+1))
			}

			assert.Equal(t, len(before), tree.Len())
			assert.Equal(t, before, tree.ToSlice())
		})
	}
}
