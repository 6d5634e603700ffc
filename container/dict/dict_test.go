package dict

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/eaugeas/ordered/container/tree"
	"github.com/eaugeas/ordered/logs"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictRoundTrip(t *testing.T) {
	d := New[string, int]()

	d.Add("a", 1)
	d.Add("b", 2)

	v, err := d.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = d.Delete("a")
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.False(t, d.ContainsKey("a"))
	assert.True(t, d.ContainsKey("b"))
	assert.Equal(t, 1, d.Len())
}

func TestDictAddOverwrites(t *testing.T) {
	d := New[string, int]()

	d.Add("a", 1)
	d.Add("a", 10)

	v, err := d.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, d.Len())
}

func TestDictGetErrKeyNotFound(t *testing.T) {
	d := New[string, int]()
	d.Add("b", 2)

	v, err := d.Get("a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 0, v)
	assert.Contains(t, err.Error(), "key 'a' does not exist in the dictionary")
}

func TestDictDeleteErrKeyNotFound(t *testing.T) {
	d := New[int, string]()
	d.Add(1, "one")

	_, err := d.Delete(2)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, d.Len())
}

func TestDictKeysValuesAscending(t *testing.T) {
	d := New[string, int]()
	for i, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		d.Add(k, i)
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, d.Keys())
	assert.Equal(t, []int{1, 3, 2, 0}, d.Values())
}

func TestDictEmpty(t *testing.T) {
	d := New[int, int]()

	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Keys())
	assert.Empty(t, d.Values())
}

func TestDictRangeStops(t *testing.T) {
	d := New[int, string]()
	d.Add(3, "c")
	d.Add(1, "a")
	d.Add(2, "b")

	var visited []string
	d.Range(func(k int, v string) bool {
		visited = append(visited, v)
		return k < 2
	})

	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestDictWithLesser(t *testing.T) {
	d := NewWithLesser[string, int](tree.LesserFunc[string](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}))

	d.Add("Key", 1)
	d.Add("key", 2)

	assert.Equal(t, 1, d.Len())
	v, err := d.Get("KEY")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"key"}, d.Keys())
}

func TestDictLogsKeyNotFound(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	d := NewWithOpts[string, int](tree.OrderedLesser[string]{}, tree.Opts{
		Kind:   tree.KindUnbalanced,
		Logger: logs.NewLogrusLogger(l),
	})

	_, err := d.Get("missing")
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "key not found", entry.Message)
	assert.Equal(t, "missing", entry.Data["key"])
	assert.Equal(t, "dict", entry.Data["package"])
}

func TestDictBalancedWithSortedKeys(t *testing.T) {
	d := NewWithOpts[int, int](tree.IntLesser{}, tree.Opts{Kind: tree.KindUnbalanced})
	for i := 0; i < 1024; i++ {
		d.Add(i, i)
	}

	assert.True(t, d.entries.Balanced())
	assert.LessOrEqual(t, d.entries.Height(), 20)
}

func TestDictMatchesReference(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	d := New[int, int]()
	ref := redblacktree.NewWithIntComparator()

	for i := 0; i < 10000; i++ {
		k := rg.Intn(500)
		switch rg.Intn(3) {
		case 0:
			_, found := ref.Get(k)
			v, err := d.Delete(k)
			if found {
				expected, _ := ref.Get(k)
				require.NoError(t, err)
				require.Equal(t, expected, v)
				ref.Remove(k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		default:
			d.Add(k, i)
			ref.Put(k, i)
		}
		require.Equal(t, ref.Size(), d.Len())
	}

	keys := make([]int, 0, ref.Size())
	values := make([]int, 0, ref.Size())
	for _, k := range ref.Keys() {
		v, _ := ref.Get(k)
		keys = append(keys, k.(int))
		values = append(values, v.(int))
	}

	assert.Equal(t, keys, d.Keys())
	assert.Equal(t, values, d.Values())
	for _, k := range keys {
		assert.True(t, d.ContainsKey(k))
	}
}
