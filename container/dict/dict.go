package dict

import (
	"github.com/eaugeas/ordered/container/tree"
	errs "github.com/eaugeas/ordered/errors"
	"github.com/eaugeas/ordered/logs"
	stderr "github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrKeyNotFound is returned by Get and Delete when the key
// is not in the dictionary
var ErrKeyNotFound = errs.New(errs.ErrCodeKeyNotFound, "key not found")

// pair is an entry of the dictionary. Pairs are ordered
// by key only
type pair[K, V any] struct {
	key   K
	value V
}

type pairLesser[K, V any] struct {
	keys tree.Lesser[K]
}

func (l pairLesser[K, V]) Less(a, b pair[K, V]) int {
	return l.keys.Less(a.key, b.key)
}

// Dict is a dictionary that keeps its entries sorted by key
// on top of an AVL tree. A Dict is not safe for concurrent use
type Dict[K, V any] struct {
	entries *tree.Tree[pair[K, V]]
	log     logs.Logger
}

// New creates a dictionary for keys with a natural order
func New[K constraints.Ordered, V any]() *Dict[K, V] {
	return NewWithLesser[K, V](tree.OrderedLesser[K]{})
}

// NewWithLesser creates a dictionary that orders keys with keys
func NewWithLesser[K, V any](keys tree.Lesser[K]) *Dict[K, V] {
	return NewWithOpts[K, V](keys, tree.Opts{})
}

// NewWithOpts creates a dictionary that orders keys with keys. The
// entries are always kept in an AVL tree, so opts.Kind is ignored
func NewWithOpts[K, V any](keys tree.Lesser[K], opts tree.Opts) *Dict[K, V] {
	if opts.Logger == nil {
		opts.Logger = logs.NewDiscardLogger()
	}

	return &Dict[K, V]{
		entries: tree.NewAVLTreeWithOpts[pair[K, V]](pairLesser[K, V]{keys: keys}, opts),
		log:     opts.Logger.ForClass("dict", "Dict"),
	}
}

// Add associates value to key. If key is already present its
// value is overwritten
func (d *Dict[K, V]) Add(key K, value V) {
	d.entries.Insert(pair[K, V]{key: key, value: value})
}

// ContainsKey returns true if the dictionary has an entry for key
func (d *Dict[K, V]) ContainsKey(key K) bool {
	return d.entries.Contains(pair[K, V]{key: key})
}

func (d *Dict[K, V]) errKeyNotFound(key K) error {
	if d.log.IsLevelEnabled(logs.DebugLevel) {
		d.log.Debug("key not found", logs.MapFields{
			"key":        key,
			"error_code": ErrKeyNotFound.ErrorCode,
		})
	}

	return stderr.Wrapf(ErrKeyNotFound, "key '%v' does not exist in the dictionary", key)
}

// Get returns the value associated to key. It returns
// ErrKeyNotFound if there is none
func (d *Dict[K, V]) Get(key K) (V, error) {
	if !d.ContainsKey(key) {
		var zero V
		return zero, d.errKeyNotFound(key)
	}

	// an equal key is its own ceiling
	p, _ := d.entries.Ceil(pair[K, V]{key: key})
	return p.value, nil
}

// Delete removes the entry for key and returns the value it had.
// It returns ErrKeyNotFound if there is none
func (d *Dict[K, V]) Delete(key K) (V, error) {
	if !d.ContainsKey(key) {
		var zero V
		return zero, d.errKeyNotFound(key)
	}

	placeholder := pair[K, V]{key: key}
	p, _ := d.entries.Ceil(placeholder)
	d.entries.Delete(placeholder)
	return p.value, nil
}

// Len returns the number of entries
func (d *Dict[K, V]) Len() int {
	return d.entries.Len()
}

// Empty returns true if the dictionary has no entries
func (d *Dict[K, V]) Empty() bool {
	return d.entries.Empty()
}

// Keys returns the keys in ascending order
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.entries.Len())
	for p := range d.entries.All() {
		keys = append(keys, p.key)
	}
	return keys
}

// Values returns the values in ascending order of their keys
func (d *Dict[K, V]) Values() []V {
	values := make([]V, 0, d.entries.Len())
	for p := range d.entries.All() {
		values = append(values, p.value)
	}
	return values
}

// Range calls fn for every entry in ascending order of keys
// until fn returns false. The dictionary must not be modified
// from fn
func (d *Dict[K, V]) Range(fn func(key K, value V) bool) {
	for p := range d.entries.All() {
		if !fn(p.key, p.value) {
			return
		}
	}
}
