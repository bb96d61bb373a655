// Package hashx provides a chained hash table keyed by string with a bucket
// count fixed at construction. It backs the batch, vaccine-name and user
// indexes of the campaign store.
package hashx

type node[V any] struct {
	key  string
	val  V
	next *node[V]
}

// Index is a string-keyed chained hash table. The bucket count never changes
// after New; chains absorb any load. Within a bucket the most recently
// inserted entry is found first.
type Index[V any] struct {
	buckets []*node[V]
}

// New returns an empty index with the given bucket count. A non-positive
// size is raised to one bucket, which degrades the index to a linked list
// but keeps it correct.
func New[V any](size int) *Index[V] {
	if size < 1 {
		size = 1
	}
	return &Index[V]{buckets: make([]*node[V], size)}
}

// Hash reduces the djb2 string hash (h = h*33 + c, seeded 5381) modulo size.
func Hash(s string, size int) int {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return int(h % uint32(size))
}

func (ix *Index[V]) bucket(key string) int {
	return Hash(key, len(ix.buckets))
}

// Insert prepends the pair to its bucket chain. Keys are not deduplicated;
// callers that need unique keys must Lookup first.
func (ix *Index[V]) Insert(key string, val V) {
	b := ix.bucket(key)
	ix.buckets[b] = &node[V]{key: key, val: val, next: ix.buckets[b]}
}

// Lookup returns the most recently inserted value stored under key.
func (ix *Index[V]) Lookup(key string) (V, bool) {
	for n := ix.buckets[ix.bucket(key)]; n != nil; n = n.next {
		if n.key == key {
			return n.val, true
		}
	}
	var zero V
	return zero, false
}

// Delete unlinks the most recently inserted entry stored under key and
// reports whether one was found. Grouped indexes never call this; they
// shrink their group values in place instead.
func (ix *Index[V]) Delete(key string) bool {
	b := ix.bucket(key)
	var prev *node[V]
	for n := ix.buckets[b]; n != nil; prev, n = n, n.next {
		if n.key == key {
			if prev == nil {
				ix.buckets[b] = n.next
			} else {
				prev.next = n.next
			}
			return true
		}
	}
	return false
}
