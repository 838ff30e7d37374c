package store

// The execution host meters every storage access, so the number of reads and
// writes a code path performs is part of its contract. CountingStore makes
// that number observable in tests.

// Ops is a tally of storage operations.
type Ops struct {
	Gets    int
	Has     int
	Sets    int
	Deletes int
}

// Total returns the overall number of storage operations.
func (o Ops) Total() int {
	return o.Gets + o.Has + o.Sets + o.Deletes
}

// CountingStore wraps a KVStore and counts every operation passing through.
type CountingStore struct {
	db  KVStore
	ops Ops
}

var _ KVStore = (*CountingStore)(nil)

// NewCountingStore wraps the given store.
func NewCountingStore(db KVStore) *CountingStore {
	return &CountingStore{db: db}
}

// Ops returns the tally so far.
func (r *CountingStore) Ops() Ops {
	return r.ops
}

// Reset zeroes the tally.
func (r *CountingStore) Reset() {
	r.ops = Ops{}
}

func (r *CountingStore) Get(key []byte) ([]byte, error) {
	r.ops.Gets++
	return r.db.Get(key)
}

func (r *CountingStore) Has(key []byte) (bool, error) {
	r.ops.Has++
	return r.db.Has(key)
}

func (r *CountingStore) Set(key, value []byte) error {
	r.ops.Sets++
	return r.db.Set(key, value)
}

func (r *CountingStore) Delete(key []byte) error {
	r.ops.Deletes++
	return r.db.Delete(key)
}
