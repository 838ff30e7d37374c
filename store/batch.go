package store

import "github.com/tresornet/tresor/errors"

type opKind int8

const (
	setKind opKind = iota + 1
	delKind
)

// Op is a cached write operation, replayable against any SetDeleter.
type Op struct {
	kind  opKind
	key   []byte
	value []byte
}

// SetOp builds an Op to set a value.
func SetOp(key, value []byte) Op {
	return Op{
		kind:  setKind,
		key:   key,
		value: value,
	}
}

// DelOp builds an Op to delete a key.
func DelOp(key []byte) Op {
	return Op{
		kind: delKind,
		key:  key,
	}
}

// Apply performs the stored operation against the given output.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrHuman, "unknown op kind %d", o.kind)
	}
}

// IsSet returns true for set operations, false for deletes.
func (o Op) IsSet() bool {
	return o.kind == setKind
}

// Key returns the key this operation touches.
func (o Op) Key() []byte {
	return o.key
}

// NonAtomicBatch collects operations in memory and replays them on Write.
// It provides no atomicity guarantee against the underlying store; the
// caller must ensure the output cannot fail half way (an in-memory btree
// cannot).
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be written later to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{
		out: out,
	}
}

// Set adds a set operation to the batch.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

// Delete adds a delete operation to the batch.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write replays all collected operations against the output and resets the
// batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}
