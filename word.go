package tresor

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/tresornet/tresor/errors"
)

// WordLength is the fixed width of every storage key and value in bytes.
const WordLength = 32

// Word is a single storage slot: a 32 byte big-endian value. It doubles as a
// 256-bit unsigned integer for balances and counters. Arithmetic is a plain
// carry loop, there is no heap allocation on the hot path.
type Word [WordLength]byte

// NewWord returns a word holding the given small integer.
func NewWord(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[WordLength-8:], v)
	return w
}

// WordFromBytes builds a word from a stored value. A nil slice is the zero
// word, as storage is zero initialized. Any other length than 32 is a
// corrupted slot.
func WordFromBytes(bz []byte) (Word, error) {
	var w Word
	if bz == nil {
		return w, nil
	}
	if len(bz) != WordLength {
		return w, errors.Wrapf(errors.ErrState, "slot value length %d", len(bz))
	}
	copy(w[:], bz)
	return w, nil
}

// AddressWord packs an address into a word, right aligned with leading zero
// padding.
func AddressWord(a Address) Word {
	var w Word
	copy(w[WordLength-len(a):], a)
	return w
}

// Bytes returns the 32 byte big-endian representation.
func (w Word) Bytes() []byte {
	return w[:]
}

// Address unpacks the trailing AddressLength bytes as an address.
func (w Word) Address() Address {
	addr := make(Address, AddressLength)
	copy(addr, w[WordLength-AddressLength:])
	return addr
}

// IsZero is true for the all-zero word.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Cmp returns -1, 0 or 1 when w is smaller, equal or greater than o.
func (w Word) Cmp(o Word) int {
	return bytes.Compare(w[:], o[:])
}

// Add returns w+o, or ErrOverflow if the sum does not fit in 256 bits.
func (w Word) Add(o Word) (Word, error) {
	var sum Word
	var carry uint16
	for i := WordLength - 1; i >= 0; i-- {
		carry += uint16(w[i]) + uint16(o[i])
		sum[i] = byte(carry)
		carry >>= 8
	}
	if carry != 0 {
		return Word{}, errors.Wrap(errors.ErrOverflow, "word addition")
	}
	return sum, nil
}

// Sub returns w-o, or ErrOverflow if o is greater than w. Callers rely on
// the failure, not on wrapping, to keep balances from underflowing.
func (w Word) Sub(o Word) (Word, error) {
	var diff Word
	var borrow uint16
	for i := WordLength - 1; i >= 0; i-- {
		d := uint16(w[i]) - uint16(o[i]) - borrow
		diff[i] = byte(d)
		borrow = (d >> 8) & 1
	}
	if borrow != 0 {
		return Word{}, errors.Wrap(errors.ErrOverflow, "word subtraction below zero")
	}
	return diff, nil
}

// Incr returns w+1.
func (w Word) Incr() (Word, error) {
	return w.Add(NewWord(1))
}

// Uint64 converts back to a small integer, or ErrOverflow if the value does
// not fit.
func (w Word) Uint64() (uint64, error) {
	for _, c := range w[:WordLength-8] {
		if c != 0 {
			return 0, errors.Wrap(errors.ErrOverflow, "word exceeds 64 bits")
		}
	}
	return binary.BigEndian.Uint64(w[WordLength-8:]), nil
}

// Uint8 returns the lowest byte. Used for the small fields (threshold, owner
// count) whose range validation happens before they are stored.
func (w Word) Uint8() uint8 {
	return w[WordLength-1]
}

// Bool reads the word as a flag. Any non-zero value counts as true.
func (w Word) Bool() bool {
	return !w.IsZero()
}

// String renders the word as a decimal integer for logs and errors.
func (w Word) String() string {
	return new(big.Int).SetBytes(w[:]).String()
}
