package tresor

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/tresornet/tresor/errors"
)

// AddressLength is the length of all addresses in bytes. It must not change
// during the lifetime of a kvstore, as addresses are embedded in stored words.
const AddressLength = 20

// Address identifies an account: an owner, a transfer recipient, or an asset
// contract. It is an opaque fixed-width byte string; tresor never interprets
// its content.
type Address []byte

// Validate returns an error if the address is not the proper size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
	return nil
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// IsZero is true for an empty address as well as for an all-zero one. Both
// mean "no address": storage cannot distinguish them.
func (a Address) IsZero() bool {
	for _, c := range a {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share memory with the original.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// String returns a human readable hex representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}
