package vault

import (
	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
)

// The owner registry is a fixed array of at most MaxOwners slots per vault,
// fixed at creation. Membership checks are a bounded linear scan: with ten
// slots the worst case is cheaper and more predictable than maintaining a
// per-(vault, member) presence index, which would cost extra writes at
// creation and extra slots forever.

func ownerAt(db tresor.ReadOnlyKVStore, vaultID uint64, slot uint8) (tresor.Address, error) {
	w, err := loadWord(db, ownerSlotKey(vaultID, slot))
	if err != nil {
		return nil, err
	}
	return w.Address(), nil
}

// ownerIndex scans the owner slots for the given address and returns its slot
// index. The single scan answers both "is this an owner" and "which slot",
// halving storage reads on the authorization hot path.
func ownerIndex(db tresor.ReadOnlyKVStore, vaultID uint64, addr tresor.Address) (uint8, error) {
	n, err := loadOwnerCount(db, vaultID)
	if err != nil {
		return 0, err
	}
	for slot := uint8(0); slot < n; slot++ {
		owner, err := ownerAt(db, vaultID, slot)
		if err != nil {
			return 0, err
		}
		if owner.Equals(addr) {
			return slot, nil
		}
	}
	return 0, errors.Wrapf(ErrNotAnOwner, "address %s", addr)
}

// loadOwners returns the full owner set in creation order.
func loadOwners(db tresor.ReadOnlyKVStore, vaultID uint64) ([]tresor.Address, error) {
	n, err := loadOwnerCount(db, vaultID)
	if err != nil {
		return nil, err
	}
	owners := make([]tresor.Address, 0, n)
	for slot := uint8(0); slot < n; slot++ {
		owner, err := ownerAt(db, vaultID, slot)
		if err != nil {
			return nil, err
		}
		owners = append(owners, owner)
	}
	return owners, nil
}
