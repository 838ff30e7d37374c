package vault

import (
	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
)

// Slot-level accessors shared by the controller and the queries. A missing
// key reads as the zero word: storage is zero initialized and fields left at
// their default are never explicitly written.

func loadWord(db tresor.ReadOnlyKVStore, key []byte) (tresor.Word, error) {
	raw, err := db.Get(key)
	if err != nil {
		return tresor.Word{}, errors.Wrap(err, "load slot")
	}
	return tresor.WordFromBytes(raw)
}

func storeWord(db tresor.KVStore, key []byte, w tresor.Word) error {
	return db.Set(key, w.Bytes())
}

// loadVaultCount returns the number of vaults created so far, which is also
// the next vault id.
func loadVaultCount(db tresor.ReadOnlyKVStore) (tresor.Word, error) {
	return loadWord(db, vaultCountKey())
}

// requireVault fails with ErrVaultNotFound unless the id was assigned by a
// past CreateVault.
func requireVault(db tresor.ReadOnlyKVStore, vaultID uint64) error {
	count, err := loadVaultCount(db)
	if err != nil {
		return err
	}
	if tresor.NewWord(vaultID).Cmp(count) >= 0 {
		return errors.Wrapf(ErrVaultNotFound, "vault %d", vaultID)
	}
	return nil
}

func loadBalance(db tresor.ReadOnlyKVStore, vaultID uint64) (tresor.Word, error) {
	return loadWord(db, balanceKey(vaultID))
}

func loadAsset(db tresor.ReadOnlyKVStore, vaultID uint64) (tresor.Address, error) {
	w, err := loadWord(db, assetKey(vaultID))
	if err != nil {
		return nil, err
	}
	return w.Address(), nil
}

func loadOwnerCount(db tresor.ReadOnlyKVStore, vaultID uint64) (uint8, error) {
	w, err := loadWord(db, ownerCountKey(vaultID))
	if err != nil {
		return 0, err
	}
	return w.Uint8(), nil
}

func loadThreshold(db tresor.ReadOnlyKVStore, vaultID uint64) (uint8, error) {
	w, err := loadWord(db, thresholdKey(vaultID))
	if err != nil {
		return 0, err
	}
	return w.Uint8(), nil
}

func hasProposal(db tresor.ReadOnlyKVStore, vaultID uint64) (bool, error) {
	w, err := loadWord(db, hasProposalKey(vaultID))
	if err != nil {
		return false, err
	}
	return w.Bool(), nil
}

func approvalFlag(db tresor.ReadOnlyKVStore, vaultID uint64, slot uint8) (bool, error) {
	w, err := loadWord(db, approvalFlagKey(vaultID, slot))
	if err != nil {
		return false, err
	}
	return w.Bool(), nil
}
