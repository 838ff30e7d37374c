package vault

import (
	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
)

// Read-only queries. No authorization, no side effects; safe to run outside a
// cache wrap.

// Info is the public state of a vault.
type Info struct {
	Threshold      uint8
	OwnerCount     uint8
	Asset          tresor.Address
	Balance        tresor.Word
	TotalProposals tresor.Word
	HasProposal    bool
	// Owners in creation order; slot 0 is the creator.
	Owners []tresor.Address
}

// Proposal is the active transfer request of a vault.
type Proposal struct {
	Recipient tresor.Address
	Amount    tresor.Word
	Approvals tresor.Word
}

// Count returns the number of vaults ever created.
func Count(db tresor.ReadOnlyKVStore) (tresor.Word, error) {
	return loadVaultCount(db)
}

// GetInfo returns the vault's configuration and balances, or ErrVaultNotFound.
func GetInfo(db tresor.ReadOnlyKVStore, vaultID uint64) (*Info, error) {
	if err := requireVault(db, vaultID); err != nil {
		return nil, err
	}
	threshold, err := loadThreshold(db, vaultID)
	if err != nil {
		return nil, err
	}
	n, err := loadOwnerCount(db, vaultID)
	if err != nil {
		return nil, err
	}
	asset, err := loadAsset(db, vaultID)
	if err != nil {
		return nil, err
	}
	balance, err := loadBalance(db, vaultID)
	if err != nil {
		return nil, err
	}
	total, err := loadWord(db, totalProposalsKey(vaultID))
	if err != nil {
		return nil, err
	}
	active, err := hasProposal(db, vaultID)
	if err != nil {
		return nil, err
	}
	owners, err := loadOwners(db, vaultID)
	if err != nil {
		return nil, err
	}
	return &Info{
		Threshold:      threshold,
		OwnerCount:     n,
		Asset:          asset,
		Balance:        balance,
		TotalProposals: total,
		HasProposal:    active,
		Owners:         owners,
	}, nil
}

// GetProposal returns the active proposal, ErrNoActiveProposal when the vault
// has none, or ErrVaultNotFound.
func GetProposal(db tresor.ReadOnlyKVStore, vaultID uint64) (*Proposal, error) {
	if err := requireVault(db, vaultID); err != nil {
		return nil, err
	}
	active, err := hasProposal(db, vaultID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.Wrapf(ErrNoActiveProposal, "vault %d", vaultID)
	}
	recipient, err := loadWord(db, proposalRecipientKey(vaultID))
	if err != nil {
		return nil, err
	}
	amount, err := loadWord(db, proposalAmountKey(vaultID))
	if err != nil {
		return nil, err
	}
	approvals, err := loadWord(db, proposalApprovalsKey(vaultID))
	if err != nil {
		return nil, err
	}
	return &Proposal{
		Recipient: recipient.Address(),
		Amount:    amount,
		Approvals: approvals,
	}, nil
}

// IsOwner checks vault membership, or ErrVaultNotFound.
func IsOwner(db tresor.ReadOnlyKVStore, vaultID uint64, addr tresor.Address) (bool, error) {
	if err := requireVault(db, vaultID); err != nil {
		return false, err
	}
	_, err := ownerIndex(db, vaultID, addr)
	switch {
	case err == nil:
		return true, nil
	case ErrNotAnOwner.Is(err):
		return false, nil
	default:
		return false, err
	}
}
