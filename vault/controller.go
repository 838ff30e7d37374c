package vault

import (
	"context"

	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
)

const (
	// MinOwners and MaxOwners bound the owner set size. MaxOwners keeps
	// the authorization scan and the approval-flag reset bounded; it must
	// stay well under the one-byte slot index range.
	MinOwners = 2
	MaxOwners = 10

	// MinThreshold is the smallest allowed approval threshold. A single
	// approving owner would defeat the purpose of shared custody.
	MinThreshold = 2
)

// CustodyAddress is the account under which the contract holds deposited
// funds on the asset ledger.
var CustodyAddress = tresor.Address("tresor/custody/vault")

// AssetMover moves fungible asset units between ledger accounts. It is the
// contract's only outward dependency. A returned error must make the caller
// discard the whole call: the controller performs its bookkeeping first and
// relies on that rollback.
type AssetMover interface {
	Move(db tresor.KVStore, asset, src, dest tresor.Address, amount tresor.Word) error
}

// Controller implements the five mutating entry points of the custody
// contract. It is stateless; all state lives in the KVStore passed to each
// call.
type Controller struct {
	assets  AssetMover
	custody tresor.Address
}

// NewController returns a controller holding funds under the given custody
// account of the asset ledger.
func NewController(assets AssetMover, custody tresor.Address) *Controller {
	return &Controller{
		assets:  assets,
		custody: custody,
	}
}

// CreateVault registers a new vault and returns its id. Ids are assigned
// sequentially from a global counter. Balance, proposal counter and proposal
// flag start at their zero default and are not written.
//
// The owner at slot 0 is by convention the creator. Owners must be distinct
// and non-zero; duplicates are detected against the owners already seen in
// this call, so creation costs no storage reads.
func (c *Controller) CreateVault(ctx context.Context, db tresor.KVStore, asset tresor.Address, owners []tresor.Address, threshold uint8) (uint64, error) {
	if n := len(owners); n < MinOwners || n > MaxOwners {
		return 0, errors.Wrapf(ErrInvalidOwnerCount, "%d owners", len(owners))
	}
	ownerCount := uint8(len(owners))
	if err := asset.Validate(); err != nil {
		return 0, errors.Wrap(err, "asset")
	}
	if asset.IsZero() {
		return 0, errors.Wrap(errors.ErrEmpty, "asset")
	}

	count, err := loadVaultCount(db)
	if err != nil {
		return 0, err
	}
	vaultID, err := count.Uint64()
	if err != nil || vaultID > MaxVaultID {
		return 0, errors.Wrap(errors.ErrOverflow, "vault id space exhausted")
	}

	seen := make([]tresor.Address, 0, ownerCount)
	for slot := uint8(0); slot < ownerCount; slot++ {
		owner := owners[slot]
		if owner.IsZero() {
			return 0, errors.Wrapf(ErrZeroOwner, "slot %d", slot)
		}
		if err := owner.Validate(); err != nil {
			return 0, errors.Wrapf(err, "owner slot %d", slot)
		}
		for _, prev := range seen {
			if prev.Equals(owner) {
				return 0, errors.Wrapf(ErrDuplicateOwner, "owner %s", owner)
			}
		}
		seen = append(seen, owner)
		if err := storeWord(db, ownerSlotKey(vaultID, slot), tresor.AddressWord(owner)); err != nil {
			return 0, err
		}
	}

	if threshold < MinThreshold || threshold > ownerCount {
		return 0, errors.Wrapf(ErrInvalidThreshold, "threshold %d of %d owners", threshold, ownerCount)
	}
	if err := storeWord(db, thresholdKey(vaultID), tresor.NewWord(uint64(threshold))); err != nil {
		return 0, err
	}
	if err := storeWord(db, ownerCountKey(vaultID), tresor.NewWord(uint64(ownerCount))); err != nil {
		return 0, err
	}
	if err := storeWord(db, assetKey(vaultID), tresor.AddressWord(asset)); err != nil {
		return 0, err
	}

	next, err := count.Incr()
	if err != nil {
		return 0, errors.Wrap(err, "vault counter")
	}
	if err := storeWord(db, vaultCountKey(), next); err != nil {
		return 0, err
	}
	return vaultID, nil
}

// Deposit pulls amount from the caller's ledger account into custody and
// credits the vault. Anyone may deposit, not only owners.
//
// The external pull happens before the credit. That ordering is safe here
// because a deposit only adds: a reentrant call cannot observe a balance the
// vault does not hold. Compare ExecuteProposal, where the order is inverted.
func (c *Controller) Deposit(ctx context.Context, db tresor.KVStore, vaultID uint64, amount tresor.Word) error {
	if err := requireVault(db, vaultID); err != nil {
		return err
	}
	if amount.IsZero() {
		return errors.Wrap(ErrZeroAmount, "deposit")
	}
	caller, err := tresor.Caller(ctx)
	if err != nil {
		return err
	}
	asset, err := loadAsset(db, vaultID)
	if err != nil {
		return err
	}

	if err := c.assets.Move(db, asset, caller, c.custody, amount); err != nil {
		return errors.Wrap(err, "pull deposit")
	}

	balance, err := loadBalance(db, vaultID)
	if err != nil {
		return err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return errors.Wrap(err, "vault balance")
	}
	return storeWord(db, balanceKey(vaultID), balance)
}

// Propose starts a transfer proposal, replacing any active one. Replacement
// is unconditional: the old proposal's fields and every owner's approval flag
// are cleared first, there is no merge or vote carry-over. The proposer's own
// approval is recorded immediately, and the lifetime proposal counter grows
// by one (replacement does not decrement it).
func (c *Controller) Propose(ctx context.Context, db tresor.KVStore, vaultID uint64, recipient tresor.Address, amount tresor.Word) error {
	if err := requireVault(db, vaultID); err != nil {
		return err
	}
	caller, err := tresor.Caller(ctx)
	if err != nil {
		return err
	}
	slot, err := ownerIndex(db, vaultID, caller)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return errors.Wrap(ErrZeroAmount, "proposal")
	}
	if recipient.IsZero() {
		return errors.Wrap(ErrZeroRecipient, "proposal")
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	balance, err := loadBalance(db, vaultID)
	if err != nil {
		return err
	}
	if amount.Cmp(balance) > 0 {
		return errors.Wrapf(ErrInsufficientBalance, "amount %s, balance %s", amount, balance)
	}

	active, err := hasProposal(db, vaultID)
	if err != nil {
		return err
	}
	if active {
		if err := c.clearProposal(db, vaultID); err != nil {
			return err
		}
	}

	if err := storeWord(db, proposalRecipientKey(vaultID), tresor.AddressWord(recipient)); err != nil {
		return err
	}
	if err := storeWord(db, proposalAmountKey(vaultID), amount); err != nil {
		return err
	}
	if err := storeWord(db, proposalApprovalsKey(vaultID), tresor.NewWord(1)); err != nil {
		return err
	}
	if err := storeWord(db, approvalFlagKey(vaultID, slot), tresor.NewWord(1)); err != nil {
		return err
	}
	if err := storeWord(db, hasProposalKey(vaultID), tresor.NewWord(1)); err != nil {
		return err
	}

	total, err := loadWord(db, totalProposalsKey(vaultID))
	if err != nil {
		return err
	}
	total, err = total.Incr()
	if err != nil {
		return errors.Wrap(err, "proposal counter")
	}
	return storeWord(db, totalProposalsKey(vaultID), total)
}

// Approve records the caller's yes vote on the active proposal. Each owner
// votes at most once per proposal. Votes beyond the threshold are still
// recorded; the count is capped by the owner set, not by the threshold.
func (c *Controller) Approve(ctx context.Context, db tresor.KVStore, vaultID uint64) error {
	if err := requireVault(db, vaultID); err != nil {
		return err
	}
	caller, err := tresor.Caller(ctx)
	if err != nil {
		return err
	}
	slot, err := ownerIndex(db, vaultID, caller)
	if err != nil {
		return err
	}
	active, err := hasProposal(db, vaultID)
	if err != nil {
		return err
	}
	if !active {
		return errors.Wrapf(ErrNoActiveProposal, "vault %d", vaultID)
	}
	voted, err := approvalFlag(db, vaultID, slot)
	if err != nil {
		return err
	}
	if voted {
		return errors.Wrapf(ErrAlreadyApproved, "owner slot %d", slot)
	}

	if err := storeWord(db, approvalFlagKey(vaultID, slot), tresor.NewWord(1)); err != nil {
		return err
	}
	approvals, err := loadWord(db, proposalApprovalsKey(vaultID))
	if err != nil {
		return err
	}
	approvals, err = approvals.Incr()
	if err != nil {
		return errors.Wrap(err, "approval counter")
	}
	return storeWord(db, proposalApprovalsKey(vaultID), approvals)
}

// ExecuteProposal pays out the active proposal once the threshold is met.
// Execution is permissionless: quorum, not identity, is the gate.
//
// The order of operations is load-bearing. The payout parameters are read
// first, then the balance is debited and the whole proposal slot cleared, and
// only against that settled state is the asset ledger invoked. A reentrant
// call into the contract during the transfer sees no active proposal and an
// already reduced balance, so it cannot double-spend.
func (c *Controller) ExecuteProposal(ctx context.Context, db tresor.KVStore, vaultID uint64) error {
	if err := requireVault(db, vaultID); err != nil {
		return err
	}
	active, err := hasProposal(db, vaultID)
	if err != nil {
		return err
	}
	if !active {
		return errors.Wrapf(ErrNoActiveProposal, "vault %d", vaultID)
	}
	approvals, err := loadWord(db, proposalApprovalsKey(vaultID))
	if err != nil {
		return err
	}
	threshold, err := loadThreshold(db, vaultID)
	if err != nil {
		return err
	}
	if approvals.Cmp(tresor.NewWord(uint64(threshold))) < 0 {
		return errors.Wrapf(ErrThresholdNotMet, "%s of %d approvals", approvals, threshold)
	}

	recipientWord, err := loadWord(db, proposalRecipientKey(vaultID))
	if err != nil {
		return err
	}
	recipient := recipientWord.Address()
	amount, err := loadWord(db, proposalAmountKey(vaultID))
	if err != nil {
		return err
	}
	asset, err := loadAsset(db, vaultID)
	if err != nil {
		return err
	}

	balance, err := loadBalance(db, vaultID)
	if err != nil {
		return err
	}
	// Checked subtraction. Unreachable given the check in Propose, since
	// execution is the only debit path, but an underflow here must abort
	// rather than wrap.
	balance, err = balance.Sub(amount)
	if err != nil {
		return errors.Wrapf(ErrInsufficientBalance, "amount %s", amount)
	}
	if err := storeWord(db, balanceKey(vaultID), balance); err != nil {
		return err
	}
	if err := c.clearProposal(db, vaultID); err != nil {
		return err
	}

	if err := c.assets.Move(db, asset, c.custody, recipient, amount); err != nil {
		return errors.Wrap(err, "payout")
	}
	return nil
}

// clearProposal zeroes the proposal fields, all approval flags and the
// active-proposal marker. The lifetime proposal counter is left untouched.
func (c *Controller) clearProposal(db tresor.KVStore, vaultID uint64) error {
	var zero tresor.Word
	if err := storeWord(db, proposalRecipientKey(vaultID), zero); err != nil {
		return err
	}
	if err := storeWord(db, proposalAmountKey(vaultID), zero); err != nil {
		return err
	}
	if err := storeWord(db, proposalApprovalsKey(vaultID), zero); err != nil {
		return err
	}
	n, err := loadOwnerCount(db, vaultID)
	if err != nil {
		return err
	}
	for slot := uint8(0); slot < n; slot++ {
		if err := storeWord(db, approvalFlagKey(vaultID, slot), zero); err != nil {
			return err
		}
	}
	return storeWord(db, hasProposalKey(vaultID), zero)
}
