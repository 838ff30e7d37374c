package vault

import "github.com/tresornet/tresor/errors"

// Error codes 120-139 are reserved for the vault extension.
var (
	// ErrVaultNotFound is returned when the vault id was never assigned.
	ErrVaultNotFound = errors.Register(120, "vault does not exist")

	// ErrInvalidOwnerCount is returned when the owner set size is outside
	// [2, 10].
	ErrInvalidOwnerCount = errors.Register(121, "owner count out of range")

	// ErrZeroOwner is returned when an owner address is the zero address.
	ErrZeroOwner = errors.Register(122, "owner address is zero")

	// ErrDuplicateOwner is returned when the same address appears twice in
	// the owner set.
	ErrDuplicateOwner = errors.Register(123, "duplicate owner")

	// ErrInvalidThreshold is returned when the threshold is outside
	// [2, owner count].
	ErrInvalidThreshold = errors.Register(124, "threshold out of range")

	// ErrNotAnOwner is returned when the caller is not in the vault's
	// owner set.
	ErrNotAnOwner = errors.Register(125, "caller is not an owner")

	// ErrZeroAmount is returned when an amount that must be positive is
	// zero.
	ErrZeroAmount = errors.Register(126, "amount is zero")

	// ErrZeroRecipient is returned when the proposed recipient is the zero
	// address.
	ErrZeroRecipient = errors.Register(127, "recipient address is zero")

	// ErrInsufficientBalance is returned when a proposal asks for more
	// than the vault holds.
	ErrInsufficientBalance = errors.Register(128, "insufficient vault balance")

	// ErrNoActiveProposal is returned when an operation needs an active
	// proposal and there is none.
	ErrNoActiveProposal = errors.Register(129, "no active proposal")

	// ErrAlreadyApproved is returned when an owner votes twice on the same
	// proposal.
	ErrAlreadyApproved = errors.Register(130, "owner already approved")

	// ErrThresholdNotMet is returned when executing a proposal with fewer
	// approvals than the threshold.
	ErrThresholdNotMet = errors.Register(131, "approval threshold not met")
)
