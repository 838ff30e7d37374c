package vault

import (
	"encoding/binary"

	"github.com/tresornet/tresor"
)

// Every field of a vault occupies its own storage slot. A key packs a
// namespace tag, the vault id and an optional slot index into disjoint byte
// positions:
//
//	byte  0      namespace tag
//	bytes 1..26  zero
//	byte  27     slot index (owner slots and approval flags only)
//	bytes 28..31 vault id, low 32 bits big-endian
//
// Tags never repeat across fields and id/index sit at fixed offsets, so two
// distinct (tag, id, index) tuples can never produce the same key. Tags are
// allocated once and must never be renumbered: the assignment is part of the
// stored state.
const (
	tagVaultCount byte = iota
	tagThreshold
	tagOwnerCount
	tagAsset
	tagBalance
	tagTotalProposals
	tagHasProposal
	tagProposalRecipient
	tagProposalAmount
	tagProposalApprovals
	tagOwnerSlot
	tagApprovalFlag
)

const (
	tagPos   = 0
	indexPos = 27
	idPos    = 28
)

// MaxVaultID is the largest vault id representable in a key.
const MaxVaultID = 1<<32 - 1

func fieldKey(tag byte, vaultID uint64) []byte {
	key := make([]byte, tresor.WordLength)
	key[tagPos] = tag
	binary.BigEndian.PutUint32(key[idPos:], uint32(vaultID))
	return key
}

func indexedKey(tag byte, vaultID uint64, slot uint8) []byte {
	key := fieldKey(tag, vaultID)
	key[indexPos] = slot
	return key
}

// vaultCountKey addresses the global vault counter. It is the only state not
// scoped to a vault; only CreateVault may write it.
func vaultCountKey() []byte {
	return fieldKey(tagVaultCount, 0)
}

func thresholdKey(vaultID uint64) []byte {
	return fieldKey(tagThreshold, vaultID)
}

func ownerCountKey(vaultID uint64) []byte {
	return fieldKey(tagOwnerCount, vaultID)
}

func assetKey(vaultID uint64) []byte {
	return fieldKey(tagAsset, vaultID)
}

func balanceKey(vaultID uint64) []byte {
	return fieldKey(tagBalance, vaultID)
}

func totalProposalsKey(vaultID uint64) []byte {
	return fieldKey(tagTotalProposals, vaultID)
}

func hasProposalKey(vaultID uint64) []byte {
	return fieldKey(tagHasProposal, vaultID)
}

func proposalRecipientKey(vaultID uint64) []byte {
	return fieldKey(tagProposalRecipient, vaultID)
}

func proposalAmountKey(vaultID uint64) []byte {
	return fieldKey(tagProposalAmount, vaultID)
}

func proposalApprovalsKey(vaultID uint64) []byte {
	return fieldKey(tagProposalApprovals, vaultID)
}

func ownerSlotKey(vaultID uint64, slot uint8) []byte {
	return indexedKey(tagOwnerSlot, vaultID, slot)
}

func approvalFlagKey(vaultID uint64, slot uint8) []byte {
	return indexedKey(tagApprovalFlag, vaultID, slot)
}
