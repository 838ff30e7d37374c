package vault

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tresornet/tresor"
)

func TestKeyLayout(t *testing.T) {
	Convey("Given the deterministic key scheme", t, func() {
		Convey("every key is one storage word wide", func() {
			So(fieldKey(tagBalance, 7), ShouldHaveLength, tresor.WordLength)
			So(indexedKey(tagOwnerSlot, 7, 3), ShouldHaveLength, tresor.WordLength)
		})

		Convey("the tag sits in the leading byte", func() {
			key := fieldKey(tagBalance, 0)
			So(key[0], ShouldEqual, tagBalance)
		})

		Convey("the vault id occupies the trailing four bytes big-endian", func() {
			key := fieldKey(tagBalance, 0x01020304)
			So(key[28:], ShouldResemble, []byte{1, 2, 3, 4})
			for _, b := range key[1:28] {
				So(b, ShouldBeZeroValue)
			}
		})

		Convey("the slot index sits right before the id bytes", func() {
			key := indexedKey(tagApprovalFlag, 9, 5)
			So(key[27], ShouldEqual, 5)
			So(key[28:], ShouldResemble, []byte{0, 0, 0, 9})
		})

		Convey("the largest representable id round-trips", func() {
			key := fieldKey(tagBalance, MaxVaultID)
			So(key[28:], ShouldResemble, []byte{0xff, 0xff, 0xff, 0xff})
		})
	})
}

func TestKeyUniqueness(t *testing.T) {
	Convey("Given all field tags and a sample of ids and slots", t, func() {
		scalarTags := []byte{
			tagVaultCount, tagThreshold, tagOwnerCount, tagAsset,
			tagBalance, tagTotalProposals, tagHasProposal,
			tagProposalRecipient, tagProposalAmount, tagProposalApprovals,
		}
		indexedTags := []byte{tagOwnerSlot, tagApprovalFlag}
		ids := []uint64{0, 1, 2, 255, 256, 1 << 16, MaxVaultID}
		slots := []uint8{0, 1, 9}

		seen := make(map[string]string)
		record := func(key []byte, desc string) {
			prev, ok := seen[string(key)]
			So(ok, ShouldBeFalse)
			if ok {
				t.Logf("collision between %s and %s", prev, desc)
			}
			seen[string(key)] = desc
		}

		Convey("no two tuples produce the same key", func() {
			for _, tag := range scalarTags {
				for _, id := range ids {
					record(fieldKey(tag, id), "scalar")
				}
			}
			for _, tag := range indexedTags {
				for _, id := range ids {
					for _, slot := range slots {
						record(indexedKey(tag, id, slot), "indexed")
					}
				}
			}
			So(len(seen), ShouldEqual, len(scalarTags)*len(ids)+len(indexedTags)*len(ids)*len(slots))
		})
	})
}
