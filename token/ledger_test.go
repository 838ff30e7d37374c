package token

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/store"
)

func addr(b byte) tresor.Address {
	return tresor.Address(bytes.Repeat([]byte{b}, tresor.AddressLength))
}

func TestMintAndBalance(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	asset := addr(0xee)

	balance, err := l.Balance(db, asset, addr(1))
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "fresh accounts hold zero")

	require.NoError(t, l.Mint(db, asset, addr(1), tresor.NewWord(100)))
	require.NoError(t, l.Mint(db, asset, addr(1), tresor.NewWord(50)))

	balance, err = l.Balance(db, asset, addr(1))
	require.NoError(t, err)
	assert.Equal(t, tresor.NewWord(150), balance)
}

func TestMoveConservesValue(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	asset := addr(0xee)
	require.NoError(t, l.Mint(db, asset, addr(1), tresor.NewWord(100)))

	require.NoError(t, l.Move(db, asset, addr(1), addr(2), tresor.NewWord(30)))

	src, err := l.Balance(db, asset, addr(1))
	require.NoError(t, err)
	dest, err := l.Balance(db, asset, addr(2))
	require.NoError(t, err)
	assert.Equal(t, tresor.NewWord(70), src)
	assert.Equal(t, tresor.NewWord(30), dest)
}

func TestMoveRejectsOverdraft(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	asset := addr(0xee)
	require.NoError(t, l.Mint(db, asset, addr(1), tresor.NewWord(10)))

	err := l.Move(db, asset, addr(1), addr(2), tresor.NewWord(11))
	assert.True(t, ErrInsufficientFunds.Is(err), "%+v", err)

	// Nothing moved.
	src, err := l.Balance(db, asset, addr(1))
	require.NoError(t, err)
	assert.Equal(t, tresor.NewWord(10), src)
	dest, err := l.Balance(db, asset, addr(2))
	require.NoError(t, err)
	assert.True(t, dest.IsZero())
}

func TestMoveRejectsZeroAmount(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	err := l.Move(db, addr(0xee), addr(1), addr(2), tresor.NewWord(0))
	require.Error(t, err)
}

func TestAssetsAreIsolated(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	require.NoError(t, l.Mint(db, addr(0xee), addr(1), tresor.NewWord(100)))

	other, err := l.Balance(db, addr(0xef), addr(1))
	require.NoError(t, err)
	assert.True(t, other.IsZero(), "balances are per asset")

	err = l.Move(db, addr(0xef), addr(1), addr(2), tresor.NewWord(1))
	assert.True(t, ErrInsufficientFunds.Is(err), "%+v", err)
}
