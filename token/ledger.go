package token

import (
	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
)

// Error codes 140-149 are reserved for the token extension.
var (
	// ErrInsufficientFunds is returned when an account holds less than a
	// move requires.
	ErrInsufficientFunds = errors.Register(140, "insufficient funds")
)

// balance keys live under their own prefix so ledger state can never collide
// with vault state sharing the store.
var keyPrefix = []byte("cash:")

func balanceKey(asset, holder tresor.Address) []byte {
	key := make([]byte, 0, len(keyPrefix)+2*tresor.AddressLength)
	key = append(key, keyPrefix...)
	key = append(key, asset...)
	key = append(key, holder...)
	return key
}

// Ledger tracks fungible balances for any number of assets. It is stateless;
// all balances live in the KVStore passed to each call.
type Ledger struct{}

// NewLedger returns a ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Balance returns the holder's balance of the given asset. Accounts that
// never received anything hold zero.
func (l *Ledger) Balance(db tresor.ReadOnlyKVStore, asset, holder tresor.Address) (tresor.Word, error) {
	raw, err := db.Get(balanceKey(asset, holder))
	if err != nil {
		return tresor.Word{}, errors.Wrap(err, "ledger lookup")
	}
	return tresor.WordFromBytes(raw)
}

// Move transfers amount of asset from src to dest. It fails on a zero
// amount, when src holds too little, or when dest would overflow.
func (l *Ledger) Move(db tresor.KVStore, asset, src, dest tresor.Address, amount tresor.Word) error {
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero move")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	srcBalance, err := l.Balance(db, asset, src)
	if err != nil {
		return err
	}
	if srcBalance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientFunds, "account %s holds %s, needs %s", src, srcBalance, amount)
	}
	destBalance, err := l.Balance(db, asset, dest)
	if err != nil {
		return err
	}

	srcBalance, err = srcBalance.Sub(amount)
	if err != nil {
		return errors.Wrap(err, "debit")
	}
	destBalance, err = destBalance.Add(amount)
	if err != nil {
		return errors.Wrap(err, "credit")
	}

	if err := db.Set(balanceKey(asset, src), srcBalance.Bytes()); err != nil {
		return err
	}
	return db.Set(balanceKey(asset, dest), destBalance.Bytes())
}

// Mint creates amount of asset out of thin air on the dest account. Genesis
// and test funding only; the custody contract never mints.
func (l *Ledger) Mint(db tresor.KVStore, asset, dest tresor.Address, amount tresor.Word) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	balance, err := l.Balance(db, asset, dest)
	if err != nil {
		return err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return errors.Wrap(err, "credit")
	}
	return db.Set(balanceKey(asset, dest), balance.Bytes())
}
