package host

import (
	"context"
	"sync"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/tresornet/tresor"
	"github.com/tresornet/tresor/errors"
	"github.com/tresornet/tresor/store"
	"github.com/tresornet/tresor/token"
	"github.com/tresornet/tresor/vault"
)

// Options configures a host. The zero value runs on an in-memory store with
// logging disabled.
type Options struct {
	// DB is the backing store. Defaults to store.MemStore(). Pass a
	// store/iavl CommitStore for persistence.
	DB tresor.CacheableKVStore

	// Logger receives one line per call. Defaults to a nop logger.
	Logger log.Logger
}

// Host wires the custody controller and the asset ledger to a backing store
// and executes calls atomically.
type Host struct {
	mu     sync.Mutex
	db     tresor.CacheableKVStore
	ctrl   *vault.Controller
	ledger *token.Ledger
	logger log.Logger
}

// New returns a ready host.
func New(opts Options) *Host {
	db := opts.DB
	if db == nil {
		db = store.MemStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	ledger := token.NewLedger()
	return &Host{
		db:     db,
		ctrl:   vault.NewController(ledger, vault.CustodyAddress),
		ledger: ledger,
		logger: logger.With("module", "host"),
	}
}

// run executes fn against a cache wrap of the backing store. An error
// discards the wrap so the failing call leaves no trace; success writes it
// down as a whole.
func (h *Host) run(method string, fn func(db tresor.KVStore) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cache := h.db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		h.logger.Info("call aborted", "method", method, "err", err)
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write call state")
	}
	h.logger.Debug("call applied", "method", method)
	return nil
}

// CreateVault registers a new vault and returns its id. Open to anyone.
func (h *Host) CreateVault(ctx context.Context, asset tresor.Address, owners []tresor.Address, threshold uint8) (uint64, error) {
	var vaultID uint64
	err := h.run("create_vault", func(db tresor.KVStore) error {
		var err error
		vaultID, err = h.ctrl.CreateVault(ctx, db, asset, owners, threshold)
		return err
	})
	if err != nil {
		return 0, err
	}
	return vaultID, nil
}

// Deposit pulls funds from the caller into the vault. Open to anyone.
func (h *Host) Deposit(ctx context.Context, vaultID uint64, amount tresor.Word) error {
	return h.run("deposit", func(db tresor.KVStore) error {
		return h.ctrl.Deposit(ctx, db, vaultID, amount)
	})
}

// Propose starts (or replaces) a transfer proposal. Owners only.
func (h *Host) Propose(ctx context.Context, vaultID uint64, recipient tresor.Address, amount tresor.Word) error {
	return h.run("propose", func(db tresor.KVStore) error {
		return h.ctrl.Propose(ctx, db, vaultID, recipient, amount)
	})
}

// Approve records the caller's vote on the active proposal. Owners only.
func (h *Host) Approve(ctx context.Context, vaultID uint64) error {
	return h.run("approve", func(db tresor.KVStore) error {
		return h.ctrl.Approve(ctx, db, vaultID)
	})
}

// ExecuteProposal pays out the active proposal once quorum is reached.
// Permissionless.
func (h *Host) ExecuteProposal(ctx context.Context, vaultID uint64) error {
	return h.run("execute_proposal", func(db tresor.KVStore) error {
		return h.ctrl.ExecuteProposal(ctx, db, vaultID)
	})
}

// Mint funds an account on the asset ledger. Genesis and test setup only.
func (h *Host) Mint(asset, dest tresor.Address, amount tresor.Word) error {
	return h.run("mint", func(db tresor.KVStore) error {
		return h.ledger.Mint(db, asset, dest, amount)
	})
}

// VaultCount returns the number of vaults ever created.
func (h *Host) VaultCount() (tresor.Word, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return vault.Count(h.db)
}

// VaultInfo returns a vault's public state.
func (h *Host) VaultInfo(vaultID uint64) (*vault.Info, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return vault.GetInfo(h.db, vaultID)
}

// Proposal returns a vault's active proposal, if any.
func (h *Host) Proposal(vaultID uint64) (*vault.Proposal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return vault.GetProposal(h.db, vaultID)
}

// IsOwner checks vault membership.
func (h *Host) IsOwner(vaultID uint64, addr tresor.Address) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return vault.IsOwner(h.db, vaultID, addr)
}

// BalanceOf returns a holder's ledger balance of the given asset.
func (h *Host) BalanceOf(asset, holder tresor.Address) (tresor.Word, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ledger.Balance(h.db, asset, holder)
}

// Commit persists the applied calls when the backing store supports commits,
// returning the new commit id. On a purely in-memory store it is a no-op.
func (h *Host) Commit() (tresor.CommitID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	commitStore, ok := h.db.(tresor.CommitKVStore)
	if !ok {
		return tresor.CommitID{}, nil
	}
	id, err := commitStore.Commit()
	if err != nil {
		return tresor.CommitID{}, err
	}
	h.logger.Info("committed", "version", id.Version)
	return id, nil
}
