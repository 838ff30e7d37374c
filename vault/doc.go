/*
Package vault implements the custody contract.

A vault is created with a fixed set of 2 to 10 owners, an approval threshold
and the single fungible asset it holds. Anyone may deposit into a vault. Funds
leave only through a proposal: an owner proposes a transfer (auto-approving
it), other owners approve, and once the threshold is reached anyone may
execute. A vault holds at most one proposal; proposing again replaces it and
discards all prior votes.

State lives in a key-value store with 32 byte keys and values. Keys are
derived from a per-field namespace tag, the vault id and, for owner slots and
approval flags, a slot index - no hashing, so every access costs one flat
storage operation in the metered host. See keys.go for the exact layout.

All mutating operations assume the caller runs them inside a cache wrap that
is discarded on error. The functions themselves perform no rollback; they rely
on that contract, which the host package provides.
*/
package vault
