/*
Package token implements the fungible-asset ledger the vault contract settles
against.

The ledger keeps one 256-bit balance per (asset, holder) pair under its own
key namespace, disjoint from the vault state. Move is the only way value
changes hands and it is conservative: what leaves one account arrives at
another, or the call fails. Mint exists for genesis funding and tests.

The vault package consumes this through its AssetMover interface; any failed
move propagates out and causes the host to roll the whole call back.
*/
package token
