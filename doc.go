/*
Package tresor defines the common types shared by all tresor packages: the
storage interfaces, the fixed-width storage word, addresses, and the
caller-identity context helpers.

Tresor is a custody ledger. A fixed group of owners jointly controls a balance
of a single fungible asset held in a vault. Funds leave a vault only through a
proposal that a threshold of owners approved. The contract state lives in a
key-value store with 32 byte keys and values, addressed deterministically
without hashing, so every operation has a small and predictable storage
footprint.

The root package holds only interfaces and simple value types, subpackages
implement them. See the store package for cache-wrapped stores, the vault
package for the contract itself, the token package for the asset ledger and
the host package for call dispatch.
*/
package tresor
