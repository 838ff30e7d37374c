/*
Package host executes contract calls with the atomicity the contract code
assumes.

Every mutating entry point runs against a cache wrap of the backing store.
When the call returns an error the wrap is discarded, so no partial state
survives - including writes the asset ledger performed inside the same call.
On success the wrap is written down as a whole. Calls are serialized by a
mutex, matching the single-logical-thread execution model: read-modify-write
sequences inside a call never race.

The host also owns the caller-identity boundary: it stamps the authenticated
sender into the context before dispatching, and it is the only component
allowed to do so.
*/
package host
