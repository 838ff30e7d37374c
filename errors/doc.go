/*
Package errors implements the coded errors used across tresor.

Every failure a caller can observe is rooted in one of the registered error
kinds. Kinds are compared with their Is method, which unwraps the cause chain,
so callers never match on message strings. Wrapping adds human context and
attaches a stack trace once, at the innermost frame.

A non-nil error returned from any mutating entry point makes the host discard
the whole call. There are no recoverable errors in this system.
*/
package errors
