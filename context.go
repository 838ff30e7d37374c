package tresor

import (
	"context"

	"github.com/tresornet/tresor/errors"
)

// The host attests who signed the current call and passes that identity down
// through context.Context. For every value XYZ of type T carried in a context
// there is a pair
//
//	WithXYZ(ctx, T) context.Context
//	XYZ(ctx) (T, error)
//
// so handlers never touch context keys directly.

type contextKey int

const (
	contextKeyCaller contextKey = iota
)

// WithCaller returns a context carrying the authenticated sender of the
// current call. Only the host may set this.
func WithCaller(ctx context.Context, addr Address) context.Context {
	return context.WithValue(ctx, contextKeyCaller, addr)
}

// Caller returns the authenticated sender of the current call. It fails with
// ErrUnauthorized when the context carries no identity, so that handlers can
// return the result directly.
func Caller(ctx context.Context) (Address, error) {
	addr, ok := ctx.Value(contextKeyCaller).(Address)
	if !ok || len(addr) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no caller identity")
	}
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	return addr, nil
}
