// Package deriver turns a seed phrase and a derivation path into an account
// address for one network.
package deriver

import (
	"context"
	"errors"
	"fmt"

	tplog "github.com/TopiaNetwork/signer/log"
	"github.com/TopiaNetwork/signer/networkspec"
)

var ErrDerivationFailed = errors.New("derivation failed")

// DerivationError carries the failing path and a readable cause.
type DerivationError struct {
	Path  string
	Cause error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derive %q: %v", e.Path, e.Cause)
}

func (e *DerivationError) Unwrap() error {
	return e.Cause
}

func (e *DerivationError) Is(target error) bool {
	return target == ErrDerivationFailed
}

func failed(path string, format string, args ...interface{}) error {
	return &DerivationError{Path: path, Cause: fmt.Errorf(format, args...)}
}

type Request struct {
	Path     string
	Phrase   string
	Password string
	Spec     networkspec.NetworkSpec
}

type Service interface {
	Derive(ctx context.Context, req Request) (string, error)
}

// Router sends each request to the service of its network protocol.
// Unknown networks derive as substrate accounts.
type Router struct {
	log       tplog.Logger
	ethereum  Service
	substrate Service
}

func NewRouter(log tplog.Logger) *Router {
	return &Router{
		log:       log,
		ethereum:  NewEthereumDeriver(log),
		substrate: NewSubstrateDeriver(log),
	}
}

func (r *Router) Derive(ctx context.Context, req Request) (string, error) {
	if req.Spec.IsEthereum() {
		return r.ethereum.Derive(ctx, req)
	}
	return r.substrate.Derive(ctx, req)
}
