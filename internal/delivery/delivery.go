// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a server that can be started by the application entrypoint.
// Implementations register their own shutdown through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
