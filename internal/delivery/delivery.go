// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a transport entry point started by the application container.
// Serve blocks until the underlying server stops; shutdown is driven through
// the container's lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
