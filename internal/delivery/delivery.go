// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery serves requests until it fails or is shut down by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
