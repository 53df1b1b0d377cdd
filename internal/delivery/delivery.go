// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application runner. Serve
// blocks until the server stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
