// Package delivery holds the servers that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by the fx entry points.
type Delivery interface {
	Serve(ctx context.Context) error
}
