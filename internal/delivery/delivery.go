// Package delivery defines the contract every transport implementation fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application, e.g. an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
