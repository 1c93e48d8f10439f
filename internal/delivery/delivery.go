// Package delivery defines the contract between the application core and its
// transport surfaces.
package delivery

import "context"

// Delivery is a transport surface the application serves on. Implementations
// are collected into the fx "deliveries" group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
