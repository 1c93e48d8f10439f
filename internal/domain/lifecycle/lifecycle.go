// Package lifecycle holds process lifecycle constants shared across
// delivery surfaces.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery surface.
const DefaultTimeout = 10 * time.Second
