// Package lifecycle holds shared constants for component start and stop
// coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
