// Package lifecycle defines shared timing constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as dependency pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
