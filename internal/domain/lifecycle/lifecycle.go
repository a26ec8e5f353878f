// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
