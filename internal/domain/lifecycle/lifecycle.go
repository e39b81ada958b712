// Package lifecycle holds shared limits for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds individual start or stop hooks such as pings and shutdowns.
const DefaultTimeout = 10 * time.Second
