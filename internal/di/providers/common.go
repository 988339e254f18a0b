// Package providers contains DI provider functions for all application services.
package providers

import "time"

// shutdownTimeout bounds graceful shutdown of long-lived resources.
const shutdownTimeout = 30 * time.Second
