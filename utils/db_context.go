package utils

import (
	"context"
	"time"
)

const (
	// WriteTimeout bounds a single submission or audit insert.
	WriteTimeout = 10 * time.Second
	// PingTimeout bounds the health-check ping.
	PingTimeout = 2 * time.Second
)

// GetQueryContext derives a timeout context for one database call. A nil parent means background.
func GetQueryContext(parentCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	return context.WithTimeout(parentCtx, timeout)
}
