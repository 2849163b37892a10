package middleware

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/keshon/raid-herald/pkg/cmd"
)

// WithRecovery wraps a command so a panic inside it surfaces as an error
// instead of crashing the gateway handler goroutine.
func WithRecovery() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERR] Panic in command %s: %v\n%s", c.Name(), r, debug.Stack())
					err = fmt.Errorf("command %s panicked: %v", c.Name(), r)
				}
			}()
			return c.Run(ctx, inv)
		})
	}
}
