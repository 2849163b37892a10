// Package cmd provides a transport-agnostic command core: a command is
// something with a name, description, and Run(ctx, invocation). How it is
// registered and dispatched (Discord slash, message prefix, CLI) is defined
// by adapters that wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: arguments
// and an opaque payload. Adapters set Data to their own context type.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Permissions,
// aliases, and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Aliased is implemented by commands reachable under alternate names.
// The registry indexes aliases so lookups resolve them to the command.
type Aliased interface {
	Aliases() []string
}
