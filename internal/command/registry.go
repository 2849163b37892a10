package command

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/pkg/cmd"
)

// Command is the project-facing view of a registered Discord command:
// metadata and definitions come from the underlying command, Run and
// Component go through the full middleware chain.
type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	UserPermissions() []int64
	Aliases() []string
	SlashDefinition() *discordgo.ApplicationCommand
	ContextDefinition() *discordgo.ApplicationCommand
	ReactionDefinition() string
	Run(ctx interface{}) error
	Component(ctx *ComponentInteractionContext) error
}

type registeredCommand struct {
	chain cmd.Command
	root  *DiscordAdapter
}

func (r *registeredCommand) Name() string             { return r.root.Name() }
func (r *registeredCommand) Description() string      { return r.root.Description() }
func (r *registeredCommand) Group() string            { return r.root.Group() }
func (r *registeredCommand) Category() string         { return r.root.Category() }
func (r *registeredCommand) UserPermissions() []int64 { return r.root.UserPermissions() }
func (r *registeredCommand) Aliases() []string        { return r.root.Aliases() }

func (r *registeredCommand) Run(ctx interface{}) error {
	inv := &cmd.Invocation{Data: ctx}
	switch v := ctx.(type) {
	case *SlashInteractionContext:
		inv.Args = v.Args
	case *MessageContext:
		inv.Args = v.Args
	case *ComponentInteractionContext:
		inv.Args = v.Args
	}
	return r.chain.Run(context.Background(), inv)
}

// Component routes a component interaction through the middleware chain.
func (r *registeredCommand) Component(ctx *ComponentInteractionContext) error {
	return r.chain.Run(context.Background(), &cmd.Invocation{Args: ctx.Args, Data: ctx})
}

func (r *registeredCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return r.root.SlashDefinition()
}

func (r *registeredCommand) ContextDefinition() *discordgo.ApplicationCommand {
	return r.root.ContextDefinition()
}

func (r *registeredCommand) ReactionDefinition() string {
	return r.root.ReactionDefinition()
}

func wrapRegistered(c cmd.Command) (*registeredCommand, bool) {
	adapter, ok := cmd.Root(c).(*DiscordAdapter)
	if !ok {
		return nil, false
	}
	return &registeredCommand{chain: c, root: adapter}, true
}

// GetCommand returns a registered command by name or alias.
func GetCommand(name string) (Command, bool) {
	c := cmd.DefaultRegistry.Get(name)
	if c == nil {
		return nil, false
	}
	rc, ok := wrapRegistered(c)
	if !ok {
		return nil, false
	}
	return rc, true
}

// AllCommands returns every registered command, sorted by name.
func AllCommands() []Command {
	var out []Command
	for _, c := range cmd.DefaultRegistry.GetAll() {
		if rc, ok := wrapRegistered(c); ok {
			out = append(out, rc)
		}
	}
	return out
}
