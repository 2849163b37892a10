package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
)

type PingCommand struct{}

func (c *PingCommand) Name() string             { return "ping" }
func (c *PingCommand) Description() string      { return "Check bot latency" }
func (c *PingCommand) Group() string            { return "core" }
func (c *PingCommand) Category() string         { return "🕯️ Information" }
func (c *PingCommand) UserPermissions() []int64 { return nil }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		latency := v.Session.HeartbeatLatency().Milliseconds()
		return bot.RespondEphemeral(v.Session, v.Event, fmt.Sprintf("🏓 Pong! %dms", latency))
	case *command.MessageContext:
		latency := v.Session.HeartbeatLatency().Milliseconds()
		return bot.Message(v.Session, v.Event.ChannelID, fmt.Sprintf("🏓 Pong! %dms", latency))
	}
	return nil
}

func init() {
	command.RegisterCommand(
		&PingCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
