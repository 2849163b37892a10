package events

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type RaidsCommand struct{}

func (c *RaidsCommand) Name() string             { return "raids" }
func (c *RaidsCommand) Description() string      { return "List scheduled events" }
func (c *RaidsCommand) Aliases() []string        { return []string{"events"} }
func (c *RaidsCommand) Group() string            { return "events" }
func (c *RaidsCommand) Category() string         { return "📅 Events" }
func (c *RaidsCommand) UserPermissions() []int64 { return nil }

func (c *RaidsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *RaidsCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		return bot.RespondEmbed(v.Session, v.Event, listEmbed(v.Events))

	case *command.MessageContext:
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, listEmbed(v.Events))
		return err
	}

	return nil
}

func listEmbed(reg *event.Registry) *discordgo.MessageEmbed {
	list := reg.List()
	if len(list) == 0 {
		return notice("Nothing on the calendar. `!schedule` something and give these people a purpose.")
	}
	return render.EventList(list)
}

func init() {
	command.RegisterCommand(
		&RaidsCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
