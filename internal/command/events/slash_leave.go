package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type LeaveCommand struct{}

func (c *LeaveCommand) Name() string             { return "leave" }
func (c *LeaveCommand) Description() string      { return "Leave a scheduled event" }
func (c *LeaveCommand) Group() string            { return "events" }
func (c *LeaveCommand) Category() string         { return "📅 Events" }
func (c *LeaveCommand) UserPermissions() []int64 { return nil }

func (c *LeaveCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "id",
				Description: "Event ID, shown by /raids",
				Required:    true,
			},
		},
	}
}

func (c *LeaveCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		id := v.Event.ApplicationCommandData().Options[0].StringValue()
		outcome := v.Events.Leave(id, v.Event.Member.User.ID)
		return bot.RespondEmbedEphemeral(v.Session, v.Event, leaveFeedback(v.Events, id, outcome))

	case *command.MessageContext:
		if len(v.Args) < 1 {
			_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, notice("Usage: `!leave <event-id>`"))
			return err
		}
		id := v.Args[0]
		outcome := v.Events.Leave(id, v.Event.Author.ID)
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, leaveFeedback(v.Events, id, outcome))
		return err
	}

	return nil
}

func leaveFeedback(reg *event.Registry, id string, outcome event.Outcome) *discordgo.MessageEmbed {
	switch outcome {
	case event.Left:
		ev, _ := reg.Get(id)
		return notice(fmt.Sprintf("👋 You've left **%s**. The raid will cope, somehow.", ev.Name))
	case event.NotJoined:
		ev, _ := reg.Get(id)
		return notice(fmt.Sprintf("You weren't signed up for **%s** in the first place.", ev.Name))
	default:
		return render.Error(fmt.Sprintf("No event with ID `%s`. Check `/raids` for the current list.", id))
	}
}

func init() {
	command.RegisterCommand(
		&LeaveCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
