package events

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type JoinCommand struct{}

func (c *JoinCommand) Name() string             { return "join" }
func (c *JoinCommand) Description() string      { return "Join a scheduled event" }
func (c *JoinCommand) Group() string            { return "events" }
func (c *JoinCommand) Category() string         { return "📅 Events" }
func (c *JoinCommand) UserPermissions() []int64 { return nil }

func (c *JoinCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *JoinCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		id := v.Event.ApplicationCommandData().Options[0].StringValue()
		user := v.Event.Member.User
		outcome := v.Events.Join(id, user.ID, user.Username)
		return bot.RespondEmbedEphemeral(v.Session, v.Event, joinFeedback(v.Events, id, outcome))

	case *command.MessageContext:
		if len(v.Args) < 1 {
			_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, notice("Usage: `!join <event-id>`"))
			return err
		}
		id := v.Args[0]
		outcome := v.Events.Join(id, v.Event.Author.ID, v.Event.Author.Username)
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, joinFeedback(v.Events, id, outcome))
		return err
	}

	return nil
}

// Component handles the "⚔️ Join" button attached to event announcements.
// The custom ID carries the event ID after the colon.
func (c *JoinCommand) Component(ctx *command.ComponentInteractionContext) error {
	customID := ctx.Event.MessageComponentData().CustomID
	id := strings.TrimPrefix(customID, c.Name()+":")
	if id == customID || id == "" {
		return nil
	}

	member := ctx.Event.Member
	if member == nil || member.User == nil {
		return nil
	}

	outcome := ctx.Events.Join(id, member.User.ID, member.User.Username)
	return bot.RespondEmbedEphemeral(ctx.Session, ctx.Event, joinFeedback(ctx.Events, id, outcome))
}

// joinFeedback maps a join outcome onto the embed shown to the user. Shared
// by the slash, message and button paths so all three say the same thing.
func joinFeedback(reg *event.Registry, id string, outcome event.Outcome) *discordgo.MessageEmbed {
	switch outcome {
	case event.JoinedNew:
		ev, _ := reg.Get(id)
		return notice(fmt.Sprintf("⚔️ You're in. **%s** happens **%s**.", ev.Name, ev.When))
	case event.AlreadyJoined:
		ev, _ := reg.Get(id)
		return notice(fmt.Sprintf("Easy there, you're already signed up for **%s**.", ev.Name))
	default:
		return render.Error(fmt.Sprintf("No event with ID `%s`. Check `/raids` for the current list.", id))
	}
}

func init() {
	command.RegisterCommand(
		&JoinCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
