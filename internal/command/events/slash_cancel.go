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

// CancelCommand removes an event. The registry only lets the creator or a
// privileged caller through, so no permission is declared here; an admin
// requirement would lock regular creators out of their own events.
type CancelCommand struct{}

func (c *CancelCommand) Name() string             { return "cancel" }
func (c *CancelCommand) Description() string      { return "Cancel a scheduled event (creator or admin)" }
func (c *CancelCommand) Group() string            { return "events" }
func (c *CancelCommand) Category() string         { return "📅 Events" }
func (c *CancelCommand) UserPermissions() []int64 { return nil }

func (c *CancelCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *CancelCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		id := v.Event.ApplicationCommandData().Options[0].StringValue()
		member := v.Event.Member
		privileged := isPrivileged(v.Session, v.Event.GuildID, member)
		// Name has to be read before Cancel drops the record.
		ev, _ := v.Events.Get(id)
		outcome, count := v.Events.Cancel(id, member.User.ID, privileged)
		return bot.RespondEmbedEphemeral(v.Session, v.Event, cancelFeedback(ev, id, outcome, count))

	case *command.MessageContext:
		if len(v.Args) < 1 {
			_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, notice("Usage: `!cancel <event-id>`"))
			return err
		}
		id := v.Args[0]
		// Message payloads split the user off the member record.
		member := v.Event.Member
		if member != nil && member.User == nil {
			member.User = v.Event.Author
		}
		privileged := isPrivileged(v.Session, v.Event.GuildID, member)
		ev, _ := v.Events.Get(id)
		outcome, count := v.Events.Cancel(id, v.Event.Author.ID, privileged)
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, cancelFeedback(ev, id, outcome, count))
		return err
	}

	return nil
}

func cancelFeedback(ev event.ScheduledEvent, id string, outcome event.Outcome, count int) *discordgo.MessageEmbed {
	switch outcome {
	case event.Cancelled:
		text := fmt.Sprintf("🗑️ **%s** is cancelled.", ev.Name)
		if count > 0 {
			text += fmt.Sprintf(" %d had signed up, they just got their evening back.", count)
		}
		return notice(text)
	case event.Forbidden:
		return render.Error("Only the event creator or a server admin can cancel this one.")
	default:
		return render.Error(fmt.Sprintf("No event with ID `%s`. Check `/raids` for the current list.", id))
	}
}

func init() {
	command.RegisterCommand(
		&CancelCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
