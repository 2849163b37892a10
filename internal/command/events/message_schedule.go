package events

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/config"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

// ScheduleCommand creates an event from a prefixed message. It has no slash
// definition on purpose: scheduling takes free-text arguments with quoting,
// which the message surface handles and slash options would fight.
type ScheduleCommand struct{}

func (c *ScheduleCommand) Name() string             { return "schedule" }
func (c *ScheduleCommand) Description() string      { return "Schedule a raid event (message command only)" }
func (c *ScheduleCommand) Group() string            { return "events" }
func (c *ScheduleCommand) Category() string         { return "📅 Events" }
func (c *ScheduleCommand) UserPermissions() []int64 { return nil }

func (c *ScheduleCommand) Run(ctx interface{}) error {
	v, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	prefix := config.New().CommandPrefix

	if len(v.Args) < 2 {
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, notice(fmt.Sprintf(
			"Usage: `%sschedule \"<name>\" \"<time>\" [description]`\nQuotes keep multi-word names together.", prefix)))
		return err
	}

	name := v.Args[0]
	when := v.Args[1]
	description := strings.Join(v.Args[2:], " ")

	ev := v.Events.Create(name, when, description, v.Event.Author.ID, v.Event.Author.Username)

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "⚔️ Join",
					Style:    discordgo.PrimaryButton,
					CustomID: "join:" + ev.ID,
				},
			},
		},
	}

	_, err := bot.MessageEmbedWithComponents(v.Session, v.Event.ChannelID, render.Created(ev, prefix), components)
	return err
}

func init() {
	command.RegisterCommand(
		&ScheduleCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
