package raid

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type WipeCommand struct{}

func (c *WipeCommand) Name() string             { return "wipe" }
func (c *WipeCommand) Description() string      { return "What to do after a wipe" }
func (c *WipeCommand) Group() string            { return "raid" }
func (c *WipeCommand) Category() string         { return "⚔️ Raid" }
func (c *WipeCommand) UserPermissions() []int64 { return nil }

func (c *WipeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *WipeCommand) Run(ctx interface{}) error {
	msg := wipeEmbed()

	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		return bot.RespondEmbed(v.Session, v.Event, msg)
	case *command.MessageContext:
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, msg)
		return err
	}

	return nil
}

func wipeEmbed() *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(render.EmbedColor).
		SetTitle("💀 Wipe!").
		SetDescription("That one's on all of us. Shake it off, we go again.").
		AddField("Run back", "Regroup at the entrance, rebuff, and wait for the pull call.").
		AddField("While you run", "Say what killed you. One sentence, no essays.").
		AddField("House rule", "Nobody rage-quits after a wipe. The raid ends when the raid leader says so.").
		MessageEmbed
}

func init() {
	command.RegisterCommand(
		&WipeCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
