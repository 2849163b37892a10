package raid

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type CotrCommand struct{}

func (c *CotrCommand) Name() string             { return "cotr" }
func (c *CotrCommand) Description() string      { return "Show the Code of the Raid" }
func (c *CotrCommand) Group() string            { return "raid" }
func (c *CotrCommand) Category() string         { return "⚔️ Raid" }
func (c *CotrCommand) UserPermissions() []int64 { return nil }

func (c *CotrCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *CotrCommand) Run(ctx interface{}) error {
	msg := cotrEmbed()

	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		return bot.RespondEmbed(v.Session, v.Event, msg)
	case *command.MessageContext:
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, msg)
		return err
	}

	return nil
}

func cotrEmbed() *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(render.EmbedColor).
		SetTitle("📜 Code of the Raid").
		SetDescription("The rules every raider signs up for. Ignorance is not a defense.").
		AddField("I. The pull is sacred", "Nobody pulls before the raid leader calls it. Not even \"by accident\".").
		AddField("II. Come prepared", "Flasks, food, repaired gear. The raid is not your shopping trip.").
		AddField("III. Loot stays civil", "Roll, accept the result, move on. Loot drama ends raids faster than any boss.").
		AddField("IV. Own your deaths", "Stood in the fire? Say so. The log sees everything anyway.").
		SetFooter("The raid leader has the final word.").
		MessageEmbed
}

func init() {
	command.RegisterCommand(
		&CotrCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
