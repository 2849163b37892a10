// Package susa holds the mascot command. Susa is the guild's dog; the
// command fetches a random picture of a stand-in from public dog APIs.
package susa

import (
	"context"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

const fetchFailText = "Susa is off chasing squirrels. Try again in a bit."

type SusaCommand struct{}

func (c *SusaCommand) Name() string             { return "susa" }
func (c *SusaCommand) Description() string      { return "Summon Susa, the guild mascot" }
func (c *SusaCommand) Group() string            { return "mascot" }
func (c *SusaCommand) Category() string         { return "🐾 Mascot" }
func (c *SusaCommand) UserPermissions() []int64 { return nil }

func (c *SusaCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *SusaCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		// The upstream APIs can take seconds, so defer first and follow up.
		if err := bot.RespondDeferred(v.Session, v.Event); err != nil {
			return err
		}
		url, err := v.Mascot.FetchRandomImage(context.Background())
		if err != nil {
			return bot.FollowupEmbed(v.Session, v.Event, render.Error(fetchFailText))
		}
		return bot.FollowupEmbed(v.Session, v.Event, render.Mascot(url))

	case *command.MessageContext:
		// No deferral on the message surface; send a placeholder and edit it.
		msg, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, fetchingEmbed())
		if err != nil {
			return err
		}
		url, err := v.Mascot.FetchRandomImage(context.Background())
		if err != nil {
			return bot.EditMessageEmbed(v.Session, msg.ChannelID, msg.ID, render.Error(fetchFailText))
		}
		return bot.EditMessageEmbed(v.Session, msg.ChannelID, msg.ID, render.Mascot(url))
	}

	return nil
}

func fetchingEmbed() *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(render.EmbedColor).
		SetDescription("🐾 Fetching Susa...").
		MessageEmbed
}

func init() {
	command.RegisterCommand(
		&SusaCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
