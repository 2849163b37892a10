package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
	"github.com/keshon/raid-herald/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string             { return "about" }
func (c *AboutCommand) Description() string      { return "Show version and build info" }
func (c *AboutCommand) Group() string            { return "core" }
func (c *AboutCommand) Category() string         { return "🕯️ Information" }
func (c *AboutCommand) UserPermissions() []int64 { return nil }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		return bot.RespondEmbedEphemeral(v.Session, v.Event, buildAboutEmbed())
	case *command.MessageContext:
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, buildAboutEmbed())
		return err
	}
	return nil
}

func buildAboutEmbed() *discordgo.MessageEmbed {
	buildDate := "unknown"
	if version.BuildDate != "unknown" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		}
	}

	goVer := version.GoVersion
	if goVer != "unknown" {
		goVer = strings.TrimPrefix(goVer, "go")
	}

	return embed.NewEmbed().
		SetColor(render.EmbedColor).
		SetDescription(fmt.Sprintf("ℹ️ **About %s**\n\n%s", version.AppName, version.AppDescription)).
		AddField("Release", fmt.Sprintf("%s (Go %s)", buildDate, goVer)).
		AddField("Repository", "https://github.com/keshon/raid-herald").
		MessageEmbed
}

func init() {
	command.RegisterCommand(
		&AboutCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
