// Package core holds the informational commands: help, about and ping.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/config"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
	"github.com/keshon/raid-herald/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string             { return "help" }
func (c *HelpCommand) Description() string      { return "Get a list of available commands" }
func (c *HelpCommand) Group() string            { return "core" }
func (c *HelpCommand) Category() string         { return "🕯️ Information" }
func (c *HelpCommand) UserPermissions() []int64 { return nil }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "view_as",
				Description: "View commands grouped by category or as a flat list",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Categories", Value: "category"},
					{Name: "Flat list", Value: "flat"},
				},
			},
		},
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	prefix := config.New().CommandPrefix

	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		viewAs := "category"
		if opts := v.Event.ApplicationCommandData().Options; len(opts) > 0 {
			viewAs = opts[0].StringValue()
		}

		// Resolved member permissions ride along on interactions, so admin
		// commands can be hidden from members who can't run them.
		showAdmin := v.Event.Member != nil && v.Event.Member.Permissions&discordgo.PermissionAdministrator != 0

		var output string
		switch viewAs {
		case "flat":
			output = buildHelpFlat(showAdmin, prefix)
		default:
			output = buildHelpByCategory(showAdmin, prefix)
		}

		return bot.RespondEmbedEphemeral(v.Session, v.Event, &discordgo.MessageEmbed{
			Title:       version.AppName + " Help",
			Description: output,
			Color:       render.EmbedColor,
		})

	case *command.MessageContext:
		// Message payloads carry no resolved permissions; keep admin
		// commands out rather than guessing.
		_, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
			Title:       version.AppName + " Help",
			Description: buildHelpByCategory(false, prefix),
			Color:       render.EmbedColor,
		})
		return err
	}

	return nil
}

func buildHelpByCategory(showAdmin bool, prefix string) string {
	categoryMap := make(map[string][]command.Command)
	for _, c := range command.AllCommands() {
		if requiresAdmin(c) && !showAdmin {
			continue
		}
		categoryMap[c.Category()] = append(categoryMap[c.Category()], c)
	}

	var cats []string
	for cat := range categoryMap {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cats[i]], config.CategoryWeights[cats[j]]
		if wi != wj {
			return wi < wj
		}
		return cats[i] < cats[j]
	})

	var sb strings.Builder
	for _, cat := range cats {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		cmds := categoryMap[cat]
		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name() < cmds[j].Name()
		})
		for _, c := range cmds {
			sb.WriteString(fmt.Sprintf("`%s` - %s\n", displayName(c, prefix), c.Description()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func buildHelpFlat(showAdmin bool, prefix string) string {
	var cmds []command.Command
	for _, c := range command.AllCommands() {
		if requiresAdmin(c) && !showAdmin {
			continue
		}
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})

	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(fmt.Sprintf("`%s` - %s\n", displayName(c, prefix), c.Description()))
	}
	return sb.String()
}

// displayName renders the command the way a user would type it: slash-capable
// commands with "/", message-only ones with the configured prefix.
func displayName(c command.Command, prefix string) string {
	if c.SlashDefinition() == nil && c.ContextDefinition() == nil {
		return prefix + c.Name()
	}
	return "/" + c.Name()
}

func requiresAdmin(c command.Command) bool {
	for _, p := range c.UserPermissions() {
		if p&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}
	return false
}

func init() {
	command.RegisterCommand(
		&HelpCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
