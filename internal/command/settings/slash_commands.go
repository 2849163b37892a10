// Package settings holds the admin surface: per-guild group toggles, slash
// re-registration and the command usage log, all under one /commands command.
package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
)

const (
	discordMaxMessageLength = 2000
	codeLeftBlockWrapper    = "```md"
	codeRightBlockWrapper   = "```"
)

var maxContentLength = discordMaxMessageLength - len(codeLeftBlockWrapper) - len(codeRightBlockWrapper)

type CommandsCommand struct{}

func (c *CommandsCommand) Name() string        { return "commands" }
func (c *CommandsCommand) Description() string { return "Inspect and manage command groups" }
func (c *CommandsCommand) Group() string       { return "core" }
func (c *CommandsCommand) Category() string    { return "⚙️ Settings" }
func (c *CommandsCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionAdministrator}
}

func (c *CommandsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Show which command groups are enabled on this server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "toggle",
				Description: "Enable or disable a command group",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "group",
						Description: "Command group to toggle",
						Required:    true,
						Choices:     groupChoices(),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "state",
						Description: "Enable or disable the group",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Enable", Value: "enable"},
							{Name: "Disable", Value: "disable"},
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "update",
				Description: "Re-register slash commands with Discord",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "target",
						Description: "Command name, group:<name>, or 'all'",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "log",
				Description: "Review recent command usage",
			},
		},
	}
}

func (c *CommandsCommand) Run(ctx interface{}) error {
	v, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	data := v.Event.ApplicationCommandData()
	if len(data.Options) == 0 {
		return nil
	}

	switch sub := data.Options[0]; sub.Name {
	case "status":
		return c.runStatus(v)
	case "toggle":
		return c.runToggle(v, sub.Options)
	case "update":
		return c.runUpdate(v, sub.Options)
	case "log":
		return c.runLog(v)
	}

	return nil
}

func (c *CommandsCommand) runStatus(v *command.SlashInteractionContext) error {
	disabledGroups, err := v.Storage.GetDisabledGroups(v.Event.GuildID)
	if err != nil {
		return err
	}
	disabled := make(map[string]bool)
	for _, g := range disabledGroups {
		disabled[g] = true
	}

	var sb strings.Builder
	sb.WriteString("Command groups on this server:\n\n")
	for _, group := range uniqueGroups() {
		status := "✅ enabled"
		if disabled[group] {
			status = "🚫 disabled"
		}
		sb.WriteString(fmt.Sprintf("`%s`\t\t: %s\n", group, status))
	}

	return bot.RespondEphemeral(v.Session, v.Event, sb.String())
}

func (c *CommandsCommand) runToggle(v *command.SlashInteractionContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	if len(opts) < 2 {
		return nil
	}
	group := opts[0].StringValue()
	state := opts[1].StringValue()

	if group == "core" && state == "disable" {
		return bot.RespondEphemeral(v.Session, v.Event, "You can't disable the `core` group. That's the spine of this whole operation.")
	}

	guildID := v.Event.GuildID

	if state == "disable" {
		if err := v.Storage.DisableGroup(guildID, group); err != nil {
			return bot.RespondEphemeral(v.Session, v.Event, "Failed to disable the group.")
		}
	} else {
		if err := v.Storage.EnableGroup(guildID, group); err != nil {
			return bot.RespondEphemeral(v.Session, v.Event, "Failed to enable the group.")
		}
	}

	// Re-register so disabled commands disappear from the slash picker
	// instead of failing when used.
	bot.PublishSystemEvent(bot.SystemEvent{
		Type:    bot.SystemEventRefreshCommands,
		GuildID: guildID,
		Target:  "group:" + group,
	})

	if state == "disable" {
		return bot.RespondEphemeral(v.Session, v.Event, fmt.Sprintf("Group `%s` disabled. Re-registration queued.", group))
	}
	return bot.RespondEphemeral(v.Session, v.Event, fmt.Sprintf("Group `%s` enabled. Re-registration queued.", group))
}

func (c *CommandsCommand) runUpdate(v *command.SlashInteractionContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	target := "all"
	if len(opts) > 0 && opts[0].StringValue() != "" {
		target = opts[0].StringValue()
	}

	bot.PublishSystemEvent(bot.SystemEvent{
		Type:    bot.SystemEventRefreshCommands,
		GuildID: v.Event.GuildID,
		Target:  target,
	})

	return bot.RespondEphemeral(v.Session, v.Event, fmt.Sprintf("Command update requested for `%s`.", target))
}

func (c *CommandsCommand) runLog(v *command.SlashInteractionContext) error {
	records, err := v.Storage.FetchCommandHistory(v.Event.GuildID)
	if err != nil {
		return bot.RespondEphemeral(v.Session, v.Event, fmt.Sprintf("Failed to fetch command history: %v", err))
	}

	if len(records) == 0 {
		return bot.RespondEphemeral(v.Session, v.Event, "No command history yet. A quiet guild, or a fresh one.")
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%-19s\t%-15s\t%-12s\t%s\n", "# Datetime", "# Username", "# Channel", "# Command"))

	// Newest first, capped to what fits in one Discord message.
	for idx := len(records) - 1; idx >= 0; idx-- {
		r := records[idx]
		line := fmt.Sprintf(
			"%-19s\t%-15s\t#%-12s\t/%s\n",
			r.Datetime.Format("2006-01-02 15:04:05"),
			r.Username,
			r.ChannelName,
			r.Command,
		)
		if builder.Len()+len(line) > maxContentLength {
			break
		}
		builder.WriteString(line)
	}

	out := codeLeftBlockWrapper + "\n" + builder.String() + codeRightBlockWrapper
	return bot.RespondEphemeral(v.Session, v.Event, out)
}

// uniqueGroups collects the distinct groups across all registered commands.
func uniqueGroups() []string {
	set := map[string]struct{}{}
	for _, c := range command.AllCommands() {
		if group := c.Group(); group != "" {
			set[group] = struct{}{}
		}
	}
	var result []string
	for group := range set {
		result = append(result, group)
	}
	sort.Strings(result)
	return result
}

func groupChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, group := range uniqueGroups() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  group,
			Value: group,
		})
	}
	return choices
}

func init() {
	command.RegisterCommand(
		&CommandsCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithUserPermissionCheck(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
