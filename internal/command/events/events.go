// Package events holds the scheduling commands: create, join, leave, cancel
// and list. Event state lives in the in-memory registry, so everything here
// is gone after a restart. The schedule command is message-only; the rest
// answer on both surfaces.
package events

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/config"
	"github.com/keshon/raid-herald/internal/render"
)

// notice builds a one-line embed in the accent color for join/leave/cancel
// feedback, where a full event embed would be noise.
func notice(text string) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(render.EmbedColor).
		SetDescription(text).
		MessageEmbed
}

// isPrivileged reports whether the member may cancel events they did not
// create. Interaction payloads carry resolved permissions, so check those
// first; the role walk needs member.GuildID, which interaction members
// leave empty, so fill it in before falling back.
func isPrivileged(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if member.GuildID == "" {
		member.GuildID = guildID
	}
	return bot.IsAdministrator(s, member, config.New())
}
