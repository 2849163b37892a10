// Package render builds the bot's embeds. All builders are pure: they take
// domain records and return a *discordgo.MessageEmbed without touching the
// transport, so formatting rules stay unit-testable.
package render

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/roster"
	"github.com/keshon/raid-herald/pkg/util"
)

const (
	EmbedColor = 0xb01e66
	ErrColor   = 0xFF0000
)

// ParticipantSummaryLimit caps how many names are listed inline before the
// rest collapse into a "(+N more)" suffix.
const ParticipantSummaryLimit = 3

// Roster renders the static raid roster: one line per entry in roster order
// and a footer with the total count.
func Roster(r *roster.Roster) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle("🗡️ Raid Participants").
		SetDescription("Ready for battle!")

	if len(r.Entries) == 0 {
		msg = msg.AddField("No Participants", "No raid participants configured. Please check the roster configuration.")
	} else {
		var lines []string
		for _, entry := range r.Entries {
			lines = append(lines, fmt.Sprintf("%s **%s** - *%s*", r.Emoji(entry.Name), entry.Name, entry.Role))
		}
		msg = msg.AddField("Participants", strings.Join(lines, "\n"))
	}

	msg = msg.SetFooter(fmt.Sprintf("Total participants: %d", len(r.Entries)))
	return msg.MessageEmbed
}

// Event renders a single scheduled event with its full details.
func Event(ev event.ScheduledEvent) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle("📅 Scheduled Event").
		AddField("Name", ev.Name).
		AddField("Time", ev.When).
		AddField("ID", fmt.Sprintf("`%s`", ev.ID))

	if ev.Description != "" {
		msg = msg.AddField("Description", ev.Description)
	}

	msg = msg.AddField("Created by", ev.CreatorName)

	participants := ParticipantSummary(ev.Participants)
	if participants == "" {
		participants = "*No participants yet*"
	}
	msg = msg.AddField("Participants", participants)

	if created := util.FormatTimeTpl(ev.CreatedAt, "YYYY-MM-DD hh:mm"); created != "" {
		msg = msg.SetFooter("Created " + created)
	}

	return msg.MessageEmbed
}

// Created renders the confirmation shown right after scheduling, including
// the id and a hint for how to join.
func Created(ev event.ScheduledEvent, prefix string) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle("📅 Event Scheduled").
		SetDescription(fmt.Sprintf("**%s** is set for **%s**.", ev.Name, ev.When)).
		AddField("ID", fmt.Sprintf("`%s`", ev.ID))

	if ev.Description != "" {
		msg = msg.AddField("Description", ev.Description)
	}

	msg = msg.SetFooter(fmt.Sprintf("Join with /join %s or %sjoin %s", ev.ID, prefix, ev.ID))
	return msg.MessageEmbed
}

// EventList renders all scheduled events, one block per event in creation
// order. The "none scheduled" message is the caller's concern.
func EventList(events []event.ScheduledEvent) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle("📅 Scheduled Events")

	for _, ev := range events {
		var lines []string
		lines = append(lines, fmt.Sprintf("ID: `%s`", ev.ID))
		lines = append(lines, "Time: "+ev.When)
		if ev.Description != "" {
			lines = append(lines, "Description: "+ev.Description)
		}
		lines = append(lines, "Creator: "+ev.CreatorName)
		if summary := ParticipantSummary(ev.Participants); summary != "" {
			lines = append(lines, "Participants: "+summary)
		} else {
			lines = append(lines, "Participants: none yet")
		}
		msg = msg.AddField("📌 "+ev.Name, strings.Join(lines, "\n"))
	}

	msg = msg.SetFooter(fmt.Sprintf("Total events: %d", len(events)))
	return msg.MessageEmbed
}

// Mascot renders a fetched mascot picture.
func Mascot(url string) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle("🐾 Susa reporting for duty!").
		SetImage(url).
		MessageEmbed
}

// Error renders the generic short error display.
func Error(message string) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetColor(ErrColor).
		SetTitle("❌ Error").
		SetDescription(message).
		MessageEmbed
}

// ParticipantSummary lists the first few participant names inline and
// collapses the rest into a "(+N more)" suffix. Empty membership yields
// an empty string.
func ParticipantSummary(participants []event.Participant) string {
	if len(participants) == 0 {
		return ""
	}

	names := make([]string, 0, ParticipantSummaryLimit)
	for i, p := range participants {
		if i == ParticipantSummaryLimit {
			break
		}
		names = append(names, p.Name)
	}

	summary := strings.Join(names, ", ")
	if extra := len(participants) - ParticipantSummaryLimit; extra > 0 {
		summary += fmt.Sprintf(" (+%d more)", extra)
	}
	return summary
}
