package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/roster"
)

func TestRoster_RendersAllEntriesInOrder(t *testing.T) {
	req := require.New(t)
	r := roster.Default()
	r.EmojiOverrides["Alex Thunder"] = "🛡️"

	msg := Roster(r)

	req.Equal("🗡️ Raid Participants", msg.Title)
	req.Equal("Ready for battle!", msg.Description)
	req.Len(msg.Fields, 1)
	req.Equal("Participants", msg.Fields[0].Name)

	lines := strings.Split(msg.Fields[0].Value, "\n")
	req.Len(lines, 10)
	req.Equal("🛡️ **Alex Thunder** - *Tank - Shield Bearer*", lines[0])
	req.Equal("⚔️ **Sarah Lightbringer** - *Healer - Divine Support*", lines[1])
	req.Equal("⚔️ **Zara Moonwhisper** - *Healer - Nature's Guardian*", lines[9])
	req.Equal("Total participants: 10", msg.Footer.Text)
}

func TestRoster_EmptyRoster(t *testing.T) {
	req := require.New(t)
	r := &roster.Roster{DefaultEmoji: "⚔️"}

	msg := Roster(r)

	req.Len(msg.Fields, 1)
	req.Equal("No Participants", msg.Fields[0].Name)
	req.Contains(msg.Fields[0].Value, "No raid participants configured")
	req.Equal("Total participants: 0", msg.Footer.Text)
}

func TestEvent_FieldOrder(t *testing.T) {
	req := require.New(t)
	ev := event.ScheduledEvent{
		ID:          "abc123",
		Name:        "Night Run",
		When:        "20:00",
		Description: "bring ammo",
		CreatorID:   "userA",
		CreatorName: "Alice",
		Participants: []event.Participant{
			{ID: "userB", Name: "Bob"},
		},
		CreatedAt: time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC),
	}

	msg := Event(ev)

	req.Len(msg.Fields, 6)
	req.Equal("Name", msg.Fields[0].Name)
	req.Equal("Night Run", msg.Fields[0].Value)
	req.Equal("Time", msg.Fields[1].Name)
	req.Equal("20:00", msg.Fields[1].Value)
	req.Equal("ID", msg.Fields[2].Name)
	req.Equal("`abc123`", msg.Fields[2].Value)
	req.Equal("Description", msg.Fields[3].Name)
	req.Equal("Created by", msg.Fields[4].Name)
	req.Equal("Participants", msg.Fields[5].Name)
	req.Equal("Bob", msg.Fields[5].Value)
	req.Equal("Created 2024-03-01 19:30", msg.Footer.Text)
}

func TestEvent_OmitsEmptyDescription(t *testing.T) {
	req := require.New(t)
	ev := event.ScheduledEvent{ID: "abc123", Name: "Night Run", When: "20:00", CreatorName: "Alice"}

	msg := Event(ev)

	req.Len(msg.Fields, 5)
	for _, f := range msg.Fields {
		req.NotEqual("Description", f.Name)
	}
	req.Equal("*No participants yet*", msg.Fields[4].Value)
}

func TestCreated_IncludesJoinHint(t *testing.T) {
	req := require.New(t)
	ev := event.ScheduledEvent{ID: "abc123", Name: "Night Run", When: "20:00"}

	msg := Created(ev, "!")

	req.Equal("📅 Event Scheduled", msg.Title)
	req.Contains(msg.Description, "Night Run")
	req.Contains(msg.Description, "20:00")
	req.Equal("Join with /join abc123 or !join abc123", msg.Footer.Text)
}

func TestEventList_OneBlockPerEvent(t *testing.T) {
	req := require.New(t)
	events := []event.ScheduledEvent{
		{ID: "aaa111", Name: "First", When: "19:00", CreatorName: "Alice"},
		{ID: "bbb222", Name: "Second", When: "20:00", CreatorName: "Bob",
			Participants: []event.Participant{{ID: "u1", Name: "Carol"}}},
	}

	msg := EventList(events)

	req.Equal("📅 Scheduled Events", msg.Title)
	req.Len(msg.Fields, 2)
	req.Equal("📌 First", msg.Fields[0].Name)
	req.Contains(msg.Fields[0].Value, "ID: `aaa111`")
	req.Contains(msg.Fields[0].Value, "Participants: none yet")
	req.Equal("📌 Second", msg.Fields[1].Name)
	req.Contains(msg.Fields[1].Value, "Participants: Carol")
	req.Equal("Total events: 2", msg.Footer.Text)
}

func TestParticipantSummary_CapsAtThree(t *testing.T) {
	req := require.New(t)

	var participants []event.Participant
	for i := 1; i <= 5; i++ {
		participants = append(participants, event.Participant{
			ID:   fmt.Sprintf("u%d", i),
			Name: fmt.Sprintf("User%d", i),
		})
	}

	// Given 5 participants, the summary names the first 3 and appends (+2 more)
	req.Equal("User1, User2, User3 (+2 more)", ParticipantSummary(participants))

	req.Equal("User1, User2, User3", ParticipantSummary(participants[:3]))
	req.Equal("User1, User2", ParticipantSummary(participants[:2]))
	req.Empty(ParticipantSummary(nil))
}

func TestError_Display(t *testing.T) {
	req := require.New(t)

	msg := Error("An error occurred while processing the raid command.")

	req.Equal("❌ Error", msg.Title)
	req.Equal("An error occurred while processing the raid command.", msg.Description)
	req.Equal(ErrColor, msg.Color)
}

func TestMascot_SetsImage(t *testing.T) {
	req := require.New(t)

	msg := Mascot("https://random.dog/susa.gif")

	req.NotNil(msg.Image)
	req.Equal("https://random.dog/susa.gif", msg.Image.URL)
	req.Equal(EmbedColor, msg.Color)
}
