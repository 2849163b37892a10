package events

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/keshon/raid-herald/internal/event"
)

func TestJoinFeedbackMessages(t *testing.T) {
	req := require.New(t)

	// Given a registry with one event
	reg := event.NewRegistry()
	ev := reg.Create("Molten Core", "tonight 20:00", "", "u1", "Keshon")

	// When a new member joins
	msg := joinFeedback(reg, ev.ID, reg.Join(ev.ID, "u2", "Sarah"))

	// Then the confirmation names the event and its time
	req.Contains(msg.Description, "Molten Core")
	req.Contains(msg.Description, "tonight 20:00")

	// When the same member joins again
	msg = joinFeedback(reg, ev.ID, reg.Join(ev.ID, "u2", "Sarah"))

	// Then the reply is the already-joined variant
	req.Contains(msg.Description, "already signed up")

	// When the event does not exist
	msg = joinFeedback(reg, "zzzzzz", reg.Join("zzzzzz", "u2", "Sarah"))

	// Then an error embed names the bad ID
	req.Equal("❌ Error", msg.Title)
	req.Contains(msg.Description, "zzzzzz")
}

func TestLeaveFeedbackMessages(t *testing.T) {
	req := require.New(t)

	// Given an event with one participant
	reg := event.NewRegistry()
	ev := reg.Create("Onyxia", "friday", "", "u1", "Keshon")
	reg.Join(ev.ID, "u2", "Sarah")

	// When the participant leaves
	msg := leaveFeedback(reg, ev.ID, reg.Leave(ev.ID, "u2"))

	// Then the goodbye names the event
	req.Contains(msg.Description, "left")
	req.Contains(msg.Description, "Onyxia")

	// When a non-participant leaves
	msg = leaveFeedback(reg, ev.ID, reg.Leave(ev.ID, "u3"))

	// Then the reply says they never signed up
	req.Contains(msg.Description, "weren't signed up")

	// When the event does not exist
	msg = leaveFeedback(reg, "nope", reg.Leave("nope", "u2"))

	// Then an error embed comes back
	req.Equal("❌ Error", msg.Title)
}

func TestCancelFeedbackMessages(t *testing.T) {
	req := require.New(t)

	// Given an event with two participants
	reg := event.NewRegistry()
	ev := reg.Create("Blackwing Lair", "saturday", "", "u1", "Keshon")
	reg.Join(ev.ID, "u2", "Sarah")
	reg.Join(ev.ID, "u3", "Mike")

	// When an outsider tries to cancel
	snapshot, _ := reg.Get(ev.ID)
	outcome, count := reg.Cancel(ev.ID, "u9", false)
	msg := cancelFeedback(snapshot, ev.ID, outcome, count)

	// Then the forbidden error comes back and the event survives
	req.Equal("❌ Error", msg.Title)
	req.Contains(msg.Description, "creator")
	_, ok := reg.Get(ev.ID)
	req.True(ok)

	// When the creator cancels
	snapshot, _ = reg.Get(ev.ID)
	outcome, count = reg.Cancel(ev.ID, "u1", false)
	msg = cancelFeedback(snapshot, ev.ID, outcome, count)

	// Then the confirmation names the event and counts participants
	req.Contains(msg.Description, "Blackwing Lair")
	req.Contains(msg.Description, "2")

	// When the ID is gone
	outcome, count = reg.Cancel(ev.ID, "u1", false)
	msg = cancelFeedback(event.ScheduledEvent{}, ev.ID, outcome, count)

	// Then the not-found error comes back
	req.Equal("❌ Error", msg.Title)
	req.Contains(msg.Description, ev.ID)
}

func TestListEmbed(t *testing.T) {
	req := require.New(t)

	// Given an empty registry
	reg := event.NewRegistry()

	// When the list embed is built
	msg := listEmbed(reg)

	// Then the empty notice comes back instead of an event list
	req.Contains(msg.Description, "Nothing on the calendar")
	req.Empty(msg.Fields)

	// Given two events
	reg.Create("Molten Core", "tonight", "", "u1", "Keshon")
	reg.Create("Onyxia", "friday", "", "u1", "Keshon")

	// When the list embed is built again
	msg = listEmbed(reg)

	// Then both events appear as fields in creation order
	req.Len(msg.Fields, 2)
	req.Contains(msg.Fields[0].Name, "Molten Core")
	req.Contains(msg.Fields[1].Name, "Onyxia")
}

func TestIsPrivileged(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "test-token")

	st := discordgo.NewState()
	req.NoError(st.GuildAdd(&discordgo.Guild{ID: "g1", OwnerID: "owner"}))
	s := &discordgo.Session{State: st}

	// Given a member whose interaction payload carries the admin bit
	admin := &discordgo.Member{
		User:        &discordgo.User{ID: "u1", Username: "Keshon"},
		Permissions: discordgo.PermissionAdministrator,
	}

	// Then the fast path grants without a guild lookup
	req.True(isPrivileged(s, "g1", admin))

	// Given a plain member with no roles
	plain := &discordgo.Member{User: &discordgo.User{ID: "u2", Username: "Sarah"}}

	// Then the role walk denies, as does a missing member
	req.False(isPrivileged(s, "g1", plain))
	req.False(isPrivileged(s, "g1", nil))

	// Given the guild owner
	owner := &discordgo.Member{User: &discordgo.User{ID: "owner", Username: "Boss"}}

	// Then ownership counts as privileged
	req.True(isPrivileged(s, "g1", owner))
}
