package middleware

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/storage"
	"github.com/keshon/raid-herald/pkg/cmd"
)

type runRecorder struct {
	name  string
	group string
	runs  int
}

func (r *runRecorder) Name() string             { return r.name }
func (r *runRecorder) Description() string      { return "test command" }
func (r *runRecorder) Group() string            { return r.group }
func (r *runRecorder) Category() string         { return "Testing" }
func (r *runRecorder) UserPermissions() []int64 { return nil }

func (r *runRecorder) Run(_ context.Context, _ *cmd.Invocation) error {
	r.runs++
	return nil
}

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func messageInvocation(store *storage.Storage, guildID string) *cmd.Invocation {
	return &cmd.Invocation{Data: &command.MessageContext{
		Storage: store,
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   guildID,
			ChannelID: "chan-1",
		}},
	}}
}

func TestWithGuildOnly_BlocksDirectMessages(t *testing.T) {
	req := require.New(t)

	// Given a guild-only command invoked outside a guild
	inner := &runRecorder{name: "guildonly"}
	chain := WithGuildOnly()(inner)

	// When running with an empty guild ID
	err := chain.Run(context.Background(), messageInvocation(nil, ""))

	// Then the command is silently skipped
	req.NoError(err)
	req.Zero(inner.runs)
}

func TestWithGuildOnly_AllowsGuildMessages(t *testing.T) {
	req := require.New(t)

	inner := &runRecorder{name: "guildonly"}
	chain := WithGuildOnly()(inner)

	err := chain.Run(context.Background(), messageInvocation(nil, "guild-1"))

	req.NoError(err)
	req.Equal(1, inner.runs)
}

func TestWithGroupAccessCheck_BlocksDisabledGroup(t *testing.T) {
	req := require.New(t)

	// Given the command's group is disabled for the guild
	store := newTestStorage(t)
	req.NoError(store.DisableGroup("guild-1", "raid"))

	inner := &runRecorder{name: "grouped", group: "raid"}
	chain := WithGroupAccessCheck()(inner)

	// When running a message command in that guild
	err := chain.Run(context.Background(), messageInvocation(store, "guild-1"))

	// Then the command does not run
	req.NoError(err)
	req.Zero(inner.runs)
}

func TestWithGroupAccessCheck_AllowsEnabledGroup(t *testing.T) {
	req := require.New(t)

	store := newTestStorage(t)

	inner := &runRecorder{name: "grouped", group: "raid"}
	chain := WithGroupAccessCheck()(inner)

	err := chain.Run(context.Background(), messageInvocation(store, "guild-1"))

	req.NoError(err)
	req.Equal(1, inner.runs)
}

func TestWithGroupAccessCheck_IgnoresUngroupedCommands(t *testing.T) {
	req := require.New(t)

	// Given some group is disabled but the command declares no group
	store := newTestStorage(t)
	req.NoError(store.DisableGroup("guild-1", "raid"))

	inner := &runRecorder{name: "ungrouped"}
	chain := WithGroupAccessCheck()(inner)

	err := chain.Run(context.Background(), messageInvocation(store, "guild-1"))

	req.NoError(err)
	req.Equal(1, inner.runs)
}

func TestWithRecovery_TurnsPanicIntoError(t *testing.T) {
	req := require.New(t)

	// Given a command that panics
	chain := WithRecovery()(cmd.Wrap(&runRecorder{name: "panicky"}, func(_ context.Context, _ *cmd.Invocation) error {
		panic("boom")
	}))

	// When running it
	err := chain.Run(context.Background(), &cmd.Invocation{})

	// Then the panic surfaces as an error instead of crashing
	req.Error(err)
	req.Contains(err.Error(), "panicky")
	req.Contains(err.Error(), "boom")
}

func TestWithRecovery_PassesThroughNormally(t *testing.T) {
	req := require.New(t)

	inner := &runRecorder{name: "calm"}
	chain := WithRecovery()(inner)

	err := chain.Run(context.Background(), &cmd.Invocation{})

	req.NoError(err)
	req.Equal(1, inner.runs)
}

func TestWithCommandLogger_RecordsMessageCommand(t *testing.T) {
	req := require.New(t)

	// Given a session whose state knows the guild and channel
	st := discordgo.NewState()
	req.NoError(st.GuildAdd(&discordgo.Guild{ID: "guild-1", Name: "Test Guild"}))
	req.NoError(st.ChannelAdd(&discordgo.Channel{ID: "chan-1", Name: "general", GuildID: "guild-1"}))
	session := &discordgo.Session{State: st}

	store := newTestStorage(t)
	inner := &runRecorder{name: "logged"}
	chain := WithCommandLogger()(inner)

	inv := &cmd.Invocation{Data: &command.MessageContext{
		Session: session,
		Storage: store,
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   "guild-1",
			ChannelID: "chan-1",
			Author:    &discordgo.User{ID: "user-1", Username: "Tester"},
		}},
	}}

	// When the command runs
	req.NoError(chain.Run(context.Background(), inv))

	// Then the execution lands in command history with resolved names
	req.Equal(1, inner.runs)
	history, err := store.FetchCommandHistory("guild-1")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("logged", history[0].Command)
	req.Equal("Tester", history[0].Username)
	req.Equal("general", history[0].ChannelName)
	req.Equal("Test Guild", history[0].GuildName)
}
