package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage_CommandHistoryRoundtrip(t *testing.T) {
	req := require.New(t)
	s := newTestStorage(t)

	rec := CommandHistoryRecord{
		ChannelID:   "chan1",
		ChannelName: "general",
		GuildName:   "Test Guild",
		UserID:      "user1",
		Username:    "alice",
		Command:     "raid",
		Datetime:    time.Now(),
	}
	req.NoError(s.AppendCommandToHistory("guild1", rec))

	history, err := s.FetchCommandHistory("guild1")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("raid", history[0].Command)
	req.Equal("alice", history[0].Username)

	// Another guild starts empty
	other, err := s.FetchCommandHistory("guild2")
	req.NoError(err)
	req.Empty(other)
}

func TestStorage_HistoryIsCapped(t *testing.T) {
	req := require.New(t)
	s := newTestStorage(t)

	for i := 0; i < 25; i++ {
		req.NoError(s.AppendCommandToHistory("guild1", CommandHistoryRecord{
			Command:  fmt.Sprintf("cmd%d", i),
			Datetime: time.Now(),
		}))
	}

	history, err := s.FetchCommandHistory("guild1")
	req.NoError(err)
	req.Len(history, commandHistoryLimit)
	req.Equal("cmd24", history[len(history)-1].Command)
	req.Equal("cmd5", history[0].Command)
}

func TestStorage_GroupToggles(t *testing.T) {
	req := require.New(t)
	s := newTestStorage(t)

	disabled, err := s.IsGroupDisabled("guild1", "event")
	req.NoError(err)
	req.False(disabled)

	req.NoError(s.DisableGroup("guild1", "event"))
	req.NoError(s.DisableGroup("guild1", "event")) // idempotent
	req.NoError(s.DisableGroup("guild1", "mascot"))

	disabled, err = s.IsGroupDisabled("guild1", "event")
	req.NoError(err)
	req.True(disabled)

	groups, err := s.GetDisabledGroups("guild1")
	req.NoError(err)
	req.Equal([]string{"event", "mascot"}, groups)

	// Toggles are per guild
	disabled, err = s.IsGroupDisabled("guild2", "event")
	req.NoError(err)
	req.False(disabled)

	req.NoError(s.EnableGroup("guild1", "event"))
	groups, err = s.GetDisabledGroups("guild1")
	req.NoError(err)
	req.Equal([]string{"mascot"}, groups)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(path)
	req.NoError(err)
	req.NoError(s.AppendCommandToHistory("guild1", CommandHistoryRecord{
		Command:  "raid",
		Username: "alice",
		Datetime: time.Now(),
	}))
	req.NoError(s.DisableGroup("guild1", "event"))
	req.NoError(s.Close())

	// When the store is reopened from the same file
	reopened, err := New(path)
	req.NoError(err)
	defer reopened.Close()

	history, err := reopened.FetchCommandHistory("guild1")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("raid", history[0].Command)

	disabled, err := reopened.IsGroupDisabled("guild1", "event")
	req.NoError(err)
	req.True(disabled)
}

func TestStorage_Stats(t *testing.T) {
	req := require.New(t)
	s := newTestStorage(t)

	req.NoError(s.AppendCommandToHistory("guild1", CommandHistoryRecord{Command: "raid"}))

	stats := s.Stats()
	req.Equal(1, stats["keys"])
}
