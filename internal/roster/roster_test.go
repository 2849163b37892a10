package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltInData(t *testing.T) {
	req := require.New(t)

	r := Default()

	req.Len(r.Entries, 10)
	req.Equal("Alex Thunder", r.Entries[0].Name)
	req.Equal("Tank - Shield Bearer", r.Entries[0].Role)
	req.Equal("Zara Moonwhisper", r.Entries[9].Name)
	req.Len(r.Reactions, 10)
	req.Equal("⚔️", r.Reactions[0])
	req.Equal("👑", r.Reactions[9])
	req.NotEmpty(r.DefaultEmoji)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	req := require.New(t)

	r, err := Load("")

	req.NoError(err)
	req.Len(r.Entries, 10)
}

func TestLoad_OverrideFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `{
		"entries": [
			{"name": "Solo Player", "role": "Everything"}
		],
		"reactions": ["🎯"],
		"emoji_overrides": {"Solo Player": "🏆"},
		"default_emoji": "🎲"
	}`
	req.NoError(os.WriteFile(path, []byte(content), 0644))

	// When the override file is loaded
	r, err := Load(path)

	// Then its values replace the defaults entirely
	req.NoError(err)
	req.Len(r.Entries, 1)
	req.Equal("Solo Player", r.Entries[0].Name)
	req.Equal([]string{"🎯"}, r.Reactions)
	req.Equal("🏆", r.Emoji("Solo Player"))
	req.Equal("🎲", r.Emoji("Someone Else"))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "roster.json")
	req.NoError(os.WriteFile(path, []byte(`{"default_emoji": "🎲"}`), 0644))

	r, err := Load(path)

	req.NoError(err)
	req.Len(r.Entries, 10)
	req.Len(r.Reactions, 10)
	req.Equal("🎲", r.DefaultEmoji)
}

func TestLoad_RejectsEmptyName(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "roster.json")
	req.NoError(os.WriteFile(path, []byte(`{"entries": [{"name": "", "role": "Ghost"}]}`), 0644))

	_, err := Load(path)

	req.Error(err)
	req.Contains(err.Error(), "name must not be empty")
}

func TestLoad_MissingFile(t *testing.T) {
	req := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	req.Error(err)
}

func TestEmoji_Fallback(t *testing.T) {
	req := require.New(t)
	r := Default()
	r.EmojiOverrides["Alex Thunder"] = "🛡️"

	req.Equal("🛡️", r.Emoji("Alex Thunder"))
	req.Equal(r.DefaultEmoji, r.Emoji("Sarah Lightbringer"))
}
