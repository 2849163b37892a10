// Package roster holds the static raid roster configuration: the named
// participant list, the reaction glyph sequence, and optional per-name
// emoji overrides. Loaded once at startup and immutable afterwards.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one configured raid participant.
type Entry struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Roster is the full startup configuration for the raid display.
type Roster struct {
	Entries        []Entry           `json:"entries"`
	Reactions      []string          `json:"reactions"`
	EmojiOverrides map[string]string `json:"emoji_overrides"`
	DefaultEmoji   string            `json:"default_emoji"`
}

// Default returns the built-in roster.
func Default() *Roster {
	return &Roster{
		Entries: []Entry{
			{Name: "Alex Thunder", Role: "Tank - Shield Bearer"},
			{Name: "Sarah Lightbringer", Role: "Healer - Divine Support"},
			{Name: "Marcus Shadowstrike", Role: "DPS - Stealth Assassin"},
			{Name: "Elena Firebrand", Role: "DPS - Flame Mage"},
			{Name: "Thorin Ironforge", Role: "Tank - Heavy Defender"},
			{Name: "Luna Starweaver", Role: "Support - Buff Specialist"},
			{Name: "Gareth Swiftstrike", Role: "DPS - Dual Wielder"},
			{Name: "Aria Frostwind", Role: "DPS - Ice Sorceress"},
			{Name: "Brock Stormhammer", Role: "DPS - Berserker"},
			{Name: "Zara Moonwhisper", Role: "Healer - Nature's Guardian"},
		},
		Reactions: []string{
			"⚔️", "🛡️", "🏹", "✨", "💪", "🔥", "❄️", "⚡", "🌟", "👑",
		},
		EmojiOverrides: map[string]string{},
		DefaultEmoji:   "⚔️",
	}
}

// Load reads a roster override from a JSON file. An empty path returns the
// built-in roster; fields left empty in the file keep their defaults.
func Load(path string) (*Roster, error) {
	def := Default()
	if path == "" {
		return def, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var loaded Roster
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}

	if len(loaded.Entries) == 0 {
		loaded.Entries = def.Entries
	}
	if len(loaded.Reactions) == 0 {
		loaded.Reactions = def.Reactions
	}
	if loaded.EmojiOverrides == nil {
		loaded.EmojiOverrides = map[string]string{}
	}
	if loaded.DefaultEmoji == "" {
		loaded.DefaultEmoji = def.DefaultEmoji
	}

	for i, entry := range loaded.Entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("roster entry %d: name must not be empty", i)
		}
	}

	return &loaded, nil
}

// Emoji returns the glyph for a participant name, falling back to the
// default glyph when no override exists.
func (r *Roster) Emoji(name string) string {
	if glyph, ok := r.EmojiOverrides[name]; ok {
		return glyph
	}
	return r.DefaultEmoji
}
