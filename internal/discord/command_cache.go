package discord

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// guildCachePath returns the on-disk location of a guild's command hash cache.
func guildCachePath(guildID string) string {
	return filepath.Join("data", "commands", guildID+".json")
}

// loadCommandHashes loads the cached command hashes for a guild. A missing or
// unreadable cache yields an empty map, which forces re-registration.
func loadCommandHashes(guildID string) map[string]string {
	hashes := make(map[string]string)
	if data, err := os.ReadFile(guildCachePath(guildID)); err == nil {
		_ = json.Unmarshal(data, &hashes)
	}
	return hashes
}

// saveCommandHashes writes the guild's command hash cache.
func saveCommandHashes(guildID string, hashes map[string]string) {
	path := guildCachePath(guildID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("[WARN] Failed to create command cache dir: %v", err)
		return
	}
	data, _ := json.MarshalIndent(hashes, "", "  ")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("[WARN] Failed to write command cache %s: %v", path, err)
	}
}
