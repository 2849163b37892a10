package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/pkg/pacing"
)

// registerCommands syncs slash commands for a guild with Discord:
// deletes obsolete ones, creates/updates commands whose definition has changed.
func (b *Bot) registerCommands(guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = c
	}

	local := buildCommandDefinitions()
	cachedHashes := loadCommandHashes(guildID)

	b.deleteObsoleteCommands(appID, guildID, remoteByName, local)
	b.upsertChangedCommands(appID, guildID, local, cachedHashes)

	return nil
}

// buildCommandDefinitions returns ApplicationCommand definitions for all registered commands.
func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range command.AllCommands() {
		if def := commandDefinition(c); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}

// deleteObsoleteCommands removes commands from Discord that are no longer in the local registry.
func (b *Bot) deleteObsoleteCommands(appID, guildID string, remote map[string]*discordgo.ApplicationCommand, local []*discordgo.ApplicationCommand) {
	localNames := make(map[string]struct{}, len(local))
	for _, d := range local {
		localNames[d.Name] = struct{}{}
	}

	hashes := loadCommandHashes(guildID)
	for name, rc := range remote {
		if _, exists := localNames[name]; exists {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, name)
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, name, err)
		} else {
			delete(hashes, name)
		}
	}
	saveCommandHashes(guildID, hashes)
}

// upsertChangedCommands creates or updates commands whose hash differs from the cached value.
func (b *Bot) upsertChangedCommands(appID, guildID string, defs []*discordgo.ApplicationCommand, cachedHashes map[string]string) {
	var changed []*discordgo.ApplicationCommand
	newHashes := make(map[string]string, len(defs))
	for _, d := range defs {
		h := hashCommand(d)
		newHashes[d.Name] = h
		if cachedHashes[d.Name] != h {
			changed = append(changed, d)
		}
	}
	if len(changed) == 0 {
		return
	}

	log.Printf("[INFO] [%s] Registering %d changed command(s)...", guildID, len(changed))
	pacer := pacing.NewPacer(time.Second / 40)
	for _, d := range changed {
		if err := pacer.Wait(context.Background()); err != nil {
			return
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, d); err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", guildID, d.Name, err)
		} else {
			log.Printf("[DONE] [%s] Registered: %s", guildID, d.Name)
		}
	}

	merged := loadCommandHashes(guildID)
	for k, v := range newHashes {
		merged[k] = v
	}
	saveCommandHashes(guildID, merged)
}

// handleRefreshCommands processes a SystemEventRefreshCommands event.
func (b *Bot) handleRefreshCommands(evt bot.SystemEvent) {
	appID, err := b.appID()
	if err != nil {
		log.Printf("[ERR][%s] Failed to resolve app ID: %v", evt.GuildID, err)
		return
	}

	if b.isGuildBlacklisted(evt.GuildID) {
		b.removeAllCommands(appID, evt.GuildID)
		return
	}

	switch {
	case strings.HasPrefix(evt.Target, "group:"):
		b.refreshGroup(appID, evt.GuildID, strings.TrimPrefix(evt.Target, "group:"))
	case evt.Target == "" || strings.ToLower(evt.Target) == "all":
		_ = b.registerCommands(evt.GuildID)
	default:
		b.refreshSingle(appID, evt.GuildID, evt.Target)
	}
}

func (b *Bot) removeAllCommands(appID, guildID string) {
	log.Printf("[BLACKLIST][%s] Removing all commands", guildID)
	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	for _, c := range existing {
		if err := b.dg.ApplicationCommandDelete(appID, guildID, c.ID); err != nil {
			log.Printf("[ERR][%s] Failed to delete %s: %v", guildID, c.Name, err)
		} else {
			log.Printf("[DONE][%s] Deleted %s", guildID, c.Name)
		}
	}
}

func (b *Bot) refreshGroup(appID, guildID, group string) {
	disabledGroups, _ := b.storage.GetDisabledGroups(guildID)
	disabled := make(map[string]bool, len(disabledGroups))
	for _, g := range disabledGroups {
		disabled[g] = true
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	existingByName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, c := range existing {
		existingByName[c.Name] = c
	}

	for _, c := range command.AllCommands() {
		if c.Group() != group {
			continue
		}
		rc, registered := existingByName[c.Name()]
		if disabled[group] && registered {
			log.Printf("[INFO][%s] Removing disabled command: %s", guildID, c.Name())
			_ = b.dg.ApplicationCommandDelete(appID, guildID, rc.ID)
		} else if !disabled[group] && !registered {
			if def := commandDefinition(c); def != nil {
				log.Printf("[INFO][%s] Registering enabled command: %s", guildID, c.Name())
				_, _ = b.dg.ApplicationCommandCreate(appID, guildID, def)
			}
		}
	}
}

func (b *Bot) refreshSingle(appID, guildID, name string) {
	for _, c := range command.AllCommands() {
		if strings.EqualFold(c.Name(), name) {
			if def := commandDefinition(c); def != nil {
				_, _ = b.dg.ApplicationCommandCreate(appID, guildID, def)
			}
			return
		}
	}
	log.Printf("[WARN][%s] No command found for refresh target: %s", guildID, name)
}

// commandDefinition extracts the ApplicationCommand definition from a
// registered command, defaulting the type when the command leaves it unset.
func commandDefinition(c command.Command) *discordgo.ApplicationCommand {
	if def := c.SlashDefinition(); def != nil {
		if def.Type == 0 {
			def.Type = discordgo.ChatApplicationCommand
		}
		return def
	}
	if def := c.ContextDefinition(); def != nil {
		if def.Type == 0 {
			def.Type = discordgo.MessageApplicationCommand
		}
		return def
	}
	return nil
}

// appID returns the bot's application ID, fetching from Discord if not cached in State.
func (b *Bot) appID() (string, error) {
	if id := b.dg.State.User.ID; id != "" {
		return id, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return u.ID, nil
}
