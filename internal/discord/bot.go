package discord

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/config"
	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/mascot"
	"github.com/keshon/raid-herald/internal/render"
	"github.com/keshon/raid-herald/internal/roster"
	"github.com/keshon/raid-herald/internal/storage"
)

// Bot is the Discord runtime: one gateway session plus the shared
// dependencies handed to every command context.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage
	events  *event.Registry
	roster  *roster.Roster
	mascot  *mascot.Fetcher
}

// StartBot connects to Discord and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage, events *event.Registry, r *roster.Roster, fetcher *mascot.Fetcher) error {
	b := &Bot{
		cfg:     cfg,
		storage: store,
		events:  events,
		roster:  r,
		mascot:  fetcher,
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

// run starts the Discord session and the system-event loop.
func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageReactionAdd)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go func() {
		for evt := range bot.SystemEvents() {
			switch evt.Type {
			case bot.SystemEventRefreshCommands:
				go b.handleRefreshCommands(evt)
			}
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsAll
}

// onMessageCreate dispatches legacy prefix commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, b.cfg.CommandPrefix) {
		return
	}

	fields := splitArgs(strings.TrimPrefix(m.Content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	c, ok := command.GetCommand(name)
	if !ok {
		log.Printf("[DEBUG] Unknown message command: %s", name)
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Args:    fields[1:],
		Storage: b.storage,
		Events:  b.events,
		Roster:  b.roster,
		Mascot:  b.mascot,
	}
	if err := c.Run(ctx); err != nil {
		log.Println("[ERR] Error running command:", err)
		_, _ = bot.MessageEmbed(s, m.ChannelID, render.Error(fmt.Sprintf("Error running command: %v", err)))
	}
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	if err := s.UpdateWatchStatus(0, "for /raid commands"); err != nil {
		log.Println("[WARN] Failed to set presence:", err)
	}

	// Leave any blacklisted guilds on startup
	for _, g := range r.Guilds {
		if b.isGuildBlacklisted(g.ID) {
			log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.ID, g.Name)
			if err := s.GuildLeave(g.ID); err != nil {
				log.Printf("[ERR] Failed to leave guild %s: %v", g.ID, err)
			}
			continue
		}

		if b.cfg.InitSlashCommands {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		} else {
			log.Println("[INFO] Registering slash commands skipped")
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if b.isGuildBlacklisted(g.Guild.ID) {
		log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.Guild.ID, g.Guild.Name)
		if err := s.GuildLeave(g.Guild.ID); err != nil {
			log.Printf("[ERR] Failed to leave guild %s: %v", g.Guild.ID, err)
		}
		return
	}

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onMessageReactionAdd dispatches reaction-triggered commands.
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	for _, c := range command.AllCommands() {
		if c.ReactionDefinition() == "" {
			continue
		}
		ctx := &command.MessageReactionContext{
			Session: s,
			Event:   r,
			Storage: b.storage,
		}
		if err := c.Run(ctx); err != nil {
			log.Println("[ERR] Error running reaction command:", err)
			_, _ = bot.MessageEmbed(s, r.ChannelID, render.Error(fmt.Sprintf("Error running reaction command: %v", err)))
		}
	}
}

// onInteractionCreate dispatches slash, context menu and component interactions.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmdName := i.ApplicationCommandData().Name

		c, ok := command.GetCommand(cmdName)
		if !ok {
			log.Printf("[WARN] Unknown command: %s", cmdName)
			return
		}

		switch i.ApplicationCommandData().CommandType {
		case discordgo.MessageApplicationCommand:
			ctx := &command.MessageApplicationCommandContext{
				Session: s,
				Event:   i,
				Storage: b.storage,
				Target:  i.Message,
			}
			if err := c.Run(ctx); err != nil {
				log.Println("[ERR] Error running context menu command:", err)
				bot.RespondEmbedEphemeral(s, i, render.Error(fmt.Sprintf("Error running context menu command: %v", err)))
			}
		case discordgo.ChatApplicationCommand:
			ctx := &command.SlashInteractionContext{
				Session: s,
				Event:   i,
				Storage: b.storage,
				Events:  b.events,
				Roster:  b.roster,
				Mascot:  b.mascot,
			}
			if err := c.Run(ctx); err != nil {
				log.Println("[ERR] Error running slash command:", err)
				bot.RespondEmbedEphemeral(s, i, render.Error(fmt.Sprintf("Error running slash command: %v", err)))
			}
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		log.Printf("[DEBUG] Processing component interaction: %s", customID)

		var matched command.Command
		for _, c := range command.AllCommands() {
			if customID == c.Name() || strings.HasPrefix(customID, c.Name()+":") || strings.HasPrefix(customID, c.Name()+"_") {
				matched = c
				break
			}
		}
		if matched == nil {
			log.Printf("[WARN] No matching component for customID: %s", customID)
			return
		}

		ctx := &command.ComponentInteractionContext{
			Session: s,
			Event:   i,
			Storage: b.storage,
			Events:  b.events,
		}
		if err := matched.Component(ctx); err != nil {
			log.Printf("[ERR] Error running component command %s: %v", matched.Name(), err)
			bot.RespondEmbedEphemeral(s, i, render.Error(fmt.Sprintf("Error running component command: %v", err)))
		}

	default:
		log.Printf("[DEBUG] Unknown interaction type: %d", i.Type)
	}
}

func (b *Bot) isGuildBlacklisted(guildID string) bool {
	return slices.Contains(b.cfg.DiscordGuildBlacklist, guildID)
}
