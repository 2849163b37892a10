package raid

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/internal/bot"
	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/middleware"
	"github.com/keshon/raid-herald/internal/render"
)

type RaidCommand struct{}

func (c *RaidCommand) Name() string             { return "raid" }
func (c *RaidCommand) Description() string      { return "Display raid participants and add reactions" }
func (c *RaidCommand) Group() string            { return "raid" }
func (c *RaidCommand) Category() string         { return "⚔️ Raid" }
func (c *RaidCommand) UserPermissions() []int64 { return nil }

func (c *RaidCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *RaidCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashInteractionContext:
		if err := bot.RespondEmbed(v.Session, v.Event, render.Roster(v.Roster)); err != nil {
			return err
		}
		// Reactions go on the response message, which has to be fetched
		// back since InteractionRespond doesn't return it.
		msg, err := bot.ResponseMessage(v.Session, v.Event)
		if err != nil {
			log.Printf("[WARN] Could not fetch roster message for reactions: %v", err)
			return nil
		}
		bot.DecorateMessage(v.Session, msg.ChannelID, msg.ID, v.Roster.Reactions)

	case *command.MessageContext:
		msg, err := bot.MessageEmbed(v.Session, v.Event.ChannelID, render.Roster(v.Roster))
		if err != nil {
			return err
		}
		bot.DecorateMessage(v.Session, msg.ChannelID, msg.ID, v.Roster.Reactions)
	}

	return nil
}

func init() {
	command.RegisterCommand(
		&RaidCommand{},
		middleware.WithGroupAccessCheck(),
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
		middleware.WithRecovery(),
	)
}
