package bot

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/raid-herald/pkg/pacing"
)

// reactionInterval spaces reaction attachments so Discord does not reject the burst.
const reactionInterval = 500 * time.Millisecond

// DecorateMessage attaches emojis to a message in order, one per interval.
// A failed attachment is logged and skipped; decoration never fails the
// command that requested it.
func DecorateMessage(s *discordgo.Session, channelID, messageID string, emojis []string) {
	pacer := pacing.NewPacer(reactionInterval)
	for _, emoji := range emojis {
		if err := pacer.Wait(context.Background()); err != nil {
			return
		}
		if err := s.MessageReactionAdd(channelID, messageID, emoji); err != nil {
			log.Printf("[WARN] Failed to add reaction %s: %v", emoji, err)
		}
	}
}
