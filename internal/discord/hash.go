package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// hashView is the hashable subset of an ApplicationCommand: runtime-only
// fields (IDs, versions) are excluded so the hash only changes when the
// definition does.
type hashView struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Type        discordgo.ApplicationCommandType `json:"type"`
	Options     []optionView                     `json:"options,omitempty"`
}

type optionView struct {
	Name        string                                 `json:"name"`
	Description string                                 `json:"description"`
	Type        discordgo.ApplicationCommandOptionType `json:"type"`
	Required    bool                                   `json:"required"`
	Choices     []choiceView                           `json:"choices,omitempty"`
	Options     []optionView                           `json:"options,omitempty"`
}

type choiceView struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// hashCommand returns a deterministic hash of a command definition.
func hashCommand(def *discordgo.ApplicationCommand) string {
	view := hashView{
		Name:        def.Name,
		Description: def.Description,
		Type:        def.Type,
		Options:     optionViews(def.Options),
	}
	data, _ := json.Marshal(view)
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

func optionViews(opts []*discordgo.ApplicationCommandOption) []optionView {
	if len(opts) == 0 {
		return nil
	}
	views := make([]optionView, len(opts))
	for i, o := range opts {
		v := optionView{
			Name:        o.Name,
			Description: o.Description,
			Type:        o.Type,
			Required:    o.Required,
			Options:     optionViews(o.Options),
		}
		for _, c := range o.Choices {
			v.Choices = append(v.Choices, choiceView{Name: c.Name, Value: c.Value})
		}
		views[i] = v
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}
