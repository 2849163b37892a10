package discord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain words", "raid now", []string{"raid", "now"}},
		{"quoted segment", `schedule "Molten Core" tonight`, []string{"schedule", "Molten Core", "tonight"}},
		{"quoted with trailing text", `schedule "Onyxia Run" "8pm" bring potions`, []string{"schedule", "Onyxia Run", "8pm", "bring", "potions"}},
		{"collapses whitespace", "  join   ab12cd  ", []string{"join", "ab12cd"}},
		{"empty input", "", nil},
		{"only spaces", "   ", nil},
		{"unterminated quote keeps rest together", `schedule "Molten Core tonight`, []string{"schedule", "Molten Core tonight"}},
		{"empty quotes are dropped", `join ""`, []string{"join"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, splitArgs(tc.in))
		})
	}
}
