package discord

import (
	"strings"
	"unicode"
)

// splitArgs splits a prefix-command line into arguments. Double-quoted
// segments stay together so multi-word names survive: `schedule "Molten
// Core" tonight` yields three arguments.
func splitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case unicode.IsSpace(r) && !inQuotes:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}
