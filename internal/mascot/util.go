package mascot

import "strings"

// animatedExtensions are the formats the random.dog source accepts.
var animatedExtensions = []string{".gif", ".webm", ".mp4"}

func isAnimatedURL(url string) bool {
	l := strings.ToLower(url)
	for _, ext := range animatedExtensions {
		if strings.HasSuffix(l, ext) {
			return true
		}
	}
	return false
}

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}
