// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X 'github.com/keshon/raid-herald/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)' \
//	  -X 'github.com/keshon/raid-herald/internal/version.GoVersion=$(go version | awk '{print $3}')'"
package version

var (
	AppName        = "Raid Herald"
	AppDescription = "A Discord bot for raid coordination: roster posts with reactions, ad-hoc event scheduling, and Susa the mascot."
	BuildDate      = "unknown"
	GoVersion      = "unknown"
)
