// Package mascot fetches random pictures of Susa, the team's dog mascot,
// from public dog-picture APIs. Sources are tried in randomized order and
// individual failures fall through to the next source.
package mascot

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"
)

const fetchTimeout = 5 * time.Second

// Source queries one external endpoint for a random image URL.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// Fetcher tries each configured source until one returns a usable URL.
type Fetcher struct {
	sources []Source
}

// NewFetcher creates a Fetcher over the default public endpoints.
func NewFetcher() *Fetcher {
	return &Fetcher{
		sources: []Source{
			NewDogCEOSource(""),
			NewTheDogAPISource(""),
			NewRandomDogSource(""),
		},
	}
}

// NewFetcherWithSources creates a Fetcher over the given sources.
func NewFetcherWithSources(sources ...Source) *Fetcher {
	return &Fetcher{sources: sources}
}

// FetchRandomImage queries the sources in randomized order and returns the
// first URL obtained. A failing source is logged and skipped; the error is
// returned only when every source has failed.
func (f *Fetcher) FetchRandomImage(ctx context.Context) (string, error) {
	if len(f.sources) == 0 {
		return "", errors.New("no image sources configured")
	}

	order := make([]Source, len(f.sources))
	copy(order, f.sources)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, src := range order {
		url, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("[WARN] Mascot: %s: %v", src.Name(), err)
			continue
		}
		return url, nil
	}

	return "", errors.New("all image sources failed")
}
