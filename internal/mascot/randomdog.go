package mascot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/keshon/raid-herald/pkg/pacing"
)

// animatedAttempts bounds how often random.dog is re-queried for an
// animated URL before the source gives up.
const animatedAttempts = 3

var errNotAnimated = errors.New("url is not animated")

// RandomDogSource pulls images from random.dog, filtered to animated
// formats only. Non-animated results are re-queried a bounded number of
// times; transport failures give up immediately so the fetcher can fall
// through to the next source.
type RandomDogSource struct {
	baseURL string
	client  *http.Client
}

func NewRandomDogSource(baseURL string) *RandomDogSource {
	if baseURL == "" {
		baseURL = "https://random.dog"
	}
	return &RandomDogSource{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

func (s *RandomDogSource) Name() string { return "random.dog" }

func (s *RandomDogSource) Fetch(ctx context.Context) (string, error) {
	var url string
	err := pacing.Retry(ctx, animatedAttempts, 0, func() error {
		candidate, err := s.fetchOnce(ctx)
		if err != nil {
			return &pacing.FatalError{Err: err}
		}
		if !isAnimatedURL(candidate) {
			return errNotAnimated
		}
		url = candidate
		return nil
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

func (s *RandomDogSource) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/woof.json", nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("random.dog http %d: %s", resp.StatusCode, truncate(body))
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	if parsed.URL == "" {
		return "", fmt.Errorf("random.dog empty url")
	}

	return parsed.URL, nil
}
