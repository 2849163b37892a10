package mascot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DogCEOSource pulls a random image from the dog.ceo API.
type DogCEOSource struct {
	baseURL string
	client  *http.Client
}

func NewDogCEOSource(baseURL string) *DogCEOSource {
	if baseURL == "" {
		baseURL = "https://dog.ceo"
	}
	return &DogCEOSource{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

func (s *DogCEOSource) Name() string { return "dog.ceo" }

func (s *DogCEOSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/breeds/image/random", nil)
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
		return "", fmt.Errorf("dog.ceo http %d: %s", resp.StatusCode, truncate(body))
	}

	var parsed struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	if parsed.Status != "success" || parsed.Message == "" {
		return "", fmt.Errorf("dog.ceo status %q", parsed.Status)
	}

	return parsed.Message, nil
}
