package mascot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TheDogAPISource pulls a random image from api.thedogapi.com.
type TheDogAPISource struct {
	baseURL string
	client  *http.Client
}

func NewTheDogAPISource(baseURL string) *TheDogAPISource {
	if baseURL == "" {
		baseURL = "https://api.thedogapi.com"
	}
	return &TheDogAPISource{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

func (s *TheDogAPISource) Name() string { return "thedogapi" }

func (s *TheDogAPISource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/images/search", nil)
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
		return "", fmt.Errorf("thedogapi http %d: %s", resp.StatusCode, truncate(body))
	}

	var parsed []struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	if len(parsed) == 0 || parsed[0].URL == "" {
		return "", fmt.Errorf("thedogapi empty result")
	}

	return parsed[0].URL, nil
}
