package net

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const clientAgent = "creatorpulse"

// GetJSON retrieves the URL content with the given client and decodes
// it into the passed target.
func GetJSON[T any](ctx context.Context, client *http.Client, url string, target *T) error {
	if client == nil {
		client = GetHTTPClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating HTTP Get request: %w", err)
	}
	req.Header.Set("User-Agent", clientAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error executing HTTP Get request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := ""
		if b, readErr := io.ReadAll(io.LimitReader(resp.Body, 1024)); readErr == nil {
			body = string(b)
		}
		return fmt.Errorf("unexpected status for %s: %s - %s", url, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("error decoding content from %s: %w", url, err)
	}
	return nil
}
