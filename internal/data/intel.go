package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

const (
	getPlextsPath = "/r/getPlexts"
	sendPlextPath = "/r/sendPlext"
)

// intelTransport implements the game server transport over HTTP
type intelTransport struct {
	baseURL string
	client  *http.Client
}

// NewIntelTransport creates a new game server transport
func NewIntelTransport(baseURL string, timeout time.Duration) repo.Transport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &intelTransport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchMessages fetches one page of messages for a channel
func (t *intelTransport) FetchMessages(ctx context.Context, params domain.FetchParams) ([]domain.RawRecord, error) {
	var response struct {
		Result *[]domain.RawRecord `json:"result"`
		Error  string              `json:"error"`
	}
	if err := t.post(ctx, getPlextsPath, params, &response); err != nil {
		return nil, err
	}
	if response.Error != "" {
		return nil, fmt.Errorf("server error: %s", response.Error)
	}
	if response.Result == nil {
		return nil, repo.ErrMalformedResponse
	}
	return *response.Result, nil
}

// PostMessage sends a chat message
func (t *intelTransport) PostMessage(ctx context.Context, params domain.PostParams) error {
	var response struct {
		Error bool `json:"error"`
	}
	if err := t.post(ctx, sendPlextPath, params, &response); err != nil {
		return err
	}
	if response.Error {
		return fmt.Errorf("server rejected message")
	}
	return nil
}

// post issues one JSON request and decodes the JSON response
func (t *intelTransport) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
