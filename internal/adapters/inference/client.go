// internal/adapters/inference/client.go
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travel_companion/internal/adapters/observability"
)

// maxSentimentRunes caps the text sent to the classifier, matching the
// model's input window.
const maxSentimentRunes = 512

// Client fronts the text-inference sidecar (reply generation and sentiment
// classification). The models live in their own process; this service only
// holds an injected handle, never process-global model state.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) GenerateReply(ctx context.Context, text string) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	in := map[string]string{"message": text}
	if err := c.post(ctx, "generate", "/generate", in, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (c *Client) ClassifySentiment(ctx context.Context, text string) (string, float64, error) {
	if r := []rune(text); len(r) > maxSentimentRunes {
		text = string(r[:maxSentimentRunes])
	}
	var out struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	in := map[string]string{"text": text}
	if err := c.post(ctx, "sentiment", "/sentiment", in, &out); err != nil {
		return "", 0, err
	}
	return out.Label, out.Score, nil
}

func (c *Client) post(ctx context.Context, endpoint, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveProvider("inference", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveProvider("inference", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("inference status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference decode: %w", err)
	}
	return nil
}
