// Package speech is the client side of the synthesis service: an HTTP client
// for the /api/tts endpoint, an in-memory playback cache keyed by
// (text, voice, rate), and a Speaker that ties the two to an audio player.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gujaratishikho/backend/pkg/types"
)

// Client calls the synthesis gateway and returns decoded MP3 bytes.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Synthesize(ctx context.Context, text, voice string, rate float64) ([]byte, error) {
	body := types.SynthesizeRequest{
		Input:       types.SynthesisInput{Text: text},
		Voice:       types.VoiceSelection{Name: voice},
		AudioConfig: types.AudioConfig{SpeakingRate: rate},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tts", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&fail) == nil && fail.Error != "" {
			return nil, errors.New(fail.Error)
		}
		return nil, fmt.Errorf("tts request failed (status %d)", resp.StatusCode)
	}

	var out types.SynthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tts response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio payload: %w", err)
	}
	return audio, nil
}
