// Package coach generates practice sentences for catalog words with Gemini.
// It is optional: the rest of the service works without a Gemini key.
package coach

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/gujaratishikho/backend/internal/core/tts"
	"github.com/gujaratishikho/backend/pkg/types"
)

type Client struct {
	c     *genai.Client
	model string
}

func New(apiKey, model string) (*Client, error) {
	tr := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		TLSClientConfig:   &tls.Config{MinVersion: tls.VersionTLS12},
		ForceAttemptHTTP2: false,
		MaxIdleConns:      100,
		IdleConnTimeout:   90 * time.Second,
	}
	hc := &http.Client{Transport: tr, Timeout: 30 * time.Second}
	reqTimeout := 15 * time.Second
	cl, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: "v1",
			Timeout:    &reqTimeout,
		},
	})
	if err != nil {
		return nil, err
	}
	return &Client{c: cl, model: model}, nil
}

// ExampleSentence asks for one short beginner sentence using the given word.
// The sentence stays under the synthesis length limit so it can always be
// spoken afterwards.
func (cl *Client) ExampleSentence(ctx context.Context, word string) (*types.Example, error) {
	prompt := fmt.Sprintf(
		"You are a Gujarati teacher for English-speaking children. "+
			"Write ONE very short beginner sentence (under %d characters) that uses the Gujarati word %q. "+
			"Output JSON only: {\"sentence\":\"<gujarati>\",\"roman\":\"<romanization>\",\"english\":\"<translation>\"}.",
		tts.MaxTextLength/2, word)
	parts := []*genai.Part{{Text: prompt}}

	temp := float32(0.4)
	topP := float32(0.8)
	maxTok := int32(512)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"sentence": {Type: genai.TypeString},
				"roman":    {Type: genai.TypeString},
				"english":  {Type: genai.TypeString},
			},
			Required: []string{"sentence", "roman", "english"},
		},
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: maxTok,
	}

	var lastErr error
	for i := 0; i < 3; i++ {
		resp, err := cl.c.Models.GenerateContent(ctx, cl.model, []*genai.Content{{Parts: parts}}, cfg)
		if err != nil {
			lastErr = err
			if retriable(err) {
				time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
				continue
			}
			return nil, err
		}
		if ex, ok := parseExample(resp); ok {
			return ex, nil
		}
		lastErr = errors.New("no usable sentence in response")
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func parseExample(resp *genai.GenerateContentResponse) (*types.Example, bool) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.MIMEType == "application/json" {
				if ex, ok := usable(p.InlineData.Data); ok {
					return ex, true
				}
			}
			if p.Text != "" {
				if ex, ok := usable([]byte(p.Text)); ok {
					return ex, true
				}
			}
		}
	}
	return nil, false
}

// usable accepts a candidate only if its sentence can be handed straight to
// the synthesizer afterwards. The model is prompted to stay short, but the
// limit is enforced here.
func usable(raw []byte) (*types.Example, bool) {
	var ex types.Example
	if json.Unmarshal(raw, &ex) != nil || ex.Sentence == "" {
		return nil, false
	}
	if utf8.RuneCountInString(ex.Sentence) > tts.MaxTextLength {
		return nil, false
	}
	return &ex, true
}

func retriable(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "unexpected EOF") ||
		strings.Contains(s, "timeout") ||
		strings.Contains(s, "RST_STREAM") ||
		strings.Contains(s, "connection reset")
}
