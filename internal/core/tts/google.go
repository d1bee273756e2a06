package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gujaratishikho/backend/pkg/types"
)

const defaultEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// Gateway validates a synthesis request and forwards it to Google Cloud TTS
// with the server-held API key. It keeps no state between calls.
type Gateway struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGateway builds a Gateway around the given credential. An empty endpoint
// selects the real Google API; tests point it at a fake.
func NewGateway(apiKey, endpoint string) *Gateway {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Gateway{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the upstream credential is present. Checked
// before the request body is even parsed.
func (g *Gateway) Configured() bool { return g.apiKey != "" }

type upstreamVoice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

type upstreamAudioConfig struct {
	AudioEncoding string  `json:"audioEncoding"`
	SpeakingRate  float64 `json:"speakingRate"`
}

type upstreamRequest struct {
	Input       types.SynthesisInput `json:"input"`
	Voice       upstreamVoice        `json:"voice"`
	AudioConfig upstreamAudioConfig  `json:"audioConfig"`
}

type upstreamFailure struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Synthesize runs the validation rules, rewrites the request into the
// constrained upstream form and forwards it. On success it returns the
// base64 audio payload exactly as the upstream produced it.
func (g *Gateway) Synthesize(ctx context.Context, req types.SynthesizeRequest) (string, *Error) {
	if verr := g.Validate(req); verr != nil {
		return "", verr
	}

	voice := req.Voice.Name
	if voice == "" {
		voice = DefaultVoice
	}
	body := upstreamRequest{
		Input: req.Input,
		Voice: upstreamVoice{LanguageCode: LanguageCode, Name: voice},
		AudioConfig: upstreamAudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  ClampRate(req.AudioConfig.SpeakingRate),
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errUnavailable(err.Error())
	}

	// The key travels only in the upstream query string, never in a header
	// the caller could have set and never in anything we send back.
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.endpoint+"?key="+url.QueryEscape(g.apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", errUnavailable(g.scrub(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", errUnavailable(g.scrub(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Google TTS API error"
		var fail upstreamFailure
		if json.NewDecoder(resp.Body).Decode(&fail) == nil && fail.Error.Message != "" {
			msg = fail.Error.Message
		}
		return "", errUpstream(resp.StatusCode, msg)
	}

	var out types.SynthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errUnavailable(g.scrub(err))
	}
	return out.AudioContent, nil
}

// scrub strips the API key from a transport error before it can reach a
// response body or a log line. url.Error stringifies the full request URL,
// query included.
func (g *Gateway) scrub(err error) string {
	s := err.Error()
	if g.apiKey == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(g.apiKey), "[redacted]")
	return strings.ReplaceAll(s, g.apiKey, "[redacted]")
}
