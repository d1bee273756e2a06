package tts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gujaratishikho/backend/pkg/types"
)

func synthReq(text, voice string, rate float64) types.SynthesizeRequest {
	var req types.SynthesizeRequest
	req.Input.Text = text
	req.Voice.Name = voice
	req.AudioConfig.SpeakingRate = rate
	return req
}

func TestValidateOrderCredentialFirst(t *testing.T) {
	g := NewGateway("", "")

	// Credential failure wins even when the request is also invalid.
	err := g.Validate(synthReq(strings.Repeat("a", 300), "bad-voice", 0))
	require.NotNil(t, err)
	assert.Equal(t, KindMisconfigured, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "TTS API key not configured. Set GOOGLE_TTS_API_KEY in the server environment.", err.Message)
}

func TestValidateVoiceBeforeTextLength(t *testing.T) {
	g := NewGateway("key", "")

	err := g.Validate(synthReq(strings.Repeat("a", 300), "bad-voice", 0))
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidVoice, err.Kind)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, `Voice "bad-voice" not allowed. Use Standard or WaveNet voices.`, err.Message)
}

func TestValidateTextTooLong(t *testing.T) {
	g := NewGateway("key", "")

	// Runes, not bytes: 201 Gujarati glyphs are well over 201 bytes.
	err := g.Validate(synthReq(strings.Repeat("ક", 201), "gu-IN-Wavenet-A", 0))
	require.NotNil(t, err)
	assert.Equal(t, KindTextTooLong, err.Kind)
	assert.Equal(t, "Text too long. Maximum 200 characters.", err.Message)

	assert.Nil(t, g.Validate(synthReq(strings.Repeat("ક", 200), "", 0)))
}

func TestValidateEmptyTextAllowed(t *testing.T) {
	g := NewGateway("key", "")
	assert.Nil(t, g.Validate(synthReq("", "", 0)))
}

func TestVoiceAllowList(t *testing.T) {
	for _, v := range AllowedVoices {
		assert.True(t, VoiceAllowed(v), v)
	}
	assert.False(t, VoiceAllowed("en-US-Standard-A"))
	assert.False(t, VoiceAllowed("gu-IN-Standard-C"))
}

func TestClampRate(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0.8},
		{-1, 0.5},
		{0.3, 0.5},
		{0.5, 0.5},
		{0.8, 0.8},
		{1.2, 1.2},
		{2.5, 1.2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClampRate(tc.in), "rate %v", tc.in)
	}
}

func TestSynthesizeForcesLocaleAndClampsRate(t *testing.T) {
	var got upstreamRequest
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"audioContent": "QUJD"})
	}))
	defer srv.Close()

	g := NewGateway("sekret", srv.URL)
	audio, synthErr := g.Synthesize(context.Background(), synthReq("નમસ્તે", "gu-IN-Wavenet-B", 5))
	require.Nil(t, synthErr)
	assert.Equal(t, "QUJD", audio)

	assert.Equal(t, "gu-IN", got.Voice.LanguageCode)
	assert.Equal(t, "gu-IN-Wavenet-B", got.Voice.Name)
	assert.Equal(t, "MP3", got.AudioConfig.AudioEncoding)
	assert.Equal(t, 1.2, got.AudioConfig.SpeakingRate)
	assert.Equal(t, "key=sekret", query)
}

func TestSynthesizeDefaultsVoiceAndRate(t *testing.T) {
	var got upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"audioContent": "QUJD"})
	}))
	defer srv.Close()

	g := NewGateway("sekret", srv.URL)
	_, synthErr := g.Synthesize(context.Background(), synthReq("કેમ છો", "", 0))
	require.Nil(t, synthErr)
	assert.Equal(t, DefaultVoice, got.Voice.Name)
	assert.Equal(t, DefaultRate, got.AudioConfig.SpeakingRate)
}

func TestSynthesizeUpstreamErrorPropagatesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "quota exceeded"}})
	}))
	defer srv.Close()

	g := NewGateway("sekret", srv.URL)
	_, synthErr := g.Synthesize(context.Background(), synthReq("હા", "", 0))
	require.NotNil(t, synthErr)
	assert.Equal(t, KindUpstreamError, synthErr.Kind)
	assert.Equal(t, http.StatusTooManyRequests, synthErr.Status)
	assert.Equal(t, "quota exceeded", synthErr.Message)
}

func TestSynthesizeUpstreamErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := NewGateway("sekret", srv.URL)
	_, synthErr := g.Synthesize(context.Background(), synthReq("હા", "", 0))
	require.NotNil(t, synthErr)
	assert.Equal(t, http.StatusBadGateway, synthErr.Status)
	assert.Equal(t, "Google TTS API error", synthErr.Message)
}

func TestSynthesizeTransportFailureScrubsKey(t *testing.T) {
	// Closed server: the transport error embeds the request URL, key included.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	g := NewGateway("sekret", srv.URL)
	_, synthErr := g.Synthesize(context.Background(), synthReq("હા", "", 0))
	require.NotNil(t, synthErr)
	assert.Equal(t, KindUpstreamUnavailable, synthErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, synthErr.Status)
	assert.True(t, strings.HasPrefix(synthErr.Message, "Server error: "))
	assert.NotContains(t, synthErr.Message, "sekret")
}

func TestScrub(t *testing.T) {
	g := NewGateway("s3cr3t+key", "")
	msg := g.scrub(errors.New(`Post "https://example.test?key=s3cr3t%2Bkey": boom s3cr3t+key`))
	assert.NotContains(t, msg, "s3cr3t")
	assert.Contains(t, msg, "[redacted]")
}
