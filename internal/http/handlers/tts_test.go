package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gujaratishikho/backend/internal/core/tts"
)

type fakeUpstream struct {
	*httptest.Server
	calls int64
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.calls, 1)
		json.NewEncoder(w).Encode(map[string]string{"audioContent": "U09NRUFVRElP"})
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) Calls() int64 { return atomic.LoadInt64(&f.calls) }

func newTTSRouter(apiKey, endpoint string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTTSHandler(tts.NewGateway(apiKey, endpoint))
	r.POST("/api/tts", h.Synthesize)
	return r
}

func doTTS(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Error
}

func TestSynthesizeMisconfigured(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("", up.URL)

	// Even a perfectly valid request gets the credential error first.
	w := doTTS(r, `{"input":{"text":"નમસ્તે"},"voice":{"name":"gu-IN-Standard-A"}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "TTS API key not configured. Set GOOGLE_TTS_API_KEY in the server environment.", errorBody(t, w))
	assert.EqualValues(t, 0, up.Calls())
}

func TestSynthesizeRejectsUnknownVoice(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("key", up.URL)

	w := doTTS(r, `{"input":{"text":"Hello"},"voice":{"name":"bad-voice"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Voice "bad-voice" not allowed. Use Standard or WaveNet voices.`, errorBody(t, w))
	assert.EqualValues(t, 0, up.Calls())
}

func TestSynthesizeRejectsLongText(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("key", up.URL)

	body, err := json.Marshal(map[string]any{
		"input": map[string]string{"text": strings.Repeat("ક", 201)},
	})
	require.NoError(t, err)

	w := doTTS(r, string(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Text too long. Maximum 200 characters.", errorBody(t, w))
	assert.EqualValues(t, 0, up.Calls())
}

func TestSynthesizeSuccess(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("key", up.URL)

	w := doTTS(r, `{"input":{"text":"નમસ્તે"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))

	var out struct {
		AudioContent string `json:"audioContent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "U09NRUFVRElP", out.AudioContent)
	assert.EqualValues(t, 1, up.Calls())
}

func TestSynthesizeIsStateless(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("key", up.URL)

	// The gateway holds no cache; identical requests both reach upstream.
	body := `{"input":{"text":"નમસ્તે"},"voice":{"name":"gu-IN-Wavenet-A"}}`
	assert.Equal(t, http.StatusOK, doTTS(r, body).Code)
	assert.Equal(t, http.StatusOK, doTTS(r, body).Code)
	assert.EqualValues(t, 2, up.Calls())
}

func TestSynthesizeMalformedBody(t *testing.T) {
	up := newFakeUpstream(t)
	r := newTTSRouter("key", up.URL)

	w := doTTS(r, `{"input":`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(errorBody(t, w), "Server error: "))
	assert.EqualValues(t, 0, up.Calls())
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "API key invalid"}})
	}))
	defer srv.Close()
	r := newTTSRouter("key", srv.URL)

	w := doTTS(r, `{"input":{"text":"નમસ્તે"}}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "API key invalid", errorBody(t, w))
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
