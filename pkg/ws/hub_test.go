package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialConn opens a real client connection against a one-shot upgrade server,
// so Close on a replaced connection works like in production.
func dialConn(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{}
		_, _ = up.Upgrade(w, r, nil)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubAddRemove(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.Count())

	c1 := dialConn(t)
	h.Add("sess_1", c1)
	got, ok := h.Get("sess_1")
	assert.True(t, ok)
	assert.Same(t, c1, got)
	assert.Equal(t, 1, h.Count())

	h.Remove("sess_1")
	_, ok = h.Get("sess_1")
	assert.False(t, ok)
	assert.Equal(t, 0, h.Count())
}

func TestHubReconnectReplacesAndClosesOld(t *testing.T) {
	h := NewHub()

	c1 := dialConn(t)
	c2 := dialConn(t)
	h.Add("sess_1", c1)
	h.Add("sess_1", c2)

	got, ok := h.Get("sess_1")
	require.True(t, ok)
	assert.Same(t, c2, got)
	assert.Equal(t, 1, h.Count(), "one entry per session")

	// The replaced connection was closed by Add; writes on it must fail.
	err := c1.WriteMessage(websocket.TextMessage, []byte("ping"))
	assert.Error(t, err)
}

func TestHubAddSameConnTwice(t *testing.T) {
	h := NewHub()

	c1 := dialConn(t)
	h.Add("sess_1", c1)
	h.Add("sess_1", c1)

	// Re-adding the same connection must not close it.
	assert.NoError(t, c1.WriteMessage(websocket.TextMessage, []byte("ping")))
	assert.Equal(t, 1, h.Count())
}
