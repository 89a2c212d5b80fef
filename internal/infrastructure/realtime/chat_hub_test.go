package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agencia_maker/internal/domain/entities"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dial(t *testing.T, hub *ChatHub, conversationID, userID string) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, conversationID, userID)
	}))
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt map[string]any
	require.NoError(t, conn.ReadJSON(&evt))
	return evt
}

func TestChatHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := NewChatHub(zap.NewNop())
	defer hub.Close()

	conn, closeFn := dial(t, hub, "convo-1", "maker-1")
	defer closeFn()

	join := readEvent(t, conn)
	assert.Equal(t, EventPresenceJoin, join["type"])
	assert.Equal(t, 1, hub.Subscribers("convo-1"))

	hub.Broadcast("convo-1", entities.ChatMessage{ID: "msg-9", SenderID: "maker-2", Text: "oi"})
	evt := readEvent(t, conn)
	assert.Equal(t, EventMessageNew, evt["type"])
	data, ok := evt["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "msg-9", data["id"])
	assert.Equal(t, "oi", data["text"])
}

func TestChatHub_RoomsAreIsolated(t *testing.T) {
	hub := NewChatHub(zap.NewNop())
	defer hub.Close()

	conn, closeFn := dial(t, hub, "convo-2", "maker-3")
	defer closeFn()
	readEvent(t, conn)

	hub.Broadcast("convo-1", entities.ChatMessage{ID: "elsewhere"})
	hub.Broadcast("convo-2", entities.ChatMessage{ID: "here"})

	evt := readEvent(t, conn)
	data := evt["data"].(map[string]any)
	assert.Equal(t, "here", data["id"])
}

func TestChatHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewChatHub(zap.NewNop())
	conn, closeFn := dial(t, hub, "convo-1", "maker-1")
	readEvent(t, conn)
	closeFn()

	assert.Eventually(t, func() bool { return hub.Subscribers("convo-1") == 0 }, 2*time.Second, 10*time.Millisecond)
	hub.Broadcast("convo-1", entities.ChatMessage{ID: "nobody"})
}

func TestChatHub_OversizedFrameDisconnects(t *testing.T) {
	hub := NewChatHub(zap.NewNop())
	hub.maxMessageSize = 16
	defer hub.Close()

	conn, closeFn := dial(t, hub, "convo-1", "maker-1")
	defer closeFn()
	readEvent(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x", 64))))
	assert.Eventually(t, func() bool { return hub.Subscribers("convo-1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestChatHub_Keepalive(t *testing.T) {
	t.Run("unresponsive client is dropped", func(t *testing.T) {
		hub := NewChatHub(zap.NewNop())
		hub.pongWait, hub.pingPeriod = 150*time.Millisecond, 50*time.Millisecond
		defer hub.Close()

		conn, closeFn := dial(t, hub, "convo-1", "maker-1")
		defer closeFn()
		readEvent(t, conn)

		// The client stops reading, so pings are never answered.
		assert.Eventually(t, func() bool { return hub.Subscribers("convo-1") == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("client answering pings stays connected", func(t *testing.T) {
		hub := NewChatHub(zap.NewNop())
		hub.pongWait, hub.pingPeriod = 150*time.Millisecond, 50*time.Millisecond
		defer hub.Close()

		conn, closeFn := dial(t, hub, "convo-1", "maker-1")
		defer closeFn()
		readEvent(t, conn)
		_ = conn.SetReadDeadline(time.Time{})
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		time.Sleep(500 * time.Millisecond)
		assert.Equal(t, 1, hub.Subscribers("convo-1"))
	})
}
