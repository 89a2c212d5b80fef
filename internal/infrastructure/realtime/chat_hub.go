package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventMessageNew    = "message_new"
	EventPresenceJoin  = "presence_join"
	EventPresenceLeave = "presence_leave"

	sendBuffer   = 16
	writeTimeout = 5 * time.Second

	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 4096
)

type ChatEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type subscriber struct {
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

// ChatHub fans chat events out to websocket subscribers, one room per
// conversation. Each connection has its own writer goroutine; a subscriber
// whose buffer is full misses the event.
//
// Clients must answer pings within pongWait or they are disconnected; frames
// larger than maxMessageSize close the connection.
type ChatHub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	pongWait       time.Duration
	pingPeriod     time.Duration
	maxMessageSize int64

	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{}
}

var _ interfaces.IChatBroadcaster = (*ChatHub)(nil)

func NewChatHub(logger *zap.Logger) *ChatHub {
	return &ChatHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pongWait:       defaultPongWait,
		pingPeriod:     defaultPongWait * 9 / 10,
		maxMessageSize: defaultMaxMessageSize,
		rooms:          make(map[string]map[*subscriber]struct{}),
	}
}

func (h *ChatHub) Broadcast(conversationID string, msg entities.ChatMessage) {
	h.publish(conversationID, ChatEvent{Type: EventMessageNew, Data: msg})
}

// Serve upgrades the request and blocks until the client disconnects.
// Participation must be checked by the caller. Client frames are discarded.
func (h *ChatHub) Serve(w http.ResponseWriter, r *http.Request, conversationID, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	conn.SetReadLimit(h.maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	s := &subscriber{conn: conn, userID: userID, send: make(chan []byte, sendBuffer)}
	go h.writeLoop(s)

	h.register(conversationID, s)
	h.publish(conversationID, ChatEvent{Type: EventPresenceJoin, Data: map[string]string{"user_id": userID}})
	h.logger.Debug("[chat][ws] subscriber joined", zap.String("conversation_id", conversationID), zap.String("user_id", userID))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	if h.unregister(conversationID, s) {
		h.publish(conversationID, ChatEvent{Type: EventPresenceLeave, Data: map[string]string{"user_id": userID}})
	}
	h.logger.Debug("[chat][ws] subscriber left", zap.String("conversation_id", conversationID), zap.String("user_id", userID))
	return nil
}

// Subscribers returns the number of live connections on a conversation.
func (h *ChatHub) Subscribers(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[conversationID])
}

// Close disconnects every subscriber.
func (h *ChatHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		for s := range room {
			close(s.send)
		}
		delete(h.rooms, id)
	}
}

func (h *ChatHub) publish(conversationID string, evt ChatEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("[chat][ws] failed to encode event", zap.String("type", evt.Type), zap.Error(err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.rooms[conversationID] {
		select {
		case s.send <- payload:
		default:
			h.logger.Warn("[chat][ws] subscriber too slow, dropping event",
				zap.String("conversation_id", conversationID), zap.String("user_id", s.userID))
		}
	}
}

func (h *ChatHub) register(conversationID string, s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[conversationID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[conversationID] = room
	}
	room[s] = struct{}{}
}

// unregister reports false when the hub already dropped the subscriber.
func (h *ChatHub) unregister(conversationID string, s *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[conversationID]
	if _, ok := room[s]; !ok {
		return false
	}
	delete(room, s)
	close(s.send)
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
	return true
}

func (h *ChatHub) writeLoop(s *subscriber) {
	ticker := time.NewTicker(h.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.abandon(s, err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.abandon(s, err)
				return
			}
		}
	}
}

// abandon closes a connection whose writes fail. Closing ends the read loop,
// which closes send; draining keeps publishers from blocking until then.
func (h *ChatHub) abandon(s *subscriber, err error) {
	h.logger.Debug("[chat][ws] write failed", zap.String("user_id", s.userID), zap.Error(err))
	_ = s.conn.Close()
	for range s.send {
	}
}
