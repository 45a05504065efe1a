package session

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ncdevice/ncdevice/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler returns an http.HandlerFunc that upgrades each request to a
// control-protocol WebSocket session, registers it, and runs its read
// and write pumps until the connection closes.
func Handler(tree *model.Tree, registry *Registry, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
			return
		}

		s := NewSession(uuid.NewString())
		registry.Add(s)
		logger.Info("session connected", "session", s.ID, "remote", r.RemoteAddr)

		done := make(chan struct{})
		go writePump(conn, s, logger, done)
		readPump(conn, s, tree, logger)

		s.Close()
		<-done
		registry.Remove(s.ID)
		conn.Close()
		logger.Info("session disconnected", "session", s.ID)
	}
}

// readPump processes inbound frames in arrival order until the
// connection errors or closes. Each frame's reply is enqueued on s's
// outbound queue by HandleFrame, not written directly, so replies and
// fanned-out notifications interleave correctly on the wire.
func readPump(conn *websocket.Conn, s *Session, tree *model.Tree, logger *slog.Logger) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("session read error", "session", s.ID, "error", err)
			}
			return
		}
		HandleFrame(s, tree, raw)
	}
}

// writePump drains s's outbound queue and writes each message as a
// JSON text frame until the queue is closed and empty. Runs in its own
// goroutine so a blocked write never stalls command dispatch.
func writePump(conn *websocket.Conn, s *Session, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)
	for {
		msg, ok := s.NextOutbound()
		if !ok {
			return
		}
		if err := conn.WriteJSON(msg); err != nil {
			logger.Warn("session write error", "session", s.ID, "error", err)
			return
		}
	}
}
