package session

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

func TestWebSocketRoundTrip(t *testing.T) {
	tree := newTestTree()
	registry := NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(Handler(tree, registry, logger))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	req := `{"messageType":0,"commands":[{"handle":42,"oid":1,"methodId":{"level":1,"index":1},"arguments":{"id":{"level":1,"index":5}}}]}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(req)); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp protocol.CommandResponseMessage
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(resp.Responses) != 1 || resp.Responses[0].Handle != 42 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Responses[0].Result.Status != protocol.StatusOk {
		t.Errorf("status = %v, want StatusOk", resp.Responses[0].Result.Status)
	}
}
