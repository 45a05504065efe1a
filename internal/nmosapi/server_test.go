package nmosapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer() *Server {
	return NewServer("", 0, Identity{
		NodeID:       "11111111-1111-1111-1111-111111111111",
		DeviceID:     "22222222-2222-2222-2222-222222222222",
		Label:        "test-device",
		Manufacturer: "Example Manufacturer",
		Product:      "ncdevice",
		Hostname:     "example.invalid",
		TAIOffsetSec: 37,
	}, "ws://example.invalid:8080/ws", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mux(s *Server) http.Handler {
	m := http.NewServeMux()
	m.HandleFunc("GET /x-nmos/node/v1.0/self", s.handleNodeSelf)
	m.HandleFunc("GET /x-nmos/node/v1.0/devices", s.handleDevices)
	m.HandleFunc("GET /x-nmos/node/v1.0/devices/{id}", s.handleDevice)
	return m
}

func TestHandleNodeSelfReturnsIdentity(t *testing.T) {
	s := newTestServer()
	srv := httptest.NewServer(mux(s))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/x-nmos/node/v1.0/self")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var node Node
	if err := json.NewDecoder(resp.Body).Decode(&node); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if node.ID != s.identity.NodeID {
		t.Errorf("ID = %q, want %q", node.ID, s.identity.NodeID)
	}
	if len(node.API.Versions) == 0 || node.API.Versions[0] != "v1.0" {
		t.Errorf("unexpected api versions: %+v", node.API.Versions)
	}
}

func TestHandleDevicesListsSingleDeviceWithControl(t *testing.T) {
	s := newTestServer()
	srv := httptest.NewServer(mux(s))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/x-nmos/node/v1.0/devices")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var devices []Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("len(devices) = %d, want 1", len(devices))
	}
	d := devices[0]
	if d.ID != s.identity.DeviceID {
		t.Errorf("device ID = %q, want %q", d.ID, s.identity.DeviceID)
	}
	if len(d.Controls) != 1 || d.Controls[0].Href != "ws://example.invalid:8080/ws" {
		t.Errorf("unexpected controls: %+v", d.Controls)
	}
}

func TestHandleDeviceUnknownIDReturnsNotFound(t *testing.T) {
	s := newTestServer()
	srv := httptest.NewServer(mux(s))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/x-nmos/node/v1.0/devices/does-not-exist")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
