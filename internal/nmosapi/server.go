package nmosapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// writeJSON encodes v as JSON to w, logging any errors at debug level.
func writeJSON(w http.ResponseWriter, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("failed to write JSON response", "error", err)
	}
}

// Identity configures the node and device resources this facade
// serves.
type Identity struct {
	NodeID       string
	DeviceID     string
	Label        string
	Manufacturer string
	Product      string
	Hostname     string
	TAIOffsetSec int
}

// Server serves the IS-04 node API subset a controller needs to
// discover this process and locate its control-protocol WebSocket:
// the node's self document and its single device, whose controls
// list advertises the /ws href.
type Server struct {
	address  string
	port     int
	identity Identity
	wsPath   string
	logger   *slog.Logger
	server   *http.Server
	version  string
}

// NewServer creates a node API facade. wsPath is advertised in the
// device's controls list as the href of the control-protocol
// WebSocket, e.g. "ws://host:port/ws".
func NewServer(address string, port int, identity Identity, wsPath string, logger *slog.Logger) *Server {
	return &Server{
		address:  address,
		port:     port,
		identity: identity,
		wsPath:   wsPath,
		logger:   logger,
		version:  versionTimestamp(identity.TAIOffsetSec),
	}
}

// versionTimestamp formats the IS-04 resource version: seconds:nanoseconds
// since epoch, adjusted by the configured TAI-UTC offset so it matches
// the PTP-derived timestamps the rest of the control surface uses.
func versionTimestamp(taiOffsetSec int) string {
	now := time.Now().Add(time.Duration(taiOffsetSec) * time.Second)
	return fmt.Sprintf("%d:%d", now.Unix(), now.Nanosecond())
}

// Start begins serving the node API.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /x-nmos/node/v1.0/self", s.handleNodeSelf)
	mux.HandleFunc("GET /x-nmos/node/v1.0/devices", s.handleDevices)
	mux.HandleFunc("GET /x-nmos/node/v1.0/devices/{id}", s.handleDevice)
	mux.HandleFunc("GET /x-nmos/node/v1.0/", s.handleVersionList)
	mux.HandleFunc("GET /x-nmos/", s.handleAPIRoot)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := s.address
	if addr == "" {
		addr = "0.0.0.0"
	}
	s.logger.Info("starting nmos node api", "address", addr, "port", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("nmos api request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) node() Node {
	return Node{
		Resource: Resource{
			ID:      s.identity.NodeID,
			Label:   s.identity.Label,
			Version: s.version,
			Tags:    map[string][]string{},
		},
		Href:       fmt.Sprintf("http://%s:%d/", s.hostOrDefault(), s.port),
		Hostname:   s.hostOrDefault(),
		Caps:       map[string]any{},
		Services:   []map[string]any{},
		Clocks:     []Clock{{Name: "clk0", RefType: "internal"}},
		Interfaces: []Interface{},
		API: API{
			Versions: []string{"v1.0"},
			Endpoints: []Endpoint{
				{Host: s.hostOrDefault(), Port: s.port, Protocol: "http"},
			},
		},
	}
}

func (s *Server) hostOrDefault() string {
	if s.identity.Hostname != "" {
		return s.identity.Hostname
	}
	return "localhost"
}

func (s *Server) device() Device {
	return Device{
		Resource: Resource{
			ID:      s.identity.DeviceID,
			Label:   s.identity.Label,
			Version: s.version,
			Tags:    map[string][]string{},
		},
		Senders:   []string{},
		Receivers: []string{},
		NodeID:    s.identity.NodeID,
		Type:      "urn:x-nmos:device:generic",
		Controls: []Control{
			{Type: "urn:x-nmos:control:ncp/v1.0", Href: s.wsPath, Authorization: false},
		},
	}
}

func (s *Server) handleNodeSelf(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.node(), s.logger)
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []Device{s.device()}, s.logger)
}

func (s *Server) handleDevice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id != s.identity.DeviceID {
		http.Error(w, "device not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s.device(), s.logger)
}

func (s *Server) handleVersionList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []string{"self/", "devices/", "sources/", "flows/", "senders/", "receivers/"}, s.logger)
}

func (s *Server) handleAPIRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []string{"node/"}, s.logger)
}
