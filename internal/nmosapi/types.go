// Package nmosapi serves the minimal IS-04 node facade a control-protocol
// device needs so a controller can discover it and find its websocket
// endpoint via the standard control-class touchpoint mechanism: the
// node's self document, its one device, and the device's "connect" to
// the control-protocol control.
package nmosapi

// Resource is the set of fields every IS-04 resource shares.
type Resource struct {
	ID          string              `json:"id"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Version     string              `json:"version"`
	Tags        map[string][]string `json:"tags"`
}

// Control describes one control endpoint a device exposes, e.g. the
// control-protocol WebSocket.
type Control struct {
	Type          string `json:"type"`
	Href          string `json:"href"`
	Authorization bool   `json:"authorization"`
}

// Device is the IS-04 device resource representing the process itself.
type Device struct {
	Resource
	Senders   []string  `json:"senders"`
	Receivers []string  `json:"receivers"`
	NodeID    string    `json:"node_id"`
	Type      string    `json:"type"`
	Controls  []Control `json:"controls"`
}

// Clock describes one of the node's reference clocks.
type Clock struct {
	Name    string `json:"name"`
	RefType string `json:"ref_type"`
}

// Interface describes one network interface the node is reachable on.
type Interface struct {
	ChassisID string `json:"chassis_id"`
	Name      string `json:"name"`
	PortID    string `json:"port_id"`
}

// Endpoint is one HTTP(S) endpoint the node's APIs are served on.
type Endpoint struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
}

// API describes the node's own API surface.
type API struct {
	Endpoints []Endpoint `json:"endpoints"`
	Versions  []string   `json:"versions"`
}

// Node is the IS-04 node resource, the root of the node's self
// description.
type Node struct {
	Resource
	Href       string           `json:"href"`
	Hostname   string           `json:"hostname"`
	Caps       map[string]any   `json:"caps"`
	Services   []map[string]any `json:"services"`
	Clocks     []Clock          `json:"clocks"`
	Interfaces []Interface      `json:"interfaces"`
	API        API              `json:"api"`
}
