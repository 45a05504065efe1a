package model

import "github.com/ncdevice/ncdevice/internal/protocol"

// DefaultTreeConfig seeds the identity fields exposed by the
// constructed tree's DeviceManager and, when NmosDeviceID is set,
// the IS-04 back-reference published as the root Block's touchpoint.
type DefaultTreeConfig struct {
	Identity     DeviceIdentity
	NmosDeviceID string
}

// BuildDefaultTree constructs the minimal compliant object tree: a
// root Block (oid 1) owning a DeviceManager, a ClassManager, and one
// nested Block containing a StatusMonitor worker. It returns the root
// Block; every object is already registered with tree.
func BuildDefaultTree(tree *Tree, cfg DefaultTreeConfig) *Block {
	root := NewBlock(tree, nil, "root")
	rootOid := root.Oid()

	if cfg.NmosDeviceID != "" {
		root.SetTouchpoints([]protocol.TouchpointNmos{
			{
				TouchpointBase: protocol.TouchpointBase{ContextNamespace: "x-nmos"},
				Resource: protocol.TouchpointResourceNmos{
					TouchpointResourceBase: protocol.TouchpointResourceBase{ResourceType: "device"},
					ID:                     cfg.NmosDeviceID,
				},
			},
		})
	}

	dm := NewDeviceManager(tree, rootOid, cfg.Identity)
	root.AddMember("DeviceManager", dm)

	cm := NewClassManager(tree, rootOid, nil, nil)
	root.AddMember("ClassManager", cm)

	monitoring := NewBlock(tree, &rootOid, "monitoring")
	root.AddMember("monitoring", monitoring)

	monitoringOid := monitoring.Oid()
	statusMonitor := NewStatusMonitor(tree, &monitoringOid, "status")
	monitoring.AddMember("status", statusMonitor)

	return root
}
