package model

import "github.com/ncdevice/ncdevice/internal/protocol"

// StatusMonitorClassID is NcStatusMonitor's class id, 1.2.1, derived
// from NcWorker.
var StatusMonitorClassID = protocol.ClassId{1, 2, 1}

// StatusMonitor aggregates the health of the objects it watches into
// a single overall status, following the general/operational state
// exposed by DeviceManager.
type StatusMonitor struct {
	*Worker
	overallStatus protocol.DeviceGenericState
	statusMessage *string
}

// NewStatusMonitor allocates and registers a StatusMonitor under
// owner.
func NewStatusMonitor(tree *Tree, owner *uint32, role string) *StatusMonitor {
	oid := tree.AllocateOid()
	sm := &StatusMonitor{
		Worker:        &Worker{Object: newObject(tree, oid, StatusMonitorClassID, owner, role), enabled: true},
		overallStatus: protocol.DeviceGenericStateNormalOperation,
	}
	tree.Register(sm)
	return sm
}

// SetOverallStatus updates the aggregated status and publishes a
// change notification, as would follow a change in a watched object's
// health.
func (sm *StatusMonitor) SetOverallStatus(state protocol.DeviceGenericState, message *string) {
	sm.overallStatus = state
	sm.statusMessage = message
	sm.emit(protocol.ElementId{Level: 3, Index: 1}, sm.overallStatus)
}

func (sm *StatusMonitor) Properties() map[protocol.ElementId]PropertyAccessor {
	props := sm.Worker.Properties()
	props[protocol.ElementId{Level: 3, Index: 1}] = PropertyAccessor{
		ID: protocol.ElementId{Level: 3, Index: 1}, ReadOnly: true,
		Get: func() any { return sm.overallStatus },
	}
	props[protocol.ElementId{Level: 3, Index: 2}] = PropertyAccessor{
		ID: protocol.ElementId{Level: 3, Index: 2}, ReadOnly: true,
		Get: func() any { return sm.statusMessage },
	}
	return props
}

func (sm *StatusMonitor) Methods() map[protocol.ElementId]MethodHandler {
	return map[protocol.ElementId]MethodHandler{}
}
