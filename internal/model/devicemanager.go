package model

import "github.com/ncdevice/ncdevice/internal/protocol"

// DeviceManagerClassID is NcDeviceManager's class id, 1.3.1.
var DeviceManagerClassID = protocol.ClassId{1, 3, 1}

// DeviceManager exposes the device's identity and operational state.
// Exactly one exists per tree, owned by the root block.
type DeviceManager struct {
	*Manager
	ncVersion         string
	manufacturer      protocol.Manufacturer
	product           protocol.Product
	serialNumber      string
	userInventoryCode *string
	deviceName        *string
	deviceRole        *string
	operationalState  protocol.DeviceOperationalState
	resetCause        protocol.ResetCause
	message           *string
}

// DeviceIdentity carries the identity fields a DeviceManager is
// constructed with.
type DeviceIdentity struct {
	NcVersion    string
	Manufacturer protocol.Manufacturer
	Product      protocol.Product
	SerialNumber string
}

// NewDeviceManager allocates and registers the tree's DeviceManager,
// owned by rootOid.
func NewDeviceManager(tree *Tree, rootOid uint32, identity DeviceIdentity) *DeviceManager {
	dm := &DeviceManager{
		Manager:      newManager(tree, DeviceManagerClassID, rootOid, "DeviceManager"),
		ncVersion:    identity.NcVersion,
		manufacturer: identity.Manufacturer,
		product:      identity.Product,
		serialNumber: identity.SerialNumber,
		operationalState: protocol.DeviceOperationalState{
			GeneralState: protocol.DeviceGenericStateNormalOperation,
		},
		resetCause: protocol.ResetCausePowerOn,
	}
	tree.Register(dm)
	return dm
}

// SetOperationalState updates the device's operational state and
// publishes a change notification.
func (dm *DeviceManager) SetOperationalState(state protocol.DeviceOperationalState) {
	dm.operationalState = state
	dm.emit(protocol.ElementId{Level: 3, Index: 8}, dm.operationalState)
}

func (dm *DeviceManager) Properties() map[protocol.ElementId]PropertyAccessor {
	return map[protocol.ElementId]PropertyAccessor{
		{Level: 3, Index: 1}:  {ID: protocol.ElementId{Level: 3, Index: 1}, ReadOnly: true, Get: func() any { return dm.ncVersion }},
		{Level: 3, Index: 2}:  {ID: protocol.ElementId{Level: 3, Index: 2}, ReadOnly: true, Get: func() any { return dm.manufacturer }},
		{Level: 3, Index: 3}:  {ID: protocol.ElementId{Level: 3, Index: 3}, ReadOnly: true, Get: func() any { return dm.product }},
		{Level: 3, Index: 4}:  {ID: protocol.ElementId{Level: 3, Index: 4}, ReadOnly: true, Get: func() any { return dm.serialNumber }},
		{Level: 3, Index: 5}: {
			ID:  protocol.ElementId{Level: 3, Index: 5},
			Get: func() any { return dm.userInventoryCode },
			Set: func(v any) (protocol.MethodStatus, string) {
				s, ok := stringOrNil(v)
				if !ok {
					return protocol.StatusParameterError, "userInventoryCode must be a string or null"
				}
				dm.userInventoryCode = s
				return protocol.StatusOk, ""
			},
		},
		{Level: 3, Index: 6}: {
			ID: protocol.ElementId{Level: 3, Index: 6},
			Get: func() any { return dm.deviceName },
			Set: func(v any) (protocol.MethodStatus, string) {
				s, ok := stringOrNil(v)
				if !ok {
					return protocol.StatusParameterError, "deviceName must be a string or null"
				}
				dm.deviceName = s
				return protocol.StatusOk, ""
			},
		},
		{Level: 3, Index: 7}: {
			ID: protocol.ElementId{Level: 3, Index: 7},
			Get: func() any { return dm.deviceRole },
			Set: func(v any) (protocol.MethodStatus, string) {
				s, ok := stringOrNil(v)
				if !ok {
					return protocol.StatusParameterError, "deviceRole must be a string or null"
				}
				dm.deviceRole = s
				return protocol.StatusOk, ""
			},
		},
		{Level: 3, Index: 8}:  {ID: protocol.ElementId{Level: 3, Index: 8}, ReadOnly: true, Get: func() any { return dm.operationalState }},
		{Level: 3, Index: 9}:  {ID: protocol.ElementId{Level: 3, Index: 9}, ReadOnly: true, Get: func() any { return dm.resetCause }},
		{Level: 3, Index: 10}: {ID: protocol.ElementId{Level: 3, Index: 10}, ReadOnly: true, Get: func() any { return dm.message }},
	}
}

func (dm *DeviceManager) Methods() map[protocol.ElementId]MethodHandler {
	return map[protocol.ElementId]MethodHandler{}
}
