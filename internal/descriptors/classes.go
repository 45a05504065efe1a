package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

func prop(id protocol.ElementId, name, desc, typeName string, readOnly, nullable, sequence bool) protocol.PropertyDescriptor {
	return protocol.PropertyDescriptor{
		Description: desc,
		ID:          id,
		Name:        name,
		TypeName:    typeName,
		IsReadOnly:  readOnly,
		IsNullable:  nullable,
		IsSequence:  sequence,
	}
}

func method(id protocol.ElementId, name, desc, resultType string, params ...protocol.ParameterDescriptor) protocol.MethodDescriptor {
	return protocol.MethodDescriptor{
		Description:    desc,
		ID:             id,
		Name:           name,
		ResultDatatype: resultType,
		Parameters:     params,
	}
}

func param(name, desc, typeName string, sequence, nullable bool) protocol.ParameterDescriptor {
	return protocol.ParameterDescriptor{Description: desc, Name: name, TypeName: typeName, IsSequence: sequence, IsNullable: nullable}
}

func class(id protocol.ClassId, name, desc string, props []protocol.PropertyDescriptor, methods []protocol.MethodDescriptor, events []protocol.EventDescriptor) protocol.ClassDescriptor {
	return protocol.ClassDescriptor{
		Description: desc,
		ClassID:     id,
		Name:        name,
		Properties:  props,
		Methods:     methods,
		Events:      events,
	}
}

// objectProperties are the properties every class in the tree inherits
// from the root Object class.
func objectProperties() []protocol.PropertyDescriptor {
	return []protocol.PropertyDescriptor{
		prop(protocol.ElementId{Level: 1, Index: 1}, "classId", "Identifies the class of this object", "ClassId", true, false, true),
		prop(protocol.ElementId{Level: 1, Index: 2}, "oid", "Object id, unique within this device", "Oid", true, false, false),
		prop(protocol.ElementId{Level: 1, Index: 3}, "constantOid", "True if oid is stable across reboots", "Boolean", true, false, false),
		prop(protocol.ElementId{Level: 1, Index: 4}, "owner", "Oid of the containing Block, or null for the root", "Oid", true, true, false),
		prop(protocol.ElementId{Level: 1, Index: 5}, "role", "This object's role within its owner", "Role", true, false, false),
		prop(protocol.ElementId{Level: 1, Index: 6}, "userLabel", "A freeform, controller-settable label", "String", false, true, false),
		prop(protocol.ElementId{Level: 1, Index: 7}, "touchpoints", "Cross-specification resource references", "TouchpointNmos", true, true, true),
		prop(protocol.ElementId{Level: 1, Index: 8}, "runtimePropertyConstraints", "Per-instance overrides of this object's property constraints", "PropertyConstraintsNumber", true, true, true),
	}
}

func objectEvents() []protocol.EventDescriptor {
	return []protocol.EventDescriptor{
		{ID: protocol.ElementId{Level: 1, Index: 1}, Name: "propertyChanged", Description: "Emitted whenever a property value changes", EventDatatype: "PropertyChangedEventData"},
	}
}

func objectMethods() []protocol.MethodDescriptor {
	return []protocol.MethodDescriptor{
		method(protocol.ElementId{Level: 1, Index: 1}, "GetPropertyValue", "Gets a property's value by id", "",
			param("id", "", "PropertyId", false, false)),
		method(protocol.ElementId{Level: 1, Index: 2}, "SetPropertyValue", "Sets a property's value by id", "",
			param("id", "", "PropertyId", false, false), param("value", "", "", false, true)),
		method(protocol.ElementId{Level: 1, Index: 3}, "GetSequenceItem", "Gets one item of a sequence property", "",
			param("id", "", "PropertyId", false, false), param("index", "", "Uint16", false, false)),
		method(protocol.ElementId{Level: 1, Index: 4}, "SetSequenceItem", "Sets one item of a sequence property", "",
			param("id", "", "PropertyId", false, false), param("index", "", "Uint16", false, false), param("value", "", "", false, true)),
		method(protocol.ElementId{Level: 1, Index: 5}, "AddSequenceItem", "Appends an item to a sequence property", "",
			param("id", "", "PropertyId", false, false), param("value", "", "", false, true)),
		method(protocol.ElementId{Level: 1, Index: 6}, "RemoveSequenceItem", "Removes one item of a sequence property", "",
			param("id", "", "PropertyId", false, false), param("index", "", "Uint16", false, false)),
		method(protocol.ElementId{Level: 1, Index: 7}, "GetSequenceLength", "Returns the length of a sequence property", "Uint64",
			param("id", "", "PropertyId", false, false)),
	}
}

// Classes returns the built-in control classes, keyed by dotted class id.
func Classes() map[string]protocol.ClassDescriptor {
	m := map[string]protocol.ClassDescriptor{}

	object := class(protocol.ClassId{1}, "NcObject", "The base class all control classes derive from",
		objectProperties(), objectMethods(), objectEvents())
	m[object.ClassID.String()] = object

	block := class(protocol.ClassId{1, 1}, "NcBlock", "A composite object that contains other objects",
		[]protocol.PropertyDescriptor{
			prop(protocol.ElementId{Level: 2, Index: 1}, "enabled", "Whether descendants are in use", "Boolean", true, false, false),
			prop(protocol.ElementId{Level: 2, Index: 2}, "members", "Descriptors of this block's immediate children", "BlockMemberDescriptor", true, false, true),
		},
		[]protocol.MethodDescriptor{
			method(protocol.ElementId{Level: 2, Index: 1}, "GetMemberDescriptors", "Returns descriptors for immediate children, or for all descendants when recurse is set", "BlockMemberDescriptor",
				param("recurse", "", "Boolean", false, false)),
			method(protocol.ElementId{Level: 2, Index: 2}, "FindMembersByPath", "Resolves a role path to a descendant", "BlockMemberDescriptor",
				param("path", "", "String", true, false)),
			method(protocol.ElementId{Level: 2, Index: 3}, "FindMembersByRole", "Finds descendants by matching role", "BlockMemberDescriptor",
				param("role", "", "String", false, false), param("caseSensitive", "", "Boolean", false, false),
				param("matchWholeString", "", "Boolean", false, false), param("recurse", "", "Boolean", false, false)),
			method(protocol.ElementId{Level: 2, Index: 4}, "FindMembersByClassId", "Finds descendants by matching class id", "BlockMemberDescriptor",
				param("classId", "", "Int32", true, false), param("includeDerived", "", "Boolean", false, false), param("recurse", "", "Boolean", false, false)),
		},
		nil)
	m[block.ClassID.String()] = block

	worker := class(protocol.ClassId{1, 2}, "NcWorker", "A leaf class that performs a function in the device",
		[]protocol.PropertyDescriptor{
			prop(protocol.ElementId{Level: 2, Index: 1}, "enabled", "Whether this worker is in use", "Boolean", false, false, false),
		}, nil, nil)
	m[worker.ClassID.String()] = worker

	manager := class(protocol.ClassId{1, 3}, "NcManager", "Base class for singleton management objects owned directly by the root Block",
		nil, nil, nil)
	m[manager.ClassID.String()] = manager

	deviceManager := class(protocol.ClassId{1, 3, 1}, "NcDeviceManager", "Exposes general device identity and operational state",
		[]protocol.PropertyDescriptor{
			prop(protocol.ElementId{Level: 3, Index: 1}, "ncVersion", "Version of this control framework implemented by the device", "String", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 2}, "manufacturer", "Organization that built the device", "Manufacturer", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 3}, "product", "Device model identity", "Product", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 4}, "serialNumber", "Manufacturer-assigned serial number", "String", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 5}, "userInventoryCode", "Freeform asset-tracking code", "String", false, true, false),
			prop(protocol.ElementId{Level: 3, Index: 6}, "deviceName", "Freeform device name", "String", false, true, false),
			prop(protocol.ElementId{Level: 3, Index: 7}, "deviceRole", "Freeform device role description", "String", false, true, false),
			prop(protocol.ElementId{Level: 3, Index: 8}, "operationalState", "Current operational state", "DeviceOperationalState", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 9}, "resetCause", "Cause of the last device restart", "ResetCause", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 10}, "message", "Freeform operator-facing status message", "String", true, true, false),
		}, nil, nil)
	deviceManager.FixedRole = "DeviceManager"
	m[deviceManager.ClassID.String()] = deviceManager

	classManager := class(protocol.ClassId{1, 3, 2}, "NcClassManager", "Exposes the class and datatype introspection registry",
		[]protocol.PropertyDescriptor{
			prop(protocol.ElementId{Level: 3, Index: 1}, "controlClasses", "All control class descriptors known to the device", "ClassDescriptor", true, false, true),
			prop(protocol.ElementId{Level: 3, Index: 2}, "datatypes", "All datatype descriptors known to the device", "DatatypeDescriptorEnum", true, false, true),
		},
		[]protocol.MethodDescriptor{
			method(protocol.ElementId{Level: 3, Index: 1}, "GetControlClass", "Returns one class descriptor by class id", "ClassDescriptor",
				param("classId", "", "Int32", true, false), param("includeInherited", "", "Boolean", false, false)),
			method(protocol.ElementId{Level: 3, Index: 2}, "GetDatatype", "Returns one datatype descriptor by name", "",
				param("name", "", "Name", false, false), param("includeInherited", "", "Boolean", false, false)),
		}, nil)
	classManager.FixedRole = "ClassManager"
	m[classManager.ClassID.String()] = classManager

	statusMonitor := class(protocol.ClassId{1, 2, 1}, "NcStatusMonitor", "Aggregates and reports the overall health status of its owning block",
		[]protocol.PropertyDescriptor{
			prop(protocol.ElementId{Level: 3, Index: 1}, "overallStatus", "Worst status of any component this monitor tracks", "DeviceGenericState", true, false, false),
			prop(protocol.ElementId{Level: 3, Index: 2}, "statusMessage", "Human-readable elaboration of overallStatus", "String", true, true, false),
		}, nil, nil)
	m[statusMonitor.ClassID.String()] = statusMonitor

	return m
}
