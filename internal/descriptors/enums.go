package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

func enumItem(name string, value int64, desc string) protocol.EnumItemDescriptor {
	return protocol.EnumItemDescriptor{Description: desc, Name: name, Value: value}
}

func enum(name, desc string, items ...protocol.EnumItemDescriptor) protocol.DatatypeDescriptorEnum {
	return protocol.DatatypeDescriptorEnum{
		Description: desc,
		Name:        name,
		Type:        protocol.DatatypeTypeEnum,
		Items:       items,
	}
}

// Enums returns the built-in enum datatypes, keyed by name.
func Enums() map[string]any {
	m := map[string]any{}
	for _, e := range []protocol.DatatypeDescriptorEnum{
		enum("DatatypeType", "The type of a datatype descriptor",
			enumItem("Primitive", 0, "Primitive datatype"),
			enumItem("TypeDef", 1, "Type defined as a typedef"),
			enumItem("Struct", 2, "Type defined as a struct"),
			enumItem("Enum", 3, "Type defined as an enum"),
		),
		enum("DeviceGenericState", "Coarse operational state of the device",
			enumItem("Unknown", 0, ""),
			enumItem("NormalOperation", 1, ""),
			enumItem("Initializing", 2, ""),
			enumItem("Updating", 3, ""),
			enumItem("LicensingError", 4, ""),
			enumItem("InternalError", 5, ""),
		),
		enum("ResetCause", "The cause of the device's last restart",
			enumItem("Unknown", 0, ""),
			enumItem("PowerOn", 1, ""),
			enumItem("InternalError", 2, ""),
			enumItem("Upgrade", 3, ""),
			enumItem("ControllerRequest", 4, ""),
			enumItem("ManualReset", 5, ""),
		),
		enum("PropertyChangeType", "How a property changed, carried on a PropertyChangedEvent",
			enumItem("ValueChanged", 0, ""),
			enumItem("SequenceItemAdded", 1, ""),
			enumItem("SequenceItemChanged", 2, ""),
			enumItem("SequenceItemRemoved", 3, ""),
		),
		enum("MethodStatus", "The status of a method invocation",
			enumItem("Ok", 200, ""),
			enumItem("PropertyDeprecated", 298, ""),
			enumItem("MethodDeprecated", 299, ""),
			enumItem("BadCommandFormat", 400, ""),
			enumItem("Unauthorized", 401, ""),
			enumItem("BadOid", 404, ""),
			enumItem("Readonly", 405, ""),
			enumItem("InvalidRequest", 406, ""),
			enumItem("Conflict", 409, ""),
			enumItem("BufferOverflow", 413, ""),
			enumItem("IndexOutOfBounds", 414, ""),
			enumItem("ParameterError", 417, ""),
			enumItem("Locked", 423, ""),
			enumItem("DeviceError", 500, ""),
			enumItem("MethodNotImplemented", 501, ""),
			enumItem("PropertyNotImplemented", 502, ""),
			enumItem("NotReady", 503, ""),
			enumItem("Timeout", 504, ""),
		),
	} {
		m[e.Name] = e
	}
	return m
}
