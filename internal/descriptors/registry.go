package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

// BuiltinClasses returns every built-in control class, keyed by dotted
// class id string (e.g. "1.3.1").
func BuiltinClasses() map[string]protocol.ClassDescriptor {
	return Classes()
}

// Datatypes returns every built-in datatype descriptor — primitives,
// typedefs, enums, and structs — keyed by name. Each value is one of
// protocol.DatatypeDescriptorPrimitive, DatatypeDescriptorTypeDef,
// DatatypeDescriptorEnum, or DatatypeDescriptorStruct.
func Datatypes() map[string]any {
	m := map[string]any{}
	for k, v := range Primitives() {
		m[k] = v
	}
	for k, v := range Typedefs() {
		m[k] = v
	}
	for k, v := range Enums() {
		m[k] = v
	}
	for k, v := range Structs() {
		m[k] = v
	}
	return m
}
