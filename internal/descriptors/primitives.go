// Package descriptors provides static builders for the ClassManager's
// introspection registry: primitive, typedef, enum, and struct
// datatype descriptors, and the per-class property/method/event
// descriptors for every class in the inheritance tree. Every built
// descriptor is the non-inherited form — its own fields only; the
// ClassManager recurses over ParentType/ClassId prefixes to flatten
// inherited descriptors on demand.
package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

func primitive(name, desc string) protocol.DatatypeDescriptorPrimitive {
	return protocol.DatatypeDescriptorPrimitive{
		Description: desc,
		Name:        name,
		Type:        protocol.DatatypeTypePrimitive,
	}
}

// Primitives returns the built-in primitive datatypes, keyed by name.
func Primitives() map[string]any {
	m := map[string]any{}
	for _, p := range []protocol.DatatypeDescriptorPrimitive{
		primitive("Boolean", "True/false value"),
		primitive("Int16", "16-bit signed integer"),
		primitive("Int32", "32-bit signed integer"),
		primitive("Int64", "64-bit signed integer"),
		primitive("Uint16", "16-bit unsigned integer"),
		primitive("Uint32", "32-bit unsigned integer"),
		primitive("Uint64", "64-bit unsigned integer"),
		primitive("Float32", "32-bit floating point"),
		primitive("Float64", "64-bit floating point"),
		primitive("String", "UTF-8 string"),
	} {
		m[p.Name] = p
	}
	return m
}
