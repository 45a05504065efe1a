package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

func typedef(name, desc, parent string, isSequence bool) protocol.DatatypeDescriptorTypeDef {
	return protocol.DatatypeDescriptorTypeDef{
		Description: desc,
		Name:        name,
		Type:        protocol.DatatypeTypeTypeDef,
		ParentType:  parent,
		IsSequence:  isSequence,
	}
}

// Typedefs returns the built-in typedef datatypes, keyed by name.
func Typedefs() map[string]any {
	m := map[string]any{}
	for _, td := range []protocol.DatatypeDescriptorTypeDef{
		typedef("Name", "A user-facing name", "String", false),
		typedef("RolePath", "Sequence of roles from a block to a descendant", "String", true),
		typedef("Regex", "A regular expression pattern", "String", false),
		typedef("Role", "The name of a member within its owning block", "String", false),
		typedef("ClassId", "Sequence of integers describing a class's inheritance path", "Int32", true),
		typedef("Id", "A generic non-negative identifier", "Int32", false),
		typedef("Oid", "Object identifier, unique within the process", "Uint32", false),
		typedef("OrganizationId", "IEEE OUI-derived organization identifier", "Int32", false),
		typedef("Uri", "A Uniform Resource Identifier", "String", false),
		typedef("VersionCode", "A semantic version string", "String", false),
		typedef("Uuid", "A universally unique identifier", "String", false),
		typedef("TimeInterval", "A duration, in nanoseconds", "Int64", false),
	} {
		m[td.Name] = td
	}
	return m
}
