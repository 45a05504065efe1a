package descriptors

import "github.com/ncdevice/ncdevice/internal/protocol"

func field(name, desc, typeName string, isSequence, isNullable bool) protocol.FieldDescriptor {
	return protocol.FieldDescriptor{
		Description: desc,
		Name:        name,
		TypeName:    typeName,
		IsSequence:  isSequence,
		IsNullable:  isNullable,
	}
}

func structdt(name, desc, parent string, fields ...protocol.FieldDescriptor) protocol.DatatypeDescriptorStruct {
	return protocol.DatatypeDescriptorStruct{
		Description: desc,
		Name:        name,
		Type:        protocol.DatatypeTypeStruct,
		ParentType:  parent,
		Fields:      fields,
	}
}

// Structs returns the built-in struct datatypes, keyed by name. Each
// entry carries only its own fields; PropertyId, MethodId, and EventId
// are deliberately modeled as ParentType "ElementId" structs with no
// own fields, so includeInherited lookups on them exercise the same
// concatenation path as a property-bearing class.
func Structs() map[string]any {
	m := map[string]any{}

	elementID := structdt("ElementId", "Identifies a property, method, or event within a class", "",
		field("level", "", "Int16", false, false),
		field("index", "", "Int16", false, false),
	)
	m[elementID.Name] = elementID

	for _, name := range []string{"PropertyId", "MethodId", "EventId"} {
		m[name] = structdt(name, "", "ElementId")
	}

	blockMember := structdt("BlockMemberDescriptor", "Describes one child of a Block", "",
		field("role", "", "String", false, false),
		field("oid", "", "Oid", false, false),
		field("constantOid", "", "Boolean", false, false),
		field("classId", "", "ClassId", false, false),
		field("userLabel", "", "String", false, true),
		field("owner", "", "Oid", false, false),
	)
	m[blockMember.Name] = blockMember

	manufacturer := structdt("Manufacturer", "Identifies the organization that built the device", "",
		field("name", "", "String", false, false),
		field("organizationId", "", "OrganizationId", false, true),
		field("website", "", "Uri", false, true),
	)
	m[manufacturer.Name] = manufacturer

	product := structdt("Product", "Identifies the device model", "",
		field("name", "", "String", false, false),
		field("key", "", "String", false, false),
		field("revisionLevel", "", "String", false, false),
		field("brand", "", "String", false, true),
		field("uuid", "", "Uuid", false, true),
		field("description", "", "String", false, true),
	)
	m[product.Name] = product

	operationalState := structdt("DeviceOperationalState", "Device's current operational state", "",
		field("generalState", "", "DeviceGenericState", false, false),
		field("deviceSpecificDetails", "", "String", false, true),
	)
	m[operationalState.Name] = operationalState

	touchpointBase := structdt("TouchpointBase", "Base type for cross-specification references", "",
		field("contextNamespace", "", "String", false, false),
	)
	m[touchpointBase.Name] = touchpointBase

	touchpointResourceBase := structdt("TouchpointResourceBase", "Base type for a touchpoint's target resource", "",
		field("resourceType", "", "String", false, false),
	)
	m[touchpointResourceBase.Name] = touchpointResourceBase

	touchpointResourceNmos := structdt("TouchpointResourceNmos", "References an IS-04 resource", "TouchpointResourceBase",
		field("id", "", "String", false, false),
	)
	m[touchpointResourceNmos.Name] = touchpointResourceNmos

	touchpointResourceNmosChannelMapping := structdt("TouchpointResourceNmosChannelMapping", "References an IS-08 channel-mapping I/O", "TouchpointResourceNmos",
		field("ioId", "", "String", false, false),
	)
	m[touchpointResourceNmosChannelMapping.Name] = touchpointResourceNmosChannelMapping

	touchpointNmos := structdt("TouchpointNmos", "A Touchpoint resolving to an IS-04 resource", "TouchpointBase",
		field("resource", "", "TouchpointResourceNmos", false, false),
	)
	m[touchpointNmos.Name] = touchpointNmos

	touchpointNmosChannelMapping := structdt("TouchpointNmosChannelMapping", "A Touchpoint resolving to an IS-08 I/O", "TouchpointBase",
		field("resource", "", "TouchpointResourceNmosChannelMapping", false, false),
	)
	m[touchpointNmosChannelMapping.Name] = touchpointNmosChannelMapping

	propertyConstraintsBase := structdt("PropertyConstraintsBase", "Identifies the property a constraint override applies to", "",
		field("propertyId", "", "PropertyId", false, false),
	)
	m[propertyConstraintsBase.Name] = propertyConstraintsBase

	propertyConstraintsNumber := structdt("PropertyConstraintsNumber", "Overrides the numeric bounds of a property", "PropertyConstraintsBase",
		field("maximumValue", "", "Float64", false, true),
		field("minimumValue", "", "Float64", false, true),
		field("step", "", "Float64", false, true),
	)
	m[propertyConstraintsNumber.Name] = propertyConstraintsNumber

	propertyConstraintsString := structdt("PropertyConstraintsString", "Overrides the string constraints of a property", "PropertyConstraintsBase",
		field("maxCharacters", "", "Uint32", false, true),
		field("pattern", "", "Regex", false, true),
	)
	m[propertyConstraintsString.Name] = propertyConstraintsString

	parameterConstraintsNumber := structdt("ParameterConstraintsNumber", "Bounds a method parameter's numeric range", "",
		field("maximumValue", "", "Float64", false, true),
		field("minimumValue", "", "Float64", false, true),
		field("step", "", "Float64", false, true),
	)
	m[parameterConstraintsNumber.Name] = parameterConstraintsNumber

	parameterConstraintsString := structdt("ParameterConstraintsString", "Bounds a method parameter's string shape", "",
		field("maxCharacters", "", "Uint32", false, true),
		field("pattern", "", "Regex", false, true),
	)
	m[parameterConstraintsString.Name] = parameterConstraintsString

	fieldDescriptor := structdt("FieldDescriptor", "Describes one field of a struct datatype", "",
		field("description", "", "String", false, true),
		field("name", "", "String", false, false),
		field("typeName", "", "Name", false, true),
		field("isSequence", "", "Boolean", false, false),
		field("isNullable", "", "Boolean", false, false),
		field("constraints", "", "ParameterConstraintsNumber", false, true),
	)
	m[fieldDescriptor.Name] = fieldDescriptor

	parameterDescriptor := structdt("ParameterDescriptor", "Describes one parameter of a method", "",
		field("description", "", "String", false, true),
		field("name", "", "String", false, false),
		field("typeName", "", "Name", false, true),
		field("isSequence", "", "Boolean", false, false),
		field("isNullable", "", "Boolean", false, false),
		field("constraints", "", "ParameterConstraintsNumber", false, true),
	)
	m[parameterDescriptor.Name] = parameterDescriptor

	propertyDescriptor := structdt("PropertyDescriptor", "Describes one class property", "",
		field("description", "", "String", false, true),
		field("id", "", "PropertyId", false, false),
		field("name", "", "Name", false, false),
		field("typeName", "", "Name", false, true),
		field("isReadOnly", "", "Boolean", false, false),
		field("isNullable", "", "Boolean", false, false),
		field("isSequence", "", "Boolean", false, false),
		field("isDeprecated", "", "Boolean", false, false),
		field("constraints", "", "PropertyConstraintsNumber", false, true),
	)
	m[propertyDescriptor.Name] = propertyDescriptor

	methodDescriptor := structdt("MethodDescriptor", "Describes one class method", "",
		field("description", "", "String", false, true),
		field("id", "", "MethodId", false, false),
		field("name", "", "Name", false, false),
		field("resultDatatype", "", "Name", false, true),
		field("parameters", "", "ParameterDescriptor", true, false),
		field("isDeprecated", "", "Boolean", false, false),
	)
	m[methodDescriptor.Name] = methodDescriptor

	eventDescriptor := structdt("EventDescriptor", "Describes one class event", "",
		field("description", "", "String", false, true),
		field("id", "", "EventId", false, false),
		field("name", "", "Name", false, false),
		field("eventDatatype", "", "Name", false, true),
		field("isDeprecated", "", "Boolean", false, false),
	)
	m[eventDescriptor.Name] = eventDescriptor

	classDescriptor := structdt("ClassDescriptor", "Describes a class's properties, methods, and events", "",
		field("description", "", "String", false, true),
		field("classId", "", "ClassId", false, false),
		field("name", "", "Name", false, false),
		field("fixedRole", "", "Role", false, true),
		field("properties", "", "PropertyDescriptor", true, false),
		field("methods", "", "MethodDescriptor", true, false),
		field("events", "", "EventDescriptor", true, false),
	)
	m[classDescriptor.Name] = classDescriptor

	datatypeDescriptorPrimitive := structdt("DatatypeDescriptorPrimitive", "Describes a primitive datatype", "",
		field("description", "", "String", false, true),
		field("name", "", "Name", false, false),
		field("type", "", "DatatypeType", false, false),
	)
	m[datatypeDescriptorPrimitive.Name] = datatypeDescriptorPrimitive

	datatypeDescriptorTypeDef := structdt("DatatypeDescriptorTypeDef", "Describes a datatype defined as an alias of another", "",
		field("description", "", "String", false, true),
		field("name", "", "Name", false, false),
		field("type", "", "DatatypeType", false, false),
		field("parentType", "", "Name", false, false),
		field("isSequence", "", "Boolean", false, false),
	)
	m[datatypeDescriptorTypeDef.Name] = datatypeDescriptorTypeDef

	datatypeDescriptorEnum := structdt("DatatypeDescriptorEnum", "Describes a datatype defined as an enumeration", "",
		field("description", "", "String", false, true),
		field("name", "", "Name", false, false),
		field("type", "", "DatatypeType", false, false),
		field("items", "", "EnumItemDescriptor", true, false),
	)
	m[datatypeDescriptorEnum.Name] = datatypeDescriptorEnum

	datatypeDescriptorStruct := structdt("DatatypeDescriptorStruct", "Describes a datatype defined as a struct", "",
		field("description", "", "String", false, true),
		field("name", "", "Name", false, false),
		field("type", "", "DatatypeType", false, false),
		field("parentType", "", "Name", false, true),
		field("fields", "", "FieldDescriptor", true, false),
	)
	m[datatypeDescriptorStruct.Name] = datatypeDescriptorStruct

	enumItemDescriptor := structdt("EnumItemDescriptor", "Describes one member of an enum datatype", "",
		field("description", "", "String", false, true),
		field("name", "", "Name", false, false),
		field("value", "", "Int64", false, false),
	)
	m[enumItemDescriptor.Name] = enumItemDescriptor

	propertyChangedEventData := structdt("PropertyChangedEventData", "Describes a single property mutation carried by a PropertyChangedEvent", "",
		field("propertyId", "", "PropertyId", false, false),
		field("changeType", "", "PropertyChangeType", false, false),
		field("value", "", "", false, true),
		field("sequenceItemIndex", "", "Uint64", false, true),
	)
	m[propertyChangedEventData.Name] = propertyChangedEventData

	methodResultBase := structdt("MethodResultBase", "Common shape of every method result: a status with no payload", "",
		field("status", "", "MethodStatus", false, false),
	)
	m[methodResultBase.Name] = methodResultBase

	methodResultError := structdt("MethodResultError", "A failed method result carrying an error message", "MethodResultBase",
		field("errorMessage", "", "String", false, false),
	)
	m[methodResultError.Name] = methodResultError

	methodResultPropertyValue := structdt("MethodResultPropertyValue", "A method result carrying an arbitrary property value", "MethodResultBase",
		field("value", "", "", false, true),
	)
	m[methodResultPropertyValue.Name] = methodResultPropertyValue

	methodResultBlockMemberDescriptors := structdt("MethodResultBlockMemberDescriptors", "A method result carrying a sequence of block member descriptors", "MethodResultBase",
		field("value", "", "BlockMemberDescriptor", true, false),
	)
	m[methodResultBlockMemberDescriptors.Name] = methodResultBlockMemberDescriptors

	methodResultClassDescriptor := structdt("MethodResultClassDescriptor", "A method result carrying a single class descriptor", "MethodResultBase",
		field("value", "", "ClassDescriptor", false, false),
	)
	m[methodResultClassDescriptor.Name] = methodResultClassDescriptor

	methodResultDatatypeDescriptor := structdt("MethodResultDatatypeDescriptor", "A method result carrying a single datatype descriptor", "MethodResultBase",
		field("value", "", "", false, false),
	)
	m[methodResultDatatypeDescriptor.Name] = methodResultDatatypeDescriptor

	methodResultId := structdt("MethodResultId", "A method result carrying a single oid", "MethodResultBase",
		field("value", "", "Oid", false, false),
	)
	m[methodResultId.Name] = methodResultId

	methodResultLength := structdt("MethodResultLength", "A method result carrying a sequence length", "MethodResultBase",
		field("value", "", "Uint64", false, false),
	)
	m[methodResultLength.Name] = methodResultLength

	return m
}
