package protocol

// MethodResultBase is the common shape of every MethodResult variant:
// a status code with no payload. Used directly for methods that have
// no return value beyond success/failure.
type MethodResultBase struct {
	Status MethodStatus `json:"status"`
}

// MethodResultError adds an error message to a failed result.
type MethodResultError struct {
	MethodResultBase
	ErrorMessage string `json:"errorMessage"`
}

// MethodResultPropertyValue carries an arbitrary property value.
type MethodResultPropertyValue struct {
	MethodResultBase
	Value any `json:"value"`
}

// MethodResultBlockMemberDescriptors carries a sequence of block
// member descriptors, returned by Block's level-2 methods.
type MethodResultBlockMemberDescriptors struct {
	MethodResultBase
	Value []BlockMemberDescriptor `json:"value"`
}

// MethodResultClassDescriptor carries a single class descriptor,
// returned by ClassManager's GetControlClass.
type MethodResultClassDescriptor struct {
	MethodResultBase
	Value ClassDescriptor `json:"value"`
}

// MethodResultDatatypeDescriptor carries a single datatype descriptor
// (one of the Primitive/TypeDef/Enum/Struct variants), returned by
// ClassManager's GetDatatype.
type MethodResultDatatypeDescriptor struct {
	MethodResultBase
	Value any `json:"value"`
}

// MethodResultId carries a single OID, e.g. from a hypothetical
// add-member style method.
type MethodResultId struct {
	MethodResultBase
	Value uint32 `json:"value"`
}

// MethodResultLength carries a sequence length, returned by
// GetSequenceLength.
type MethodResultLength struct {
	MethodResultBase
	Value uint64 `json:"value"`
}
