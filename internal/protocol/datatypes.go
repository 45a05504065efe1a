package protocol

// DatatypeType discriminates the four kinds of datatype descriptor the
// ClassManager's registry can hold.
type DatatypeType int

const (
	DatatypeTypePrimitive DatatypeType = 0
	DatatypeTypeTypeDef   DatatypeType = 1
	DatatypeTypeStruct    DatatypeType = 2
	DatatypeTypeEnum      DatatypeType = 3
)

// DatatypeDescriptorPrimitive describes a built-in primitive type
// (Boolean, Int32, String, ...). Identical regardless of
// includeInherited.
type DatatypeDescriptorPrimitive struct {
	Description string       `json:"description,omitempty"`
	Name        string       `json:"name"`
	Type        DatatypeType `json:"type"`
}

// DatatypeDescriptorTypeDef describes a typedef over another datatype
// (e.g. NcRolePath is a sequence of NcString). Identical regardless of
// includeInherited.
type DatatypeDescriptorTypeDef struct {
	Description string       `json:"description,omitempty"`
	Name        string       `json:"name"`
	Type        DatatypeType `json:"type"`
	ParentType  string       `json:"parentType"`
	IsSequence  bool         `json:"isSequence"`
	Constraints any          `json:"constraints,omitempty"`
}

// EnumItemDescriptor describes one named value of an enum datatype.
type EnumItemDescriptor struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name"`
	Value       int64  `json:"value"`
}

// DatatypeDescriptorEnum describes an enumeration. Identical regardless
// of includeInherited.
type DatatypeDescriptorEnum struct {
	Description string               `json:"description,omitempty"`
	Name        string               `json:"name"`
	Type        DatatypeType         `json:"type"`
	Items       []EnumItemDescriptor `json:"items"`
}

// DatatypeDescriptorStruct describes a struct datatype. When rebuilt
// with includeInherited=true, Fields is the concatenation of this
// struct's own fields followed by the parent struct's fields
// (recursively), own-first.
type DatatypeDescriptorStruct struct {
	Description string            `json:"description,omitempty"`
	Name        string            `json:"name"`
	Type        DatatypeType      `json:"type"`
	Fields      []FieldDescriptor `json:"fields"`
	ParentType  string            `json:"parentType,omitempty"`
}
