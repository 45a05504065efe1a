package protocol

// FieldDescriptor describes one field of a struct datatype.
type FieldDescriptor struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name"`
	TypeName    string `json:"typeName,omitempty"`
	IsSequence  bool   `json:"isSequence"`
	IsNullable  bool   `json:"isNullable"`
	Constraints any    `json:"constraints,omitempty"`
}

// ParameterDescriptor describes one parameter of a method.
type ParameterDescriptor struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name"`
	TypeName    string `json:"typeName,omitempty"`
	IsSequence  bool   `json:"isSequence"`
	IsNullable  bool   `json:"isNullable"`
	Constraints any    `json:"constraints,omitempty"`
}

// PropertyDescriptor describes one class property, addressed by ID.
type PropertyDescriptor struct {
	Description  string `json:"description,omitempty"`
	ID           ElementId `json:"id"`
	Name         string `json:"name"`
	TypeName     string `json:"typeName,omitempty"`
	IsReadOnly   bool   `json:"isReadOnly"`
	IsNullable   bool   `json:"isNullable"`
	IsSequence   bool   `json:"isSequence"`
	IsDeprecated bool   `json:"isDeprecated"`
	Constraints  any    `json:"constraints,omitempty"`
}

// MethodDescriptor describes one class method, addressed by ID.
type MethodDescriptor struct {
	Description    string                `json:"description,omitempty"`
	ID             ElementId             `json:"id"`
	Name           string                `json:"name"`
	ResultDatatype string                `json:"resultDatatype,omitempty"`
	Parameters     []ParameterDescriptor `json:"parameters"`
	IsDeprecated   bool                  `json:"isDeprecated"`
}

// EventDescriptor describes one class event, addressed by ID.
type EventDescriptor struct {
	Description   string    `json:"description,omitempty"`
	ID            ElementId `json:"id"`
	Name          string    `json:"name"`
	EventDatatype string    `json:"eventDatatype,omitempty"`
	IsDeprecated  bool      `json:"isDeprecated"`
}

// ClassDescriptor describes a class's own or (when rebuilt with
// includeInherited) flattened properties/methods/events. Concatenation
// order for includeInherited is always own-first, inherited-second.
type ClassDescriptor struct {
	Description string             `json:"description,omitempty"`
	ClassID     ClassId            `json:"classId"`
	Name        string             `json:"name"`
	FixedRole   string             `json:"fixedRole,omitempty"`
	Properties  []PropertyDescriptor `json:"properties"`
	Methods     []MethodDescriptor   `json:"methods"`
	Events      []EventDescriptor    `json:"events"`
}
