package protocol

// PropertyConstraintsBase identifies which property a constraint
// override applies to.
type PropertyConstraintsBase struct {
	PropertyID ElementId `json:"propertyId"`
}

// PropertyConstraintsNumber overrides the numeric bounds of a
// property's datatype for this specific object instance.
type PropertyConstraintsNumber struct {
	PropertyConstraintsBase
	MaximumValue *float64 `json:"maximumValue,omitempty"`
	MinimumValue *float64 `json:"minimumValue,omitempty"`
	Step         *float64 `json:"step,omitempty"`
}

// PropertyConstraintsString overrides the string constraints of a
// property's datatype for this specific object instance.
type PropertyConstraintsString struct {
	PropertyConstraintsBase
	MaxCharacters *uint32 `json:"maxCharacters,omitempty"`
	Pattern       *string `json:"pattern,omitempty"`
}

// ParameterConstraintsNumber bounds a method parameter's numeric
// range, used by datatype FieldDescriptor/ParameterDescriptor
// constraints.
type ParameterConstraintsNumber struct {
	MaximumValue *float64 `json:"maximumValue,omitempty"`
	MinimumValue *float64 `json:"minimumValue,omitempty"`
	Step         *float64 `json:"step,omitempty"`
}

// ParameterConstraintsString bounds a method parameter's string shape.
type ParameterConstraintsString struct {
	MaxCharacters *uint32 `json:"maxCharacters,omitempty"`
	Pattern       *string `json:"pattern,omitempty"`
}
