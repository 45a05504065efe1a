package model

import (
	"encoding/json"
	"sort"

	"github.com/ncdevice/ncdevice/internal/descriptors"
	"github.com/ncdevice/ncdevice/internal/protocol"
)

// ClassManagerClassID is NcClassManager's class id, 1.3.2.
var ClassManagerClassID = protocol.ClassId{1, 3, 2}

// ClassManager exposes the class and datatype introspection registry:
// every control class and datatype the device implements, and the two
// methods controllers use to resolve inherited descriptors on demand.
type ClassManager struct {
	*Manager
	classes   map[string]protocol.ClassDescriptor
	datatypes map[string]any
}

// NewClassManager allocates and registers the tree's ClassManager,
// owned by rootOid, seeded with the built-in registry plus any
// additional classes/datatypes contributed by the device's own
// worker classes.
func NewClassManager(tree *Tree, rootOid uint32, extraClasses map[string]protocol.ClassDescriptor, extraDatatypes map[string]any) *ClassManager {
	classes := descriptors.BuiltinClasses()
	for k, v := range extraClasses {
		classes[k] = v
	}
	datatypes := descriptors.Datatypes()
	for k, v := range extraDatatypes {
		datatypes[k] = v
	}
	cm := &ClassManager{
		Manager:   newManager(tree, ClassManagerClassID, rootOid, "ClassManager"),
		classes:   classes,
		datatypes: datatypes,
	}
	tree.Register(cm)
	return cm
}

func (cm *ClassManager) sortedClasses() []protocol.ClassDescriptor {
	keys := make([]string, 0, len(cm.classes))
	for k := range cm.classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]protocol.ClassDescriptor, len(keys))
	for i, k := range keys {
		out[i] = cm.classes[k]
	}
	return out
}

func (cm *ClassManager) sortedDatatypes() []any {
	keys := make([]string, 0, len(cm.datatypes))
	for k := range cm.datatypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = cm.datatypes[k]
	}
	return out
}

func (cm *ClassManager) Properties() map[protocol.ElementId]PropertyAccessor {
	return map[protocol.ElementId]PropertyAccessor{
		{Level: 3, Index: 1}: {
			ID: protocol.ElementId{Level: 3, Index: 1}, ReadOnly: true, IsSequence: true,
			Get: func() any { return cm.sortedClasses() },
		},
		{Level: 3, Index: 2}: {
			ID: protocol.ElementId{Level: 3, Index: 2}, ReadOnly: true, IsSequence: true,
			Get: func() any { return cm.sortedDatatypes() },
		},
	}
}

func (cm *ClassManager) Methods() map[protocol.ElementId]MethodHandler {
	return map[protocol.ElementId]MethodHandler{
		{Level: 3, Index: 1}: cm.getControlClass,
		{Level: 3, Index: 2}: cm.getDatatype,
	}
}

func (cm *ClassManager) getControlClass(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.GetControlClassArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	cd, status, msg := cm.GetControlClass(a.ClassID, a.IncludeInherited)
	if status.IsError() {
		return nil, status, msg
	}
	return cd, status, ""
}

// GetControlClass returns the class descriptor for classID. With
// includeInherited, Properties/Methods/Events are the concatenation
// of classID's own members followed by each ancestor's own members,
// own-first, walking up via ClassId.Parent().
func (cm *ClassManager) GetControlClass(classID protocol.ClassId, includeInherited bool) (protocol.ClassDescriptor, protocol.MethodStatus, string) {
	cd, ok := cm.classes[classID.String()]
	if !ok {
		return protocol.ClassDescriptor{}, protocol.StatusInvalidRequest, "Descriptor for class could not be found"
	}
	if !includeInherited {
		return cd, protocol.StatusOk, ""
	}
	return cm.flattenClass(cd), protocol.StatusOk, ""
}

func (cm *ClassManager) flattenClass(cd protocol.ClassDescriptor) protocol.ClassDescriptor {
	props := append([]protocol.PropertyDescriptor{}, cd.Properties...)
	methods := append([]protocol.MethodDescriptor{}, cd.Methods...)
	events := append([]protocol.EventDescriptor{}, cd.Events...)

	for parent := cd.ClassID.Parent(); parent != nil; parent = parent.Parent() {
		ancestor, ok := cm.classes[parent.String()]
		if !ok {
			break
		}
		props = append(props, ancestor.Properties...)
		methods = append(methods, ancestor.Methods...)
		events = append(events, ancestor.Events...)
	}

	cd.Properties = props
	cd.Methods = methods
	cd.Events = events
	return cd
}

func (cm *ClassManager) getDatatype(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.GetDatatypeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	dt, status, msg := cm.GetDatatype(a.Name, a.IncludeInherited)
	if status.IsError() {
		return nil, status, msg
	}
	return dt, status, ""
}

// GetDatatype returns the datatype descriptor for name. Only struct
// datatypes change shape under includeInherited: their Fields become
// the concatenation of their own fields followed by each ancestor
// struct's own fields, own-first, walking up via ParentType.
// Primitive, typedef, and enum descriptors are identical regardless of
// includeInherited.
func (cm *ClassManager) GetDatatype(name string, includeInherited bool) (any, protocol.MethodStatus, string) {
	dt, ok := cm.datatypes[name]
	if !ok {
		return nil, protocol.StatusInvalidRequest, "Descriptor for datatype could not be found"
	}
	if !includeInherited {
		return dt, protocol.StatusOk, ""
	}
	s, ok := dt.(protocol.DatatypeDescriptorStruct)
	if !ok {
		return dt, protocol.StatusOk, ""
	}
	return cm.flattenStruct(s), protocol.StatusOk, ""
}

func (cm *ClassManager) flattenStruct(s protocol.DatatypeDescriptorStruct) protocol.DatatypeDescriptorStruct {
	fields := append([]protocol.FieldDescriptor{}, s.Fields...)
	for parentName := s.ParentType; parentName != ""; {
		parentAny, ok := cm.datatypes[parentName]
		if !ok {
			break
		}
		parent, ok := parentAny.(protocol.DatatypeDescriptorStruct)
		if !ok {
			break
		}
		fields = append(fields, parent.Fields...)
		parentName = parent.ParentType
	}
	s.Fields = fields
	return s
}
