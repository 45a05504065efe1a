// Package model implements the control-protocol object tree: the base
// Object every class derives from, Block/Manager/Worker and their
// concrete subclasses, and the Tree that owns the process-wide mutex,
// the oid registry, and per-command dispatch.
package model

import (
	"github.com/ncdevice/ncdevice/internal/protocol"
)

// PropertyAccessor binds one property id to its getter/setter pair.
// Get always returns the current value (a scalar, or a slice when
// IsSequence is true). Set is nil for read-only properties.
// SetSequence replaces the whole backing slice and is only populated
// for sequence properties, used by the generic sequence-item methods.
type PropertyAccessor struct {
	ID          protocol.ElementId
	ReadOnly    bool
	IsSequence  bool
	Get         func() any
	Set         func(any) (protocol.MethodStatus, string)
	SetSequence func(any) (protocol.MethodStatus, string)
}

// MethodHandler invokes one class-specific (level >= 2) method given
// its raw JSON arguments.
type MethodHandler func(args []byte) (any, protocol.MethodStatus, string)

// Element is implemented by every concrete class in the tree. Base
// returns the embedded Object; Properties and Methods return only
// this class's own (level >= 2) members — Object's own (1,1)-(1,8)
// properties and (1,1)-(1,7) methods are handled generically by Tree
// and never appear here.
type Element interface {
	Base() *Object
	Properties() map[protocol.ElementId]PropertyAccessor
	Methods() map[protocol.ElementId]MethodHandler
}

// Object is the state and behavior every control class inherits:
// identity, ownership, label, touchpoints, and per-instance
// constraint overrides. Concrete classes embed *Object.
type Object struct {
	tree *Tree

	oid         uint32
	classID     protocol.ClassId
	constantOid bool
	owner       *uint32
	role        string

	userLabel          *string
	touchpoints        []protocol.TouchpointNmos
	runtimeConstraints []protocol.PropertyConstraintsNumber
}

func newObject(tree *Tree, oid uint32, classID protocol.ClassId, owner *uint32, role string) *Object {
	return &Object{
		tree:        tree,
		oid:         oid,
		classID:     classID,
		constantOid: true,
		owner:       owner,
		role:        role,
	}
}

// Base returns the receiver, letting Object itself satisfy Element's
// embedding requirement from any concrete subclass.
func (o *Object) Base() *Object { return o }

// SetTouchpoints replaces the object's touchpoints sequence. Used at
// tree-construction time to back-reference the IS-04 resource (node,
// device) a control class instance corresponds to.
func (o *Object) SetTouchpoints(tp []protocol.TouchpointNmos) {
	o.touchpoints = tp
}

func (o *Object) Oid() uint32            { return o.oid }
func (o *Object) ClassID() protocol.ClassId { return o.classID }
func (o *Object) Owner() *uint32         { return o.owner }
func (o *Object) Role() string           { return o.role }

// emit publishes a PropertyChangedEvent for a plain value change on
// this object.
func (o *Object) emit(propID protocol.ElementId, value any) {
	o.tree.bus.Publish(protocol.NewValueChangedEvent(o.oid, propID, value))
}

// emitSequence publishes a PropertyChangedEvent for a sequence
// mutation, recording the change type and affected index.
func (o *Object) emitSequence(propID protocol.ElementId, changeType protocol.ChangeType, value any, index uint64) {
	o.tree.bus.Publish(protocol.PropertyChangedEvent{
		Oid:     o.oid,
		EventID: protocol.ElementId{Level: 1, Index: 1},
		EventData: protocol.PropertyChangedEventData{
			PropertyID:        propID,
			ChangeType:        changeType,
			Value:             value,
			SequenceItemIndex: &index,
		},
	})
}

// stringOrNil accepts a JSON-decoded value that must be either a
// string or nil (JSON null), returning (pointer, ok).
func stringOrNil(v any) (*string, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

// ownProperties returns the (1,1)-(1,8) properties every object
// exposes, generically, from its own state.
func (o *Object) ownProperties() map[protocol.ElementId]PropertyAccessor {
	accessors := []PropertyAccessor{
		{ID: protocol.ElementId{Level: 1, Index: 1}, ReadOnly: true, Get: func() any { return o.classID }},
		{ID: protocol.ElementId{Level: 1, Index: 2}, ReadOnly: true, Get: func() any { return o.oid }},
		{ID: protocol.ElementId{Level: 1, Index: 3}, ReadOnly: true, Get: func() any { return o.constantOid }},
		{ID: protocol.ElementId{Level: 1, Index: 4}, ReadOnly: true, Get: func() any { return o.owner }},
		{ID: protocol.ElementId{Level: 1, Index: 5}, ReadOnly: true, Get: func() any { return o.role }},
		{
			ID: protocol.ElementId{Level: 1, Index: 6},
			Get: func() any { return o.userLabel },
			Set: func(v any) (protocol.MethodStatus, string) {
				s, ok := stringOrNil(v)
				if !ok {
					return protocol.StatusParameterError, "userLabel must be a string or null"
				}
				o.userLabel = s
				return protocol.StatusOk, ""
			},
		},
		{
			ID: protocol.ElementId{Level: 1, Index: 7}, ReadOnly: true, IsSequence: true,
			Get: func() any { return o.touchpoints },
		},
		{
			ID: protocol.ElementId{Level: 1, Index: 8}, ReadOnly: true, IsSequence: true,
			Get: func() any { return o.runtimeConstraints },
		},
	}
	m := make(map[protocol.ElementId]PropertyAccessor, len(accessors))
	for _, a := range accessors {
		m[a.ID] = a
	}
	return m
}

// objectLevelMethodIDs are the (1,1)-(1,7) property-access verbs every
// object supports, dispatched generically by Tree rather than per
// class.
var objectLevelMethodIDs = map[protocol.ElementId]bool{
	{Level: 1, Index: 1}: true,
	{Level: 1, Index: 2}: true,
	{Level: 1, Index: 3}: true,
	{Level: 1, Index: 4}: true,
	{Level: 1, Index: 5}: true,
	{Level: 1, Index: 6}: true,
	{Level: 1, Index: 7}: true,
}

// IsObjectLevelMethod reports whether methodID addresses one of the
// generic property-access verbs (GetPropertyValue..GetSequenceLength)
// rather than a class-specific method.
func IsObjectLevelMethod(methodID protocol.ElementId) bool {
	return objectLevelMethodIDs[methodID]
}
