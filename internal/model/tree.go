package model

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/ncdevice/ncdevice/internal/events"
	"github.com/ncdevice/ncdevice/internal/protocol"
)

// Tree owns the single mutex that serializes every read and write
// against the object graph, the oid registry, and the bus mutations
// are published on. Every exported method that touches object state
// holds mu for its duration, so a Publish a caller observes via the
// bus always happens-after the write that produced it.
type Tree struct {
	mu      sync.Mutex
	bus     *events.Bus
	objects map[uint32]Element
	nextOid uint32
}

// NewTree creates an empty tree publishing property changes on bus.
func NewTree(bus *events.Bus) *Tree {
	return &Tree{
		bus:     bus,
		objects: make(map[uint32]Element),
		nextOid: 1,
	}
}

// AllocateOid returns the next unused oid. Callers construct the
// Element and then call Register.
func (t *Tree) AllocateOid() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	oid := t.nextOid
	t.nextOid++
	return oid
}

// Register adds el to the tree, keyed by its own oid. Not guarded by
// mu itself; callers build the full initial tree before any session
// can reach it, then call Register for each member before serving
// traffic.
func (t *Tree) Register(el Element) {
	t.objects[el.Base().Oid()] = el
}

// Lookup returns the element with the given oid.
func (t *Tree) Lookup(oid uint32) (Element, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, ok := t.objects[oid]
	return el, ok
}

// Dispatch executes one command against the tree and returns its
// response. It holds the tree mutex for the duration of the call, so
// the property write (if any) and the resulting Publish happen
// atomically with respect to every other command and every other
// object's mutation.
func (t *Tree) Dispatch(cmd protocol.Command) protocol.Response {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cmd.Oid > math.MaxUint32 {
		return errResponse(cmd.Handle, protocol.StatusBadOid, "Member not found")
	}
	oid := uint32(cmd.Oid)
	el, ok := t.objects[oid]
	if !ok {
		return errResponse(cmd.Handle, protocol.StatusBadOid, "Member not found")
	}

	if IsObjectLevelMethod(cmd.MethodID) {
		return t.dispatchPropertyAccess(cmd, el)
	}

	methods := el.Methods()
	handler, ok := methods[cmd.MethodID]
	if !ok {
		return errResponse(cmd.Handle, protocol.StatusMethodNotImplemented,
			fmt.Sprintf("no method %v on oid %d", cmd.MethodID, oid))
	}
	value, status, msg := handler(cmd.Arguments)
	if status.IsError() {
		return errResponse(cmd.Handle, status, msg)
	}
	return okResponse(cmd.Handle, status, value)
}

// properties returns the union of an element's inherited (1,x) and
// own (level >= 2) property accessors, keyed by property id.
func properties(el Element) map[protocol.ElementId]PropertyAccessor {
	all := el.Base().ownProperties()
	for id, a := range el.Properties() {
		all[id] = a
	}
	return all
}

func (t *Tree) dispatchPropertyAccess(cmd protocol.Command, el Element) protocol.Response {
	props := properties(el)

	switch cmd.MethodID.Index {
	case 1: // GetPropertyValue
		var args protocol.GetPropertyArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := props[args.ID]
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such property")
		}
		return okResponse(cmd.Handle, protocol.StatusOk, acc.Get())

	case 2: // SetPropertyValue
		var args protocol.SetPropertyArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := props[args.ID]
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such property")
		}
		if acc.ReadOnly || acc.Set == nil {
			return errResponse(cmd.Handle, protocol.StatusReadonly, "property is read-only")
		}
		status, msg := acc.Set(args.Value)
		if status.IsError() {
			return errResponse(cmd.Handle, status, msg)
		}
		el.Base().emit(args.ID, args.Value)
		return okResponse(cmd.Handle, status, nil)

	case 3: // GetSequenceItem
		var args protocol.SequenceItemArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := sequenceAccessor(props, args.ID)
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such sequence property")
		}
		v := reflect.ValueOf(acc.Get())
		if int(args.Index) >= v.Len() {
			return errResponse(cmd.Handle, protocol.StatusIndexOutOfBounds, "index out of bounds")
		}
		return okResponse(cmd.Handle, protocol.StatusOk, v.Index(int(args.Index)).Interface())

	case 4: // SetSequenceItem
		var args protocol.SetSequenceItemArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := sequenceAccessor(props, args.ID)
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such sequence property")
		}
		if acc.ReadOnly || acc.SetSequence == nil {
			return errResponse(cmd.Handle, protocol.StatusReadonly, "property is read-only")
		}
		v := reflect.ValueOf(acc.Get())
		if int(args.Index) >= v.Len() {
			return errResponse(cmd.Handle, protocol.StatusIndexOutOfBounds, "index out of bounds")
		}
		next := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(next, v)
		next.Index(int(args.Index)).Set(reflect.ValueOf(args.Value).Convert(v.Type().Elem()))
		status, msg := acc.SetSequence(next.Interface())
		if status.IsError() {
			return errResponse(cmd.Handle, status, msg)
		}
		el.Base().emitSequence(args.ID, protocol.ChangeTypeSequenceItemChanged, args.Value, args.Index)
		return okResponse(cmd.Handle, status, nil)

	case 5: // AddSequenceItem
		var args protocol.AddSequenceItemArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := sequenceAccessor(props, args.ID)
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such sequence property")
		}
		if acc.ReadOnly || acc.SetSequence == nil {
			return errResponse(cmd.Handle, protocol.StatusReadonly, "property is read-only")
		}
		v := reflect.ValueOf(acc.Get())
		item := reflect.ValueOf(args.Value).Convert(v.Type().Elem())
		next := reflect.Append(v, item)
		status, msg := acc.SetSequence(next.Interface())
		if status.IsError() {
			return errResponse(cmd.Handle, status, msg)
		}
		index := uint64(next.Len() - 1)
		el.Base().emitSequence(args.ID, protocol.ChangeTypeSequenceItemAdded, args.Value, index)
		return okResponse(cmd.Handle, status, index)

	case 6: // RemoveSequenceItem
		var args protocol.SequenceItemArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := sequenceAccessor(props, args.ID)
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such sequence property")
		}
		if acc.ReadOnly || acc.SetSequence == nil {
			return errResponse(cmd.Handle, protocol.StatusReadonly, "property is read-only")
		}
		v := reflect.ValueOf(acc.Get())
		if int(args.Index) >= v.Len() {
			return errResponse(cmd.Handle, protocol.StatusIndexOutOfBounds, "index out of bounds")
		}
		next := reflect.MakeSlice(v.Type(), 0, v.Len()-1)
		for i := 0; i < v.Len(); i++ {
			if i == int(args.Index) {
				continue
			}
			next = reflect.Append(next, v.Index(i))
		}
		status, msg := acc.SetSequence(next.Interface())
		if status.IsError() {
			return errResponse(cmd.Handle, status, msg)
		}
		el.Base().emitSequence(args.ID, protocol.ChangeTypeSequenceItemRemoved, nil, args.Index)
		return okResponse(cmd.Handle, status, nil)

	case 7: // GetSequenceLength
		var args protocol.SequenceLengthArgs
		if err := json.Unmarshal(cmd.Arguments, &args); err != nil {
			return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, err.Error())
		}
		acc, ok := sequenceAccessor(props, args.ID)
		if !ok {
			return errResponse(cmd.Handle, protocol.StatusPropertyNotImplemented, "no such sequence property")
		}
		v := reflect.ValueOf(acc.Get())
		return okResponse(cmd.Handle, protocol.StatusOk, uint64(v.Len()))
	}

	return errResponse(cmd.Handle, protocol.StatusBadCommandFormat, "unrecognized object-level method index")
}

func sequenceAccessor(props map[protocol.ElementId]PropertyAccessor, id protocol.ElementId) (PropertyAccessor, bool) {
	acc, ok := props[id]
	if !ok || !acc.IsSequence {
		return PropertyAccessor{}, false
	}
	return acc, true
}

func okResponse(handle uint64, status protocol.MethodStatus, value any) protocol.Response {
	return protocol.Response{Handle: handle, Result: protocol.ResponseResult{Status: status, Value: value}}
}

func errResponse(handle uint64, status protocol.MethodStatus, msg string) protocol.Response {
	return protocol.Response{Handle: handle, Result: protocol.ResponseResult{Status: status, ErrorMessage: msg}}
}
