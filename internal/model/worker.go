package model

import "github.com/ncdevice/ncdevice/internal/protocol"

// WorkerClassID is NcWorker's class id, 1.2.
var WorkerClassID = protocol.ClassId{1, 2}

// Worker is a leaf class performing one function in the device, with
// a single enabled property. Concrete worker classes embed *Worker and
// extend its ClassID, Properties, and Methods.
type Worker struct {
	*Object
	enabled bool
}

// NewWorker allocates and registers a worker of the given class,
// derived from NcWorker, under owner.
func NewWorker(tree *Tree, classID protocol.ClassId, owner *uint32, role string) *Worker {
	oid := tree.AllocateOid()
	w := &Worker{Object: newObject(tree, oid, classID, owner, role), enabled: true}
	tree.Register(w)
	return w
}

func (w *Worker) Properties() map[protocol.ElementId]PropertyAccessor {
	return map[protocol.ElementId]PropertyAccessor{
		{Level: 2, Index: 1}: {
			ID:  protocol.ElementId{Level: 2, Index: 1},
			Get: func() any { return w.enabled },
			Set: func(v any) (protocol.MethodStatus, string) {
				enabled, ok := v.(bool)
				if !ok {
					return protocol.StatusParameterError, "enabled must be a boolean"
				}
				w.enabled = enabled
				return protocol.StatusOk, ""
			},
		},
	}
}

func (w *Worker) Methods() map[protocol.ElementId]MethodHandler {
	return map[protocol.ElementId]MethodHandler{}
}
