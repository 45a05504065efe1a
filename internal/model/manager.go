package model

import "github.com/ncdevice/ncdevice/internal/protocol"

// ManagerClassID is NcManager's class id, 1.3. NcManager itself adds
// no properties or methods beyond NcObject; DeviceManager and
// ClassManager both derive from it and are the only managers the root
// block owns directly.
var ManagerClassID = protocol.ClassId{1, 3}

// Manager is the base for singleton management objects, always owned
// directly by the root block.
type Manager struct {
	*Object
}

func newManager(tree *Tree, classID protocol.ClassId, owner uint32, role string) *Manager {
	oid := tree.AllocateOid()
	m := &Manager{Object: newObject(tree, oid, classID, &owner, role)}
	return m
}
