package model

import (
	"encoding/json"
	"strings"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

// BlockClassID is NcBlock's class id, 1.1.
var BlockClassID = protocol.ClassId{1, 1}

// Block is a composite object containing other objects as members,
// each identified within the block by a unique role.
type Block struct {
	*Object
	isRoot  bool
	enabled bool
	members []*blockMember
}

type blockMember struct {
	role string
	el   Element
}

// NewBlock allocates and registers a new Block under tree, owned by
// owner (nil for the root block), addressed by role. A nil owner is
// also what marks the block as the tree's root: only the root has no
// containing block.
func NewBlock(tree *Tree, owner *uint32, role string) *Block {
	oid := tree.AllocateOid()
	b := &Block{Object: newObject(tree, oid, BlockClassID, owner, role), isRoot: owner == nil, enabled: true}
	tree.Register(b)
	return b
}

// AddMember attaches el as a child of b and publishes a members
// change notification.
func (b *Block) AddMember(role string, el Element) {
	b.members = append(b.members, &blockMember{role: role, el: el})
	b.emit(protocol.ElementId{Level: 2, Index: 2}, b.memberDescriptors())
}

func (b *Block) memberDescriptors() []protocol.BlockMemberDescriptor {
	descs := make([]protocol.BlockMemberDescriptor, 0, len(b.members))
	for _, m := range b.members {
		descs = append(descs, describeMember(m))
	}
	return descs
}

// describeMember builds the BlockMemberDescriptor for m, which may
// belong to any Block in the tree, not just the receiver.
func describeMember(m *blockMember) protocol.BlockMemberDescriptor {
	base := m.el.Base()
	owner := uint32(0)
	if base.Owner() != nil {
		owner = *base.Owner()
	}
	return protocol.BlockMemberDescriptor{
		Role:        m.role,
		Oid:         base.Oid(),
		ConstantOid: base.constantOid,
		ClassID:     base.ClassID(),
		UserLabel:   base.userLabel,
		Owner:       owner,
	}
}

func (b *Block) Properties() map[protocol.ElementId]PropertyAccessor {
	return map[protocol.ElementId]PropertyAccessor{
		{Level: 2, Index: 1}: {
			ID: protocol.ElementId{Level: 2, Index: 1}, ReadOnly: true,
			Get: func() any { return b.enabled },
		},
		{Level: 2, Index: 2}: {
			ID: protocol.ElementId{Level: 2, Index: 2}, ReadOnly: true, IsSequence: true,
			Get: func() any { return b.memberDescriptors() },
		},
	}
}

func (b *Block) Methods() map[protocol.ElementId]MethodHandler {
	return map[protocol.ElementId]MethodHandler{
		{Level: 2, Index: 1}: b.getMemberDescriptors,
		{Level: 2, Index: 2}: b.findMembersByPath,
		{Level: 2, Index: 3}: b.findMembersByRole,
		{Level: 2, Index: 4}: b.findMembersByClassID,
	}
}

func (b *Block) getMemberDescriptors(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.GetMemberDescriptorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	if !a.Recurse {
		return b.memberDescriptors(), protocol.StatusOk, ""
	}
	return b.recursiveMemberDescriptors(), protocol.StatusOk, ""
}

func (b *Block) recursiveMemberDescriptors() []protocol.BlockMemberDescriptor {
	descs := b.memberDescriptors()
	for _, m := range b.members {
		if child, ok := m.el.(*Block); ok {
			descs = append(descs, child.recursiveMemberDescriptors()...)
		}
	}
	return descs
}

// findMembersByPath resolves a role path relative to this block. Empty
// segments are dropped before walking; a path that trims to nothing
// resolves to nothing, since the block itself has no
// BlockMemberDescriptor (it is not a member of anything).
func (b *Block) findMembersByPath(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.FindMembersByPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	path := make([]string, 0, len(a.Path))
	for _, seg := range a.Path {
		if seg != "" {
			path = append(path, seg)
		}
	}
	results := b.membersByPath(path)
	if results == nil {
		results = []protocol.BlockMemberDescriptor{}
	}
	return results, protocol.StatusOk, ""
}

// membersByPath matches each child whose role equals the head segment;
// on the last segment the matches themselves are the result, otherwise
// the walk continues into the matches that are Blocks.
func (b *Block) membersByPath(path []string) []protocol.BlockMemberDescriptor {
	if len(path) == 0 {
		return nil
	}
	var results []protocol.BlockMemberDescriptor
	for _, m := range b.members {
		if m.role != path[0] {
			continue
		}
		if len(path) == 1 {
			results = append(results, describeMember(m))
			continue
		}
		if child, ok := m.el.(*Block); ok {
			results = append(results, child.membersByPath(path[1:])...)
		}
	}
	return results
}

func (b *Block) findMembersByRole(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.FindMembersByRoleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	if a.Role == "" {
		return []protocol.BlockMemberDescriptor{}, protocol.StatusOk, ""
	}
	var results []protocol.BlockMemberDescriptor
	b.walkMembers(a.Recurse, func(m *blockMember) {
		if roleMatches(m.role, a.Role, a.CaseSensitive, a.MatchWholeString) {
			results = append(results, describeMember(m))
		}
	})
	if results == nil {
		results = []protocol.BlockMemberDescriptor{}
	}
	return results, protocol.StatusOk, ""
}

func roleMatches(role, pattern string, caseSensitive, wholeString bool) bool {
	r, p := role, pattern
	if !caseSensitive {
		r, p = strings.ToLower(r), strings.ToLower(p)
	}
	if wholeString {
		return r == p
	}
	return strings.Contains(r, p)
}

func (b *Block) findMembersByClassID(args []byte) (any, protocol.MethodStatus, string) {
	var a protocol.FindMembersByClassIdArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, protocol.StatusBadCommandFormat, err.Error()
	}
	classMatches := func(classID protocol.ClassId) bool {
		if a.IncludeDerived {
			return classID.DerivedFrom(a.ClassID)
		}
		return classID.Equal(a.ClassID)
	}
	var results []protocol.BlockMemberDescriptor
	b.walkMembers(a.Recurse, func(m *blockMember) {
		if classMatches(m.el.Base().ClassID()) {
			results = append(results, describeMember(m))
		}
	})
	if b.isRoot && classMatches(b.ClassID()) {
		results = append(results, b.selfDescriptor())
	}
	if results == nil {
		results = []protocol.BlockMemberDescriptor{}
	}
	return results, protocol.StatusOk, ""
}

// selfDescriptor builds the root block's own BlockMemberDescriptor for
// FindMembersByClassId. When the root matches the query it is appended
// with owner set to its own oid, since the root is not a member of
// anything and has no real owner to report.
func (b *Block) selfDescriptor() protocol.BlockMemberDescriptor {
	return protocol.BlockMemberDescriptor{
		Role:        b.Role(),
		Oid:         b.Oid(),
		ConstantOid: b.constantOid,
		ClassID:     b.ClassID(),
		UserLabel:   b.userLabel,
		Owner:       b.Oid(),
	}
}

func (b *Block) walkMembers(recurse bool, visit func(*blockMember)) {
	for _, m := range b.members {
		visit(m)
		if recurse {
			if child, ok := m.el.(*Block); ok {
				child.walkMembers(true, visit)
			}
		}
	}
}
