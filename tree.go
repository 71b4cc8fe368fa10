package phylo

// Tree is an arena-backed phylogenetic tree. All nodes live in a growable
// slice and are addressed by their stable NodeID; parent and child links
// are indices into that slice.
//
// A tree is exclusively owned by a single caller: concurrent mutation is
// not supported. Read-only queries may be shared between goroutines only
// if the lazily derived caches have been populated first (see LeafIndex
// and Partitions).
type Tree struct {
	nodes []*Node

	// Lazily computed, invalidated by every mutation.
	leafIndex  []string
	partitions map[string]*float64
}

// New returns an empty tree.
func New() *Tree { return &Tree{} }

// Add appends a detached node to the arena, assigns the next free id and
// returns it. Add always succeeds.
func (t *Tree) Add(node *Node) NodeID {
	id := NodeID(len(t.nodes))
	node.ID = id
	t.nodes = append(t.nodes, node)
	t.invalidateCaches()
	return id
}

// AddChild attaches node under parent with an optional edge length. The
// child's depth is derived from the parent and the edge length is mirrored
// into the parent's per-child registry within the same call.
func (t *Tree) AddChild(node *Node, parent NodeID, edge *float64) (NodeID, error) {
	if parent < 0 || int(parent) >= len(t.nodes) {
		return 0, NodeNotFoundError{ID: parent}
	}
	node.SetParent(parent, edge)
	node.SetDepth(t.Get(parent).Depth + 1)
	id := t.Add(node)
	t.Get(parent).AddChild(id, edge)
	return id, nil
}

// Get returns the node with the given id. Ids handed out by the tree are
// always in range; anything else panics like any slice index.
func (t *Tree) Get(id NodeID) *Node { return t.nodes[id] }

// GetByName returns the first live node whose name equals name, or nil.
func (t *Tree) GetByName(name string) *Node {
	for _, node := range t.nodes {
		if !node.deleted && node.Name != "" && node.Name == name {
			return node
		}
	}
	return nil
}

// Root returns the unique parentless node. For unrooted trees this is the
// virtual root carrying three or more children.
func (t *Tree) Root() (NodeID, error) {
	for _, node := range t.nodes {
		if !node.deleted && node.Parent == nil {
			return node.ID, nil
		}
	}
	return 0, ErrRootNotFound
}

// Leaves returns the ids of all live tip nodes in arena order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	for _, node := range t.nodes {
		if !node.deleted && node.IsTip() {
			leaves = append(leaves, node.ID)
		}
	}
	return leaves
}

// LeafNames returns the names of all live tips in arena order. Unnamed
// tips contribute empty strings.
func (t *Tree) LeafNames() []string {
	leaves := t.Leaves()
	names := make([]string, len(leaves))
	for i, id := range leaves {
		names[i] = t.Get(id).Name
	}
	return names
}

// SubtreeLeaves returns the tip ids under id in depth-first child order.
func (t *Tree) SubtreeLeaves(id NodeID) []NodeID {
	var leaves []NodeID
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.Get(cur)
		if node.IsTip() {
			leaves = append(leaves, cur)
			continue
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return leaves
}

// Size returns the number of arena slots, tombstones included.
func (t *Tree) Size() int { return len(t.nodes) }

// NumLeaves returns the number of live tips.
func (t *Tree) NumLeaves() int { return len(t.Leaves()) }

// Prune detaches the subtree rooted at id and tombstones every node in it,
// children first. Arena slots are retained, so ids held elsewhere in the
// tree stay valid.
func (t *Tree) Prune(id NodeID) {
	var order []NodeID
	for n := range (Subtree{Tree: t, Node: id}).Postorder() {
		order = append(order, n)
	}
	if p := t.Get(id).Parent; p != nil {
		t.Get(*p).removeChild(id)
	}
	for _, n := range order {
		t.Get(n).markDeleted()
	}
	t.invalidateCaches()
}

// Rescale multiplies every edge length in the tree by factor. Topology is
// untouched.
func (t *Tree) Rescale(factor float64) {
	for _, node := range t.nodes {
		if !node.deleted {
			node.RescaleEdges(factor)
		}
	}
	// Partitions map edges to lengths, so they are stale now too.
	t.invalidateCaches()
}

// Compress contracts degree-1 internal nodes: a node with exactly one
// parent and exactly one child is replaced by fusing its parent edge with
// its child edge (summed if both are defined, undefined otherwise) and
// re-parenting the child directly under the node's parent. This repeats
// until no such node remains.
func (t *Tree) Compress() {
	for {
		var target *Node
		for _, node := range t.nodes {
			if node.deleted || node.Parent == nil || len(node.Children) != 1 {
				continue
			}
			target = node
			break
		}
		if target == nil {
			break
		}

		parent := *target.Parent
		child := target.Children[0]
		var fused *float64
		if target.ParentEdge != nil && t.Get(child).ParentEdge != nil {
			v := *target.ParentEdge + *t.Get(child).ParentEdge
			fused = &v
		}

		// Splice the child into the parent's list at the target's slot
		// so sibling order is preserved.
		p := t.Get(parent)
		for i, c := range p.Children {
			if c == target.ID {
				p.Children[i] = child
				p.childEdges[i] = fused
				break
			}
		}
		t.Get(child).SetParent(parent, fused)
		for id := range (Subtree{Tree: t, Node: child}).Preorder() {
			t.Get(id).Depth--
		}
		target.markDeleted()
	}
	t.invalidateCaches()
}

func (t *Tree) invalidateCaches() {
	t.leafIndex = nil
	t.partitions = nil
}
