package phylo

import "strings"

// NodeID is a stable index into a Tree's node arena. Ids are assigned at
// insertion time and are never reassigned or recycled, even after the node
// has been pruned.
type NodeID int

// Node is a single tree vertex. Nodes are created detached, with NewNode or
// NewNamedNode, and wired into a Tree through Tree.Add or Tree.AddChild;
// the tree performs all relationship bookkeeping.
type Node struct {
	// ID equals the node's position in the arena once attached.
	ID NodeID
	// Name is empty for unnamed internal nodes.
	Name string
	// Comment holds free text captured from a bracketed Newick comment.
	Comment string
	// Parent is nil only for the root.
	Parent *NodeID
	// ParentEdge is the length of the edge to the parent, nil when the
	// tree carries no length for it.
	ParentEdge *float64
	// Children holds child ids in insertion order. Traversals and the
	// Newick serializer always follow this order.
	Children []NodeID
	// Depth is the number of edges between this node and the root.
	Depth int

	// childEdges mirrors each child's ParentEdge on the parent side,
	// parallel to Children.
	childEdges []*float64

	deleted bool
}

// NewNode returns an empty detached node.
func NewNode() *Node { return &Node{} }

// NewNamedNode returns a detached node carrying a name.
func NewNamedNode(name string) *Node { return &Node{Name: name} }

// IsTip reports whether the node has no children.
func (n *Node) IsTip() bool { return len(n.Children) == 0 }

// Deleted reports whether the node has been tombstoned by Prune or
// Compress. Tombstoned nodes keep their arena slot but are no longer part
// of the logical tree.
func (n *Node) Deleted() bool { return n.deleted }

// SetParent sets the parent id and the length of the connecting edge.
func (n *Node) SetParent(parent NodeID, edge *float64) {
	p := parent
	n.Parent = &p
	n.ParentEdge = edge
}

// SetDepth records the node's distance in edges from the root.
func (n *Node) SetDepth(depth int) { n.Depth = depth }

// AddChild appends a child id and records the mirrored edge length.
func (n *Node) AddChild(child NodeID, edge *float64) {
	n.Children = append(n.Children, child)
	n.childEdges = append(n.childEdges, edge)
}

// ChildEdge returns the mirrored edge length recorded for child, or nil
// when the child is unknown or carries no length.
func (n *Node) ChildEdge(child NodeID) *float64 {
	for i, c := range n.Children {
		if c == child {
			return n.childEdges[i]
		}
	}
	return nil
}

// SetChildEdge overwrites the mirrored edge length recorded for child.
func (n *Node) SetChildEdge(child NodeID, edge *float64) {
	for i, c := range n.Children {
		if c == child {
			n.childEdges[i] = edge
			return
		}
	}
}

// RescaleEdges multiplies the parent edge and every mirrored child edge by
// factor.
func (n *Node) RescaleEdges(factor float64) {
	if n.ParentEdge != nil {
		v := *n.ParentEdge * factor
		n.ParentEdge = &v
	}
	for i, e := range n.childEdges {
		if e != nil {
			v := *e * factor
			n.childEdges[i] = &v
		}
	}
}

// label renders the node's Newick label: name, bracketed comment, then the
// branch length.
func (n *Node) label() string {
	var sb strings.Builder
	sb.WriteString(n.Name)
	if n.Comment != "" {
		sb.WriteByte('[')
		sb.WriteString(n.Comment)
		sb.WriteByte(']')
	}
	if n.ParentEdge != nil {
		sb.WriteByte(':')
		sb.WriteString(formatLength(*n.ParentEdge))
	}
	return sb.String()
}

// markDeleted tombstones the node. The arena slot is kept so ids held
// elsewhere stay valid pointers-by-index.
func (n *Node) markDeleted() {
	n.deleted = true
	n.Parent = nil
	n.ParentEdge = nil
	n.Children = nil
	n.childEdges = nil
}

// removeChild drops a child id, and its mirrored edge, from the ordered
// child list.
func (n *Node) removeChild(child NodeID) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			n.childEdges = append(n.childEdges[:i], n.childEdges[i+1:]...)
			return
		}
	}
}
