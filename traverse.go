package phylo

import (
	"iter"
	"slices"
)

// Subtree pairs a tree with the node a traversal starts from. Its iterator
// methods return restartable sequences: ranging over one twice yields the
// same order both times. Depth-first descent is driven by an explicit
// stack rather than call-stack recursion, so trees whose depth runs into
// the thousands are safe to walk.
type Subtree struct {
	Tree *Tree
	Node NodeID
}

// Preorder yields the subtree's node ids in depth-first pre-order,
// children in insertion order.
func (s Subtree) Preorder() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		stack := []NodeID{s.Node}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			children := s.Tree.Get(cur).Children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Postorder yields the subtree's node ids in depth-first post-order.
func (s Subtree) Postorder() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		type frame struct {
			id       NodeID
			expanded bool
		}
		stack := []frame{{id: s.Node}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.expanded {
				stack = stack[:len(stack)-1]
				if !yield(top.id) {
					return
				}
				continue
			}
			stack[len(stack)-1].expanded = true
			children := s.Tree.Get(top.id).Children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{id: children[i]})
			}
		}
	}
}

// Levelorder yields the subtree's node ids breadth-first.
func (s Subtree) Levelorder() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		queue := []NodeID{s.Node}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			queue = append(queue, s.Tree.Get(cur).Children...)
		}
	}
}

// Preorder returns the materialized pre-order traversal starting at root.
func (t *Tree) Preorder(root NodeID) []NodeID {
	return slices.Collect(Subtree{Tree: t, Node: root}.Preorder())
}

// Postorder returns the materialized post-order traversal starting at
// root.
func (t *Tree) Postorder(root NodeID) []NodeID {
	return slices.Collect(Subtree{Tree: t, Node: root}.Postorder())
}

// Levelorder returns the materialized breadth-first traversal starting at
// root.
func (t *Tree) Levelorder(root NodeID) []NodeID {
	return slices.Collect(Subtree{Tree: t, Node: root}.Levelorder())
}

// Inorder returns the in-order traversal starting at root. It is defined
// only for binary trees; a three-child virtual root is emitted as first
// child, then self, then the remaining children.
func (t *Tree) Inorder(root NodeID) ([]NodeID, error) {
	if !t.IsBinary() {
		return nil, ErrNotBinary
	}
	type frame struct {
		id    NodeID
		ready bool
	}
	var out []NodeID
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		node := t.Get(top.id)
		if !top.ready && !node.IsTip() {
			stack[len(stack)-1].ready = true
			stack = append(stack, frame{id: node.Children[0]})
			continue
		}
		stack = stack[:len(stack)-1]
		out = append(out, top.id)
		if top.ready {
			for i := len(node.Children) - 1; i >= 1; i-- {
				stack = append(stack, frame{id: node.Children[i]})
			}
		}
	}
	return out, nil
}
