package phylo

import "slices"

// PathFromRoot returns the ids on the path from the root down to id, root
// first.
func (t *Tree) PathFromRoot(id NodeID) []NodeID {
	var path []NodeID
	cur := id
	for {
		path = append(path, cur)
		p := t.Get(cur).Parent
		if p == nil {
			break
		}
		cur = *p
	}
	slices.Reverse(path)
	return path
}

// divergence returns the first index at which the two root paths differ.
// When one path is a prefix of the other, that is the shorter length.
func divergence(a, b []NodeID) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// CommonAncestor returns the most recent common ancestor of a and b.
func (t *Tree) CommonAncestor(a, b NodeID) NodeID {
	if a == b {
		return a
	}
	pa := t.PathFromRoot(a)
	pb := t.PathFromRoot(b)
	return pa[divergence(pa, pb)-1]
}

// Distance returns the distance between two nodes as the sum of branch
// lengths, when every edge on the path carries one, together with the
// number of edges on the path. The sum is nil when any traversed edge has
// no length, and for a == b the result is (nil, 0).
func (t *Tree) Distance(a, b NodeID) (*float64, int) {
	if a == b {
		return nil, 0
	}
	// Float summation is order-sensitive, so fix the accumulation order
	// by id to keep Distance(a, b) bit-identical to Distance(b, a).
	if a > b {
		a, b = b, a
	}
	pa := t.PathFromRoot(a)
	pb := t.PathFromRoot(b)
	cut := divergence(pa, pb)

	sum := 0.0
	edges := 0
	all := true
	for _, path := range [][]NodeID{pa, pb} {
		for _, id := range path[cut:] {
			if e := t.Get(id).ParentEdge; e != nil {
				sum += *e
			} else {
				all = false
			}
			edges++
		}
	}
	if !all {
		return nil, edges
	}
	return &sum, edges
}
