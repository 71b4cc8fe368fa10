package phylo

import "math"

// math.Ln2 exists but there is no exported Euler-Mascheroni constant.
const eulerGamma = 0.5772156649015329

// IsBinary reports whether every node has at most two children. A
// parentless virtual root may carry up to three, which is how unrooted
// binary trees are represented.
func (t *Tree) IsBinary() bool {
	for _, node := range t.nodes {
		if node.deleted {
			continue
		}
		if node.Parent == nil {
			if len(node.Children) > 3 {
				return false
			}
			continue
		}
		if len(node.Children) > 2 {
			return false
		}
	}
	return true
}

// IsRooted reports whether the root exists and has exactly two children.
func (t *Tree) IsRooted() (bool, error) {
	root, err := t.Root()
	if err != nil {
		return false, err
	}
	return len(t.Get(root).Children) == 2, nil
}

// Height returns the maximum root-to-leaf distance: the sum of edge
// lengths when every edge on the path has one, the edge count otherwise.
func (t *Tree) Height() (float64, error) {
	root, err := t.Root()
	if err != nil {
		return 0, err
	}
	var best float64
	for _, leaf := range t.Leaves() {
		sum, edges := t.Distance(root, leaf)
		d := float64(edges)
		if sum != nil {
			d = *sum
		}
		if d > best {
			best = d
		}
	}
	return best, nil
}

// Diameter returns the maximum leaf-to-leaf distance. Pair enumeration is
// quadratic in the number of leaves, which is fine at the intended scale
// but not asymptotically optimal.
func (t *Tree) Diameter() (float64, error) {
	if len(t.nodes) == 0 {
		return 0, ErrEmptyTree
	}
	leaves := t.Leaves()
	var best float64
	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			sum, edges := t.Distance(leaves[i], leaves[j])
			d := float64(edges)
			if sum != nil {
				d = *sum
			}
			if d > best {
				best = d
			}
		}
	}
	return best, nil
}

func (t *Tree) checkRootedBinary() error {
	rooted, err := t.IsRooted()
	if err != nil {
		return err
	}
	if !rooted {
		return ErrNotRooted
	}
	if !t.IsBinary() {
		return ErrNotBinary
	}
	return nil
}

// Cherries counts the internal nodes whose two children are both tips.
func (t *Tree) Cherries() (int, error) {
	if err := t.checkRootedBinary(); err != nil {
		return 0, err
	}
	n := 0
	for _, node := range t.nodes {
		if node.deleted || len(node.Children) != 2 {
			continue
		}
		if t.Get(node.Children[0]).IsTip() && t.Get(node.Children[1]).IsTip() {
			n++
		}
	}
	return n, nil
}

// Colless computes the Colless imbalance index: the sum over internal
// nodes of the absolute difference between the leaf counts of the left and
// right subtrees.
func (t *Tree) Colless() (int, error) {
	if err := t.checkRootedBinary(); err != nil {
		return 0, err
	}
	colless := 0
	for _, node := range t.nodes {
		if node.deleted || node.IsTip() {
			continue
		}
		left := len(t.SubtreeLeaves(node.Children[0]))
		right := 0
		if len(node.Children) > 1 {
			right = len(t.SubtreeLeaves(node.Children[1]))
		}
		if left > right {
			colless += left - right
		} else {
			colless += right - left
		}
	}
	return colless, nil
}

// CollessYule normalizes the Colless index against its expectation under
// the Yule null model.
func (t *Tree) CollessYule() (float64, error) {
	ic, err := t.Colless()
	if err != nil {
		return 0, err
	}
	n := float64(t.NumLeaves())
	expected := n*math.Log(n) + (eulerGamma-1-math.Ln2)*n
	return (float64(ic) - expected) / n, nil
}

// CollessPDA normalizes the Colless index against the PDA null model.
func (t *Tree) CollessPDA() (float64, error) {
	ic, err := t.Colless()
	if err != nil {
		return 0, err
	}
	n := float64(t.NumLeaves())
	return float64(ic) / math.Pow(n, 1.5), nil
}

// Sackin computes the Sackin index: the sum of the depths of all leaves.
// Smaller values mean a more balanced tree.
func (t *Tree) Sackin() (int, error) {
	if err := t.checkRootedBinary(); err != nil {
		return 0, err
	}
	sum := 0
	for _, leaf := range t.Leaves() {
		sum += t.Get(leaf).Depth
	}
	return sum, nil
}

// SackinYule normalizes the Sackin index against its expectation under the
// Yule null model.
func (t *Tree) SackinYule() (float64, error) {
	is, err := t.Sackin()
	if err != nil {
		return 0, err
	}
	n := t.NumLeaves()
	harmonic := 0.0
	for j := 2; j <= n; j++ {
		harmonic += 1.0 / float64(j)
	}
	return (float64(is) - 2*float64(n)*harmonic) / float64(n), nil
}

// SackinPDA normalizes the Sackin index against the PDA null model.
func (t *Tree) SackinPDA() (float64, error) {
	is, err := t.Sackin()
	if err != nil {
		return 0, err
	}
	n := float64(t.NumLeaves())
	return float64(is) / math.Pow(n, 1.5), nil
}
