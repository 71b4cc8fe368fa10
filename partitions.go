package phylo

import (
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// LeafIndex returns the sorted list of leaf names, computing and caching
// it on first use. Every topology mutation invalidates the cache. It fails
// when any tip is unnamed or a name occurs twice, since name-keyed
// algorithms need an unambiguous mapping from name to ordinal.
func (t *Tree) LeafIndex() ([]string, error) {
	if t.leafIndex != nil {
		return t.leafIndex, nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, id := range t.Leaves() {
		name := t.Get(id).Name
		if name == "" {
			return nil, ErrUnnamedLeaves
		}
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateLeafNames
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	t.leafIndex = names
	return names, nil
}

// Partitions returns the tree's bipartitions: for every internal edge, the
// set of leaf-index ordinals on the child side, canonicalized so the
// encoding is independent of rooting and orientation, mapped to that
// edge's length. The result is cached until the next mutation.
func (t *Tree) Partitions() (map[string]*float64, error) {
	if t.partitions != nil {
		return t.partitions, nil
	}
	index, err := t.LeafIndex()
	if err != nil {
		return nil, err
	}
	root, err := t.Root()
	if err != nil {
		return nil, err
	}
	ordinal := make(map[string]uint, len(index))
	for i, name := range index {
		ordinal[name] = uint(i)
	}

	parts := make(map[string]*float64)
	for id := range (Subtree{Tree: t, Node: root}).Preorder() {
		node := t.Get(id)
		// Pendant edges and the root induce only trivial partitions.
		if node.Parent == nil || node.IsTip() {
			continue
		}
		bits := bitset.New(uint(len(index)))
		for _, leaf := range t.SubtreeLeaves(id) {
			bits.Set(ordinal[t.Get(leaf).Name])
		}
		key := canonicalPartition(bits, uint(len(index)))
		if _, ok := parts[key]; !ok {
			parts[key] = node.ParentEdge
		}
	}
	t.partitions = parts
	return parts, nil
}

// canonicalPartition renders the numerically smaller of the set and its
// complement as a fixed-width bit string, ordinal 0 first. Both sides of
// an edge then map to the same key regardless of which tree orientation
// produced them.
func canonicalPartition(bits *bitset.BitSet, n uint) string {
	complement := bits.Clone()
	complement.FlipRange(0, n)
	if lessBits(complement, bits, n) {
		bits = complement
	}
	buf := make([]byte, n)
	for i := uint(0); i < n; i++ {
		if bits.Test(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// lessBits compares two n-bit sets as unsigned integers with ordinal n-1
// as the most significant bit.
func lessBits(a, b *bitset.BitSet, n uint) bool {
	for i := n; i > 0; i-- {
		ab, bb := a.Test(i-1), b.Test(i-1)
		if ab != bb {
			return bb
		}
	}
	return false
}

// RobinsonFoulds returns the Robinson-Foulds distance between two trees:
// the number of bipartitions present in exactly one of them. Both trees
// must cover the same set of leaf names.
func (t *Tree) RobinsonFoulds(other *Tree) (int, error) {
	p1, p2, err := t.comparablePartitions(other)
	if err != nil {
		return 0, err
	}
	common := 0
	for key := range p1 {
		if _, ok := p2[key]; ok {
			common++
		}
	}
	return len(p1) + len(p2) - 2*common, nil
}

// WeightedRobinsonFoulds returns the branch-length-aware Robinson-Foulds
// distance: the sum over the union of bipartitions of the absolute length
// difference, with a missing side counted as zero length. Every partition
// edge involved must carry a length.
func (t *Tree) WeightedRobinsonFoulds(other *Tree) (float64, error) {
	p1, p2, err := t.comparablePartitions(other)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for key, e1 := range p1 {
		if e1 == nil {
			return 0, ErrMissingBranchLengths
		}
		if e2, ok := p2[key]; ok {
			if e2 == nil {
				return 0, ErrMissingBranchLengths
			}
			total += math.Abs(*e1 - *e2)
		} else {
			total += *e1
		}
	}
	for key, e2 := range p2 {
		if _, ok := p1[key]; ok {
			continue
		}
		if e2 == nil {
			return 0, ErrMissingBranchLengths
		}
		total += *e2
	}
	return total, nil
}

// KhunerFelsenstein returns the Khuner-Felsenstein branch score distance:
// the square root of the sum, over the union of bipartitions, of the
// squared length difference, with a missing side counted as zero length.
// Every partition edge involved must carry a length.
func (t *Tree) KhunerFelsenstein(other *Tree) (float64, error) {
	p1, p2, err := t.comparablePartitions(other)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for key, e1 := range p1 {
		if e1 == nil {
			return 0, ErrMissingBranchLengths
		}
		d := *e1
		if e2, ok := p2[key]; ok {
			if e2 == nil {
				return 0, ErrMissingBranchLengths
			}
			d -= *e2
		}
		total += d * d
	}
	for key, e2 := range p2 {
		if _, ok := p1[key]; ok {
			continue
		}
		if e2 == nil {
			return 0, ErrMissingBranchLengths
		}
		total += *e2 * *e2
	}
	return math.Sqrt(total), nil
}

func (t *Tree) comparablePartitions(other *Tree) (map[string]*float64, map[string]*float64, error) {
	i1, err := t.LeafIndex()
	if err != nil {
		return nil, nil, err
	}
	i2, err := other.LeafIndex()
	if err != nil {
		return nil, nil, err
	}
	if !slices.Equal(i1, i2) {
		return nil, nil, ErrDifferentTipSets
	}
	p1, err := t.Partitions()
	if err != nil {
		return nil, nil, err
	}
	p2, err := other.Partitions()
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}
