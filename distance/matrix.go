// Package distance assembles pairwise phylogenetic distance matrices from
// trees. A matrix is keyed by taxon (leaf) name and symmetric by
// construction.
package distance

import (
	"fmt"

	"github.com/treebio/phylo"
)

// Matrix is an in-memory pairwise distance matrix over a tree's taxa.
type Matrix struct {
	taxa  []string
	index map[string]int
	dists [][]float64
}

// Build assembles the full pairwise matrix for a tree by enumerating all
// unordered leaf pairs through Tree.Distance. For a tree without any
// branch lengths the distances are edge counts; a tree that carries
// lengths must carry them on every edge between two leaves, otherwise
// Build fails with phylo.ErrMissingBranchLengths.
func Build(t *phylo.Tree) (*Matrix, error) {
	taxa, err := t.LeafIndex()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]phylo.NodeID, len(taxa))
	for _, id := range t.Leaves() {
		byName[t.Get(id).Name] = id
	}

	root, err := t.Root()
	if err != nil {
		return nil, err
	}
	hasLengths := false
	for id := range (phylo.Subtree{Tree: t, Node: root}).Preorder() {
		if t.Get(id).ParentEdge != nil {
			hasLengths = true
			break
		}
	}

	m := &Matrix{
		taxa:  taxa,
		index: make(map[string]int, len(taxa)),
		dists: make([][]float64, len(taxa)),
	}
	for i, name := range taxa {
		m.index[name] = i
		m.dists[i] = make([]float64, len(taxa))
	}

	for i := 0; i < len(taxa); i++ {
		for j := i + 1; j < len(taxa); j++ {
			sum, edges := t.Distance(byName[taxa[i]], byName[taxa[j]])
			d := float64(edges)
			switch {
			case sum != nil:
				d = *sum
			case hasLengths:
				return nil, phylo.ErrMissingBranchLengths
			}
			m.dists[i][j] = d
			m.dists[j][i] = d
		}
	}
	return m, nil
}

// Taxa returns the matrix's taxa in index order (sorted by name).
func (m *Matrix) Taxa() []string { return m.taxa }

// Size returns the number of taxa.
func (m *Matrix) Size() int { return len(m.taxa) }

// Get returns the distance between two taxa by name.
func (m *Matrix) Get(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("unknown taxon %q", a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("unknown taxon %q", b)
	}
	return m.dists[i][j], nil
}
