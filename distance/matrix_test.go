package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treebio/phylo"
	"github.com/treebio/phylo/distance"
)

func TestBuild(t *testing.T) {
	tree, err := phylo.FromNewick("((A:0.1,B:0.2)F:0.6,(C:0.3,D:0.4)E:0.5)G;")
	require.NoError(t, err)

	m, err := distance.Build(tree)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Taxa())
	assert.Equal(t, 4, m.Size())

	// Pairwise distances computed with ete3.
	cases := []struct {
		a, b string
		dist float64
	}{
		{"A", "B", 0.30000000000000004},
		{"A", "C", 1.5},
		{"A", "D", 1.6},
		{"B", "C", 1.6},
		{"B", "D", 1.7000000000000002},
		{"C", "D", 0.7},
	}
	for _, c := range cases {
		d, err := m.Get(c.a, c.b)
		require.NoError(t, err)
		assert.InDelta(t, c.dist, d, 1e-15, "%s-%s", c.a, c.b)

		// Symmetric by construction.
		r, err := m.Get(c.b, c.a)
		require.NoError(t, err)
		assert.Equal(t, d, r)
	}

	for _, taxon := range m.Taxa() {
		d, err := m.Get(taxon, taxon)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestBuildTopologyOnly(t *testing.T) {
	tree, err := phylo.FromNewick("((A,B),(C,D));")
	require.NoError(t, err)

	m, err := distance.Build(tree)
	require.NoError(t, err)

	// Without branch lengths the distances are edge counts.
	d, err := m.Get("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	d, err = m.Get("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

func TestBuildMixedLengths(t *testing.T) {
	tree, err := phylo.FromNewick("((A:0.1,B)X:0.6,(C:0.3,D:0.4)Y:0.5)G;")
	require.NoError(t, err)

	_, err = distance.Build(tree)
	assert.ErrorIs(t, err, phylo.ErrMissingBranchLengths)
}

func TestBuildLengthsOffAllPaths(t *testing.T) {
	// The only length sits on the root edge, off every leaf-to-leaf
	// path. The tree still counts as weighted, so no edge-count
	// fallback applies.
	tree, err := phylo.FromNewick("(A,B):50;")
	require.NoError(t, err)

	_, err = distance.Build(tree)
	assert.ErrorIs(t, err, phylo.ErrMissingBranchLengths)
}

func TestBuildUnnamedLeaves(t *testing.T) {
	tree, err := phylo.FromNewick("(,,(,));")
	require.NoError(t, err)

	_, err = distance.Build(tree)
	assert.ErrorIs(t, err, phylo.ErrUnnamedLeaves)
}

func TestGetUnknownTaxon(t *testing.T) {
	tree, err := phylo.FromNewick("((A:0.1,B:0.2)F:0.6,(C:0.3,D:0.4)E:0.5)G;")
	require.NoError(t, err)

	m, err := distance.Build(tree)
	require.NoError(t, err)

	_, err = m.Get("Z", "A")
	assert.ErrorContains(t, err, "unknown taxon")
}
