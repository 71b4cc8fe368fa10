package phylo_test

import (
	"math/rand"
	"testing"

	"github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treebio/phylo"
	"github.com/treebio/phylo/gen"
)

type fuzzShape struct {
	Seed    int64
	NLeaves int
	Brlens  bool
}

func makeShapeFuzzer(minLeaves, maxLeaves int) *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(
		func(s *fuzzShape, c fuzz.Continue) {
			s.Seed = c.Int63()
			s.NLeaves = minLeaves + c.Intn(maxLeaves-minLeaves+1)
			s.Brlens = c.RandBool()
		},
	)
}

func TestFuzzRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzRoundTrip skipped in short mode.")
	}
	fuzzer := makeShapeFuzzer(2, 100)
	for i := 0; i < 50; i++ {
		var shape fuzzShape
		fuzzer.Fuzz(&shape)

		tree, err := gen.Uniform(rand.New(rand.NewSource(shape.Seed)), shape.NLeaves, shape.Brlens)
		require.NoError(t, err)
		require.Equal(t, shape.NLeaves, tree.NumLeaves())

		newick, err := tree.ToNewick()
		require.NoError(t, err)
		parsed, err := phylo.FromNewick(newick)
		require.NoError(t, err)

		reserialized, err := parsed.ToNewick()
		require.NoError(t, err)
		assert.Equal(t, newick, reserialized)
		assert.Equal(t, tree.NumLeaves(), parsed.NumLeaves())
		// Arena order differs between a built tree and its reparse, so
		// compare the tip sets rather than the sequences.
		assert.ElementsMatch(t, tree.LeafNames(), parsed.LeafNames())
	}
}

func TestFuzzGeneratedTreesAreRootedBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzGeneratedTreesAreRootedBinary skipped in short mode.")
	}
	generators := map[string]func(*rand.Rand, int, bool) (*phylo.Tree, error){
		"uniform":     gen.Uniform,
		"yule":        gen.Yule,
		"caterpillar": gen.Caterpillar,
	}
	fuzzer := makeShapeFuzzer(2, 64)
	for i := 0; i < 30; i++ {
		var shape fuzzShape
		fuzzer.Fuzz(&shape)

		for name, generate := range generators {
			tree, err := generate(rand.New(rand.NewSource(shape.Seed)), shape.NLeaves, shape.Brlens)
			require.NoError(t, err, name)
			assert.True(t, tree.IsBinary(), name)
			rooted, err := tree.IsRooted()
			require.NoError(t, err, name)
			assert.True(t, rooted, name)
		}
	}
}

func TestFuzzSelfDistanceIsZero(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzSelfDistanceIsZero skipped in short mode.")
	}
	fuzzer := makeShapeFuzzer(4, 50)
	for i := 0; i < 20; i++ {
		var shape fuzzShape
		fuzzer.Fuzz(&shape)

		tree, err := gen.Yule(rand.New(rand.NewSource(shape.Seed)), shape.NLeaves, shape.Brlens)
		require.NoError(t, err)

		rf, err := tree.RobinsonFoulds(tree)
		require.NoError(t, err)
		assert.Zero(t, rf)

		wrf, err := tree.WeightedRobinsonFoulds(tree)
		if !shape.Brlens {
			assert.ErrorIs(t, err, phylo.ErrMissingBranchLengths)
			continue
		}
		require.NoError(t, err)
		assert.Zero(t, wrf)
	}
}

func TestFuzzRescaleScalesDistances(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzRescaleScalesDistances skipped in short mode.")
	}
	fuzzer := makeShapeFuzzer(4, 40)
	for i := 0; i < 20; i++ {
		var shape fuzzShape
		fuzzer.Fuzz(&shape)

		tree, err := gen.Uniform(rand.New(rand.NewSource(shape.Seed)), shape.NLeaves, true)
		require.NoError(t, err)
		scaled, err := gen.Uniform(rand.New(rand.NewSource(shape.Seed)), shape.NLeaves, true)
		require.NoError(t, err)

		const factor = 2.5
		scaled.Rescale(factor)

		leaves := tree.Leaves()
		for j := 1; j < len(leaves); j++ {
			want, _ := tree.Distance(leaves[0], leaves[j])
			got, _ := scaled.Distance(leaves[0], leaves[j])
			require.NotNil(t, want)
			require.NotNil(t, got)
			assert.InDelta(t, *want*factor, *got, 1e-9)
		}
	}
}
