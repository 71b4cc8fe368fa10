// Package gen builds random phylogenetic trees. Every generator works
// purely through the public phylo mutation API and is deterministic for a
// given *rand.Rand.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/treebio/phylo"
)

// Uniform generates a random binary tree with nLeaves tips by repeatedly
// splitting a leaf drawn from either end of a candidate deque. Tips are
// named Tip_0 .. Tip_{n-1}. When brlens is set, every edge gets a length
// drawn uniformly from [0, 1).
func Uniform(rng *rand.Rand, nLeaves int, brlens bool) (*phylo.Tree, error) {
	if nLeaves < 1 {
		return nil, fmt.Errorf("cannot generate a tree with %d leaves", nLeaves)
	}
	t := phylo.New()
	root := t.Add(phylo.NewNode())

	deque := []phylo.NodeID{root}
	for i := 0; i < nLeaves-1; i++ {
		var parent phylo.NodeID
		if rng.Float64() < 0.5 {
			parent, deque = deque[0], deque[1:]
		} else {
			parent, deque = deque[len(deque)-1], deque[:len(deque)-1]
		}
		for j := 0; j < 2; j++ {
			id, err := t.AddChild(phylo.NewNode(), parent, edge(rng, brlens))
			if err != nil {
				return nil, err
			}
			deque = append(deque, id)
		}
	}

	for i, id := range deque {
		t.Get(id).Name = fmt.Sprintf("Tip_%d", i)
	}
	return t, nil
}

// Yule generates a random binary tree under the Yule model: at every step
// a uniformly chosen leaf speciates into two children.
func Yule(rng *rand.Rand, nLeaves int, brlens bool) (*phylo.Tree, error) {
	if nLeaves < 1 {
		return nil, fmt.Errorf("cannot generate a tree with %d leaves", nLeaves)
	}
	t := phylo.New()
	root := t.Add(phylo.NewNode())

	candidates := []phylo.NodeID{root}
	for t.NumLeaves() < nLeaves {
		i := rng.Intn(len(candidates))
		parent := candidates[i]
		for j := 0; j < 2; j++ {
			id, err := t.AddChild(phylo.NewNode(), parent, edge(rng, brlens))
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, id)
		}
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	for i, id := range t.Leaves() {
		t.Get(id).Name = fmt.Sprintf("Tip_%d", i)
	}
	return t, nil
}

// Caterpillar generates a maximally imbalanced tree: each internal node
// has one tip child and one internal child, except the last which has two
// tips.
func Caterpillar(rng *rand.Rand, nLeaves int, brlens bool) (*phylo.Tree, error) {
	if nLeaves < 2 {
		return nil, fmt.Errorf("cannot generate a caterpillar with %d leaves", nLeaves)
	}
	t := phylo.New()
	parent := t.Add(phylo.NewNode())

	for i := 1; i < nLeaves; i++ {
		prev := parent
		if i == nLeaves-1 {
			for j := 0; j < 2; j++ {
				name := fmt.Sprintf("Tip_%d", i+j)
				if _, err := t.AddChild(phylo.NewNamedNode(name), parent, edge(rng, brlens)); err != nil {
					return nil, err
				}
			}
			continue
		}
		id, err := t.AddChild(phylo.NewNode(), parent, edge(rng, brlens))
		if err != nil {
			return nil, err
		}
		parent = id
		name := fmt.Sprintf("Tip_%d", i)
		if _, err := t.AddChild(phylo.NewNamedNode(name), prev, edge(rng, brlens)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func edge(rng *rand.Rand, brlens bool) *float64 {
	if !brlens {
		return nil
	}
	v := rng.Float64()
	return &v
}
