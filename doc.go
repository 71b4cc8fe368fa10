// Package phylo implements an arena-backed phylogenetic tree together with
// a Newick codec and the usual topological statistics (height, diameter,
// Colless, Sackin, Robinson-Foulds).
//
// The tree is stored as a growable slice of nodes addressed by stable
// integer ids, so parent/child links are plain indices and no ownership
// cycles exist. Pruned nodes are tombstoned rather than removed, which
// keeps every id ever handed out valid for the lifetime of the tree.
package phylo
