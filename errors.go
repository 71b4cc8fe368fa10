package phylo

import (
	"errors"
	"fmt"
)

// Structural errors, reported by queries on an already built tree.
var (
	ErrNotBinary            = errors.New("tree is not binary")
	ErrNotRooted            = errors.New("tree is not rooted")
	ErrEmptyTree            = errors.New("tree is empty")
	ErrUnnamedLeaves        = errors.New("all leaf nodes must be named")
	ErrDuplicateLeafNames   = errors.New("leaf names must be unique")
	ErrMissingBranchLengths = errors.New("tree must have all branch lengths")
	ErrDifferentTipSets     = errors.New("trees have different tip sets")
	ErrRootNotFound         = errors.New("no root node found")
)

// Parse errors, reported while decoding Newick text.
var (
	ErrWhitespaceInNumber = errors.New("whitespace in number field")
	ErrUnclosedBracket    = errors.New("missing a closing bracket")
	ErrNoClosingSemicolon = errors.New("missing terminal semicolon")
	ErrNoSubtreeParent    = errors.New("parent of subtree not found")
)

// NodeNotFoundError reports an id that does not address any node in the
// arena.
type NodeNotFoundError struct {
	ID NodeID
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("no node with id %d", e.ID)
}
