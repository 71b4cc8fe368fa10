package phylo

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Render returns an ASCII drawing of the tree, one branch per line.
// Unnamed nodes are labeled with their id; branch lengths are appended
// where present.
func (t *Tree) Render() (string, error) {
	root, err := t.Root()
	if err != nil {
		return "", err
	}
	tp := treeprint.NewWithRoot(t.renderLabel(root))
	t.renderChildren(tp, root)
	return tp.String(), nil
}

func (t *Tree) renderChildren(branch treeprint.Tree, id NodeID) {
	for _, child := range t.Get(id).Children {
		t.renderChildren(branch.AddBranch(t.renderLabel(child)), child)
	}
}

func (t *Tree) renderLabel(id NodeID) string {
	node := t.Get(id)
	label := node.Name
	if label == "" {
		label = fmt.Sprintf("#%d", id)
	}
	if node.ParentEdge != nil {
		label += ":" + formatLength(*node.ParentEdge)
	}
	return label
}
