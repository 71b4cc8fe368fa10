package phylo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Parsing mode for the label fields of the node currently being read.
type parseField int

const (
	fieldName parseField = iota
	fieldLength
	fieldComment
)

// FromNewick builds a tree from a Newick formatted string. The parser is a
// single left-to-right character scan; any string it accepts is
// serialized back byte-identically by ToNewick.
func FromNewick(text string) (*Tree, error) {
	t := New()

	parsing := fieldName
	var name, length, comment []rune
	var current *NodeID
	var parents []NodeID
	open := 0
	withinQuotes := false

	// settle assigns the accumulated label fields to the node currently
	// in progress, creating it as a fresh child of the innermost open
	// subtree when none is.
	settle := func() error {
		var node *Node
		if current != nil {
			node = t.Get(*current)
		} else {
			if len(parents) == 0 {
				return ErrNoSubtreeParent
			}
			id, err := t.AddChild(NewNode(), parents[len(parents)-1], nil)
			if err != nil {
				return err
			}
			node = t.Get(id)
		}

		if len(name) > 0 {
			node.Name = string(name)
		}
		if len(length) > 0 {
			v, err := strconv.ParseFloat(string(length), 64)
			if err != nil {
				return fmt.Errorf("parsing branch length: %w", err)
			}
			if node.Parent != nil {
				node.SetParent(*node.Parent, &v)
			} else {
				node.ParentEdge = &v
			}
		}
		node.Comment = string(comment)

		name, length, comment = name[:0], length[:0], comment[:0]
		parsing = fieldName
		return nil
	}

	for _, c := range text {
		// Quoted names and comments swallow structural characters.
		if withinQuotes && parsing == fieldName && c != '"' {
			name = append(name, c)
			continue
		}
		if parsing == fieldComment && c != ']' {
			comment = append(comment, c)
			continue
		}

		switch c {
		case '"':
			withinQuotes = !withinQuotes
			if parsing == fieldName {
				name = append(name, c)
			}
		case '[':
			parsing = fieldComment
		case ']':
			parsing = fieldName
		case '(':
			if len(parents) == 0 {
				parents = append(parents, t.Add(NewNode()))
			} else {
				id, err := t.AddChild(NewNode(), parents[len(parents)-1], nil)
				if err != nil {
					return nil, fmt.Errorf("building tree: %w", err)
				}
				parents = append(parents, id)
			}
			open++
		case ':':
			parsing = fieldLength
		case ',':
			if err := settle(); err != nil {
				return nil, err
			}
			current = nil
		case ')':
			if err := settle(); err != nil {
				return nil, err
			}
			if len(parents) == 0 {
				return nil, ErrNoSubtreeParent
			}
			top := parents[len(parents)-1]
			parents = parents[:len(parents)-1]
			current = &top
			open--
		case ';':
			if open != 0 {
				return nil, ErrUnclosedBracket
			}
			if current == nil {
				id := t.Add(NewNode())
				current = &id
			}
			if err := settle(); err != nil {
				return nil, err
			}
			// An edge is written to a child before its parent's label
			// has been read, so mirror all parent edges in one
			// finishing pass.
			for _, node := range t.nodes {
				if node.ParentEdge != nil && node.Parent != nil {
					t.Get(*node.Parent).SetChildEdge(node.ID, node.ParentEdge)
				}
			}
			return t, nil
		default:
			switch parsing {
			case fieldName:
				name = append(name, c)
			case fieldLength:
				if unicode.IsSpace(c) {
					return nil, ErrWhitespaceInNumber
				}
				length = append(length, c)
			}
		}
	}

	return nil, ErrNoClosingSemicolon
}

// ToNewick serializes the tree as a Newick formatted string, children in
// insertion order, terminated by a semicolon.
func (t *Tree) ToNewick() (string, error) {
	root, err := t.Root()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	t.writeNewick(&sb, root)
	sb.WriteByte(';')
	return sb.String(), nil
}

func (t *Tree) writeNewick(sb *strings.Builder, id NodeID) {
	node := t.Get(id)
	if len(node.Children) > 0 {
		sb.WriteByte('(')
		for i, child := range node.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			t.writeNewick(sb, child)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(node.label())
}

// FromFile reads a Newick tree from a file.
func FromFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading newick file: %w", err)
	}
	return FromNewick(strings.TrimSpace(string(data)))
}

// ToFile writes the tree to a Newick file.
func (t *Tree) ToFile(path string) error {
	newick, err := t.ToNewick()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(newick), 0o644); err != nil {
		return fmt.Errorf("writing newick file: %w", err)
	}
	return nil
}

// formatLength renders a branch length without an exponent, using the
// shortest decimal that parses back to the same value.
func formatLength(l float64) string {
	return strconv.FormatFloat(l, 'f', -1, 64)
}
