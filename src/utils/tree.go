package utils

import (
	"fmt"
	"io"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
)

// Node is a labelled entry of a text tree. Siblings are linked through
// Left and Right in insertion order.
type Node struct {
	Level    int
	Label    string
	Children []*Node
	Parent   *Node
	Left     *Node
	Right    *Node
}

func NewTree(label string) *Node {
	return &Node{Label: label}
}

// Add appends a child labelled with label and returns it.
func (node *Node) Add(label string) *Node {
	var pre *Node
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &Node{
		Level:  node.Level + 1,
		Label:  label,
		Parent: node,
		Left:   pre,
	}
	if pre != nil {
		pre.Right = child
	}
	node.Children = append(node.Children, child)
	return child
}

// Addf is Add with a formatted label.
func (node *Node) Addf(format string, args ...interface{}) *Node {
	return node.Add(fmt.Sprintf(format, args...))
}

// Show writes the tree to w. The prefix carries the indentation of the
// ancestors, and the tee and lasttee characters mark whether a branch
// continues below the node.
func (node *Node) Show(w io.Writer, prefix string) error {
	if node.Level == 0 {
		if _, err := fmt.Fprintln(w, node.Label); err != nil {
			return err
		}
	} else {
		branch := lasttee
		if node.Right != nil {
			branch = tee
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, node.Label); err != nil {
			return err
		}
		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		if err := child.Show(w, prefix); err != nil {
			return err
		}
	}
	return nil
}
