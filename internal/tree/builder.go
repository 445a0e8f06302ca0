package tree

import (
	"iter"
	"slices"

	"github.com/temirov/dtree/internal/scan"
)

// Counts tallies the nodes of a built tree.
type Counts struct {
	Files int
	// Folders includes the root.
	Folders int
}

// Build inserts every entry beneath a new root named rootName. Entries are
// expected in relative path order; the hierarchy key is always the component
// sequence.
func Build(rootName string, entries iter.Seq[scan.Entry]) *Branch {
	root := NewRoot(rootName)
	for entry := range entries {
		Insert(root, entry)
	}
	return root
}

// Insert places entry beneath root. Missing ancestors are created as branches;
// inserting an existing branch again changes nothing.
func Insert(root *Branch, entry scan.Entry) {
	components := entry.Components
	if len(components) == 0 {
		return
	}
	current := root
	for index, component := range components[:len(components)-1] {
		current = current.ensureBranch(component, slices.Clone(components[:index+1]))
	}
	last := components[len(components)-1]
	ownComponents := slices.Clone(components)
	if entry.IsDir() {
		current.ensureBranch(last, ownComponents)
		return
	}
	current.ensureLeaf(last, ownComponents)
}

// Count walks the tree and counts branches, root included, and leaves.
func Count(root *Branch) Counts {
	counts := Counts{}
	Walk(root, func(node Node, _ int) {
		switch node.(type) {
		case *Branch:
			counts.Folders++
		case *Leaf:
			counts.Files++
		}
	})
	return counts
}

// Walk visits every node in depth-first pre-order, passing its depth.
func Walk(root *Branch, visit func(node Node, depth int)) {
	walkNode(root, 0, visit)
}

func walkNode(node Node, depth int, visit func(Node, int)) {
	visit(node, depth)
	branch, isBranch := node.(*Branch)
	if !isBranch {
		return
	}
	for _, child := range branch.Children() {
		walkNode(child, depth+1, visit)
	}
}
