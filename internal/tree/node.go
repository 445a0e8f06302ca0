// Package tree builds the hierarchy of scanned entries keyed by path components.
package tree

import (
	"slices"
	"strings"
)

const pathSeparator = "/"

// Node is either a *Branch or a *Leaf.
type Node interface {
	// Name is the node's own path component.
	Name() string
	// Components is the node's path relative to the scan root.
	Components() []string
	isNode()
}

// Branch is a directory node owning its children in first-seen order.
type Branch struct {
	name       string
	components []string
	order      []string
	children   map[string]Node
}

// Leaf is a file node.
type Leaf struct {
	name       string
	components []string
}

// NewRoot returns the synthetic root branch labeled with the scanned directory's name.
func NewRoot(name string) *Branch {
	return newBranch(name, nil)
}

func newBranch(name string, components []string) *Branch {
	return &Branch{
		name:       name,
		components: components,
		children:   map[string]Node{},
	}
}

func (branch *Branch) Name() string         { return branch.name }
func (branch *Branch) Components() []string { return slices.Clone(branch.components) }
func (branch *Branch) isNode()              {}

func (leaf *Leaf) Name() string         { return leaf.name }
func (leaf *Leaf) Components() []string { return slices.Clone(leaf.components) }
func (leaf *Leaf) isNode()              {}

// Children returns the branch's children in insertion order.
func (branch *Branch) Children() []Node {
	nodes := make([]Node, 0, len(branch.order))
	for _, name := range branch.order {
		nodes = append(nodes, branch.children[name])
	}
	return nodes
}

// Child looks up a direct child by component name.
func (branch *Branch) Child(name string) (Node, bool) {
	node, exists := branch.children[name]
	return node, exists
}

// Len returns the number of direct children.
func (branch *Branch) Len() int {
	return len(branch.order)
}

// ensureBranch returns the child branch called name, creating it or upgrading
// a leaf of that name in place.
func (branch *Branch) ensureBranch(name string, components []string) *Branch {
	existing, exists := branch.children[name]
	if !exists {
		child := newBranch(name, components)
		branch.children[name] = child
		branch.order = append(branch.order, name)
		return child
	}
	if existingBranch, isBranch := existing.(*Branch); isBranch {
		return existingBranch
	}
	upgraded := newBranch(name, components)
	branch.children[name] = upgraded
	return upgraded
}

// ensureLeaf adds a leaf called name unless a child of that name already exists.
func (branch *Branch) ensureLeaf(name string, components []string) {
	if _, exists := branch.children[name]; exists {
		return
	}
	branch.children[name] = &Leaf{name: name, components: components}
	branch.order = append(branch.order, name)
}

// RelativePath joins the components of node with forward slashes.
func RelativePath(node Node) string {
	return strings.Join(node.Components(), pathSeparator)
}
