// Package render draws a built tree as connector-prefixed text lines.
package render

import (
	"fmt"
	"io"

	"github.com/temirov/dtree/internal/tree"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// Options controls presentation only; it never changes the tree.
type Options struct {
	ShowGuides     bool
	FullPathLabels bool
}

// Line is one rendered node.
type Line struct {
	Depth  int
	Prefix string
	Label  string
	Role   Role
	// Last is true when the node is the last child of its parent.
	Last bool
}

// String returns the unstyled line.
func (line Line) String() string {
	return line.Prefix + line.Label
}

// Renderer turns a tree into lines.
type Renderer struct {
	options Options
	styles  Styles
}

// New returns a Renderer with the given presentation options and styles.
func New(options Options, styles Styles) *Renderer {
	return &Renderer{options: options, styles: styles}
}

// guides records, per ancestor depth, whether more siblings follow that
// ancestor. It is never mutated after creation.
type guides []bool

func (stack guides) extend(continues bool) guides {
	extended := make(guides, len(stack), len(stack)+1)
	copy(extended, stack)
	return append(extended, continues)
}

func (stack guides) prefix(isLast bool) string {
	prefix := make([]byte, 0, (len(stack)+1)*len(treeBranchPadding))
	for _, continues := range stack {
		if continues {
			prefix = append(prefix, treeBranchPadding...)
		} else {
			prefix = append(prefix, treeLastPadding...)
		}
	}
	if isLast {
		return string(append(prefix, treeLastConnector...))
	}
	return string(append(prefix, treeBranchConnector...))
}

// Lines returns one line per node of root in depth-first pre-order.
func (renderer *Renderer) Lines(root *tree.Branch) []Line {
	if root == nil {
		return nil
	}
	lines := []Line{{Depth: 0, Label: root.Name(), Role: RoleRoot, Last: true}}
	return renderer.appendChildren(lines, root, 1, guides{})
}

func (renderer *Renderer) appendChildren(lines []Line, branch *tree.Branch, depth int, ancestors guides) []Line {
	children := branch.Children()
	for index, child := range children {
		isLast := index == len(children)-1
		line := Line{
			Depth: depth,
			Label: renderer.label(child),
			Role:  RoleFile,
			Last:  isLast,
		}
		if renderer.options.ShowGuides {
			line.Prefix = ancestors.prefix(isLast)
		}
		childBranch, isBranch := child.(*tree.Branch)
		if isBranch {
			line.Role = RoleDirectory
		}
		lines = append(lines, line)
		if isBranch {
			lines = renderer.appendChildren(lines, childBranch, depth+1, ancestors.extend(!isLast))
		}
	}
	return lines
}

func (renderer *Renderer) label(node tree.Node) string {
	if renderer.options.FullPathLabels {
		return tree.RelativePath(node)
	}
	return node.Name()
}

// Format returns the line with its label styled.
func (renderer *Renderer) Format(line Line) string {
	return line.Prefix + renderer.styles.Apply(line.Role, line.Label)
}

// Write writes every line of root to writer in order.
func (renderer *Renderer) Write(writer io.Writer, root *tree.Branch) error {
	for _, line := range renderer.Lines(root) {
		if _, err := fmt.Fprintln(writer, renderer.Format(line)); err != nil {
			return err
		}
	}
	return nil
}
