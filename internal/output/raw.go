package output

import (
	"fmt"
	"io"

	"github.com/temirov/dtree/internal/render"
	"github.com/temirov/dtree/internal/tree"
	"github.com/temirov/dtree/internal/types"
)

type rawRenderer struct {
	writer   io.Writer
	renderer *render.Renderer
	styles   render.Styles
}

// NewRawRenderer draws the tree with connectors followed by the summary line
// and, when truncated, the warning line.
func NewRawRenderer(writer io.Writer, renderer *render.Renderer, styles render.Styles) TreeRenderer {
	return &rawRenderer{writer: writer, renderer: renderer, styles: styles}
}

func (raw *rawRenderer) Render(root *tree.Branch, summary types.OutputSummary) error {
	if err := raw.renderer.Write(raw.writer, root); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(raw.writer, FormatSummaryLine(summary)); err != nil {
		return err
	}
	if !summary.Truncated {
		return nil
	}
	_, err := fmt.Fprintln(raw.writer, raw.styles.Apply(render.RoleWarning, FormatTruncationNotice(summary.MaxEntries)))
	return err
}
