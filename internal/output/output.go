// Package output renders built trees in raw and structured formats.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/dtree/internal/render"
	"github.com/temirov/dtree/internal/tree"
	"github.com/temirov/dtree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	summaryLineFormat      = "%d %s, %d %s"
	truncationNoticeFormat = "Warning: output truncated, only %d %s shown"

	fileLabelSingular   = "file"
	fileLabelPlural     = "files"
	folderLabelSingular = "folder"
	folderLabelPlural   = "folders"
	entryLabelSingular  = "entry is"
	entryLabelPlural    = "entries are"

	errorUnsupportedFormat = "unsupported output format '%s'"
)

// TreeRenderer writes one built tree with its summary.
type TreeRenderer interface {
	Render(root *tree.Branch, summary types.OutputSummary) error
}

// RendererOptions configures NewRenderer.
type RendererOptions struct {
	Format string
	Tree   render.Options
	Styles render.Styles
}

// NewRenderer returns the renderer for the requested format writing to writer.
func NewRenderer(writer io.Writer, options RendererOptions) (TreeRenderer, error) {
	switch options.Format {
	case types.FormatRaw, "":
		return NewRawRenderer(writer, render.New(options.Tree, options.Styles), options.Styles), nil
	case types.FormatJSON:
		return NewJSONRenderer(writer), nil
	case types.FormatXML:
		return NewXMLRenderer(writer), nil
	case types.FormatYAML:
		return NewYAMLRenderer(writer), nil
	default:
		return nil, fmt.Errorf(errorUnsupportedFormat, options.Format)
	}
}

// IsSupportedFormat reports whether format names a known output format.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML, types.FormatYAML:
		return true
	default:
		return false
	}
}

// FormatSummaryLine formats the file and folder counts.
func FormatSummaryLine(summary types.OutputSummary) string {
	return fmt.Sprintf(summaryLineFormat,
		summary.Files, pluralize(summary.Files, fileLabelSingular, fileLabelPlural),
		summary.Folders, pluralize(summary.Folders, folderLabelSingular, folderLabelPlural),
	)
}

// FormatTruncationNotice formats the warning shown when the entry cap was hit.
func FormatTruncationNotice(maxEntries int) string {
	return fmt.Sprintf(truncationNoticeFormat, maxEntries, pluralize(maxEntries, entryLabelSingular, entryLabelPlural))
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
