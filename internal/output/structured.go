package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/dtree/internal/tree"
	"github.com/temirov/dtree/internal/types"
)

const yamlIndent = 2

// BuildDocument converts a built tree into its serializable form.
func BuildDocument(root *tree.Branch, summary types.OutputSummary) types.TreeDocument {
	return types.TreeDocument{
		Root:          convertNode(root),
		OutputSummary: summary,
	}
}

func convertNode(node tree.Node) *types.TreeOutputNode {
	outputNode := &types.TreeOutputNode{
		Name: node.Name(),
		Path: tree.RelativePath(node),
		Type: types.NodeTypeFile,
	}
	branch, isBranch := node.(*tree.Branch)
	if !isBranch {
		return outputNode
	}
	outputNode.Type = types.NodeTypeDirectory
	for _, child := range branch.Children() {
		outputNode.Children = append(outputNode.Children, convertNode(child))
	}
	return outputNode
}

// RenderJSON encodes the document as indented JSON.
func RenderJSON(document types.TreeDocument) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(document, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf("encode json: %w", jsonEncodeError)
	}
	return string(encoded), nil
}

// RenderXML encodes the document as indented XML with a header.
func RenderXML(document types.TreeDocument) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(document, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", fmt.Errorf("encode xml: %w", xmlMarshalError)
	}
	return xml.Header + string(encoded), nil
}

// RenderYAML encodes the document as YAML.
func RenderYAML(document types.TreeDocument) (string, error) {
	var builder strings.Builder
	encoder := yaml.NewEncoder(&builder)
	encoder.SetIndent(yamlIndent)
	if yamlEncodeError := encoder.Encode(document); yamlEncodeError != nil {
		return "", fmt.Errorf("encode yaml: %w", yamlEncodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return "", fmt.Errorf("encode yaml: %w", closeError)
	}
	return strings.TrimSuffix(builder.String(), "\n"), nil
}

type documentRenderer struct {
	writer io.Writer
	encode func(types.TreeDocument) (string, error)
}

func (renderer *documentRenderer) Render(root *tree.Branch, summary types.OutputSummary) error {
	encoded, encodeError := renderer.encode(BuildDocument(root, summary))
	if encodeError != nil {
		return encodeError
	}
	_, writeError := fmt.Fprintln(renderer.writer, encoded)
	return writeError
}

// NewJSONRenderer writes the tree document as JSON.
func NewJSONRenderer(writer io.Writer) TreeRenderer {
	return &documentRenderer{writer: writer, encode: RenderJSON}
}

// NewXMLRenderer writes the tree document as XML.
func NewXMLRenderer(writer io.Writer) TreeRenderer {
	return &documentRenderer{writer: writer, encode: RenderXML}
}

// NewYAMLRenderer writes the tree document as YAML.
func NewYAMLRenderer(writer io.Writer) TreeRenderer {
	return &documentRenderer{writer: writer, encode: RenderYAML}
}
