// Package types defines every cross‑package data structure used by the dtree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// TreeOutputNode is the serializable form of one tree node.
type TreeOutputNode struct {
	XMLName  xml.Name          `json:"-" xml:"node" yaml:"-"`
	Name     string            `json:"name" xml:"name" yaml:"name"`
	Path     string            `json:"path" xml:"path" yaml:"path"`
	Type     string            `json:"type" xml:"type" yaml:"type"`
	Children []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty" yaml:"children,omitempty"`
}

// OutputSummary captures aggregate information about a rendered tree.
type OutputSummary struct {
	Files      int  `json:"files" xml:"files" yaml:"files"`
	Folders    int  `json:"folders" xml:"folders" yaml:"folders"`
	Truncated  bool `json:"truncated" xml:"truncated" yaml:"truncated"`
	MaxEntries int  `json:"maxEntries,omitempty" xml:"maxEntries,omitempty" yaml:"maxEntries,omitempty"`
}

// TreeDocument is the structured output of one scan.
type TreeDocument struct {
	XMLName xml.Name        `json:"-" xml:"tree" yaml:"-"`
	Root    *TreeOutputNode `json:"root" xml:"node" yaml:"root"`

	OutputSummary `yaml:",inline"`
}
