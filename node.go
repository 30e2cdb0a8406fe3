// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

// NodeKind identifies one DocNode variant.
type NodeKind string

const (
	// KindPlainText is a plain text leaf.
	KindPlainText NodeKind = "plain_text"
	// KindSoftBreak is a single soft line break between inline content.
	KindSoftBreak NodeKind = "soft_break"
	// KindSection is a block container of child nodes.
	KindSection NodeKind = "section"
	// KindParagraph is one paragraph of inline content.
	KindParagraph NodeKind = "paragraph"
	// KindTable is a table with optional header row and body rows.
	KindTable NodeKind = "table"
	// KindTableRow is one ordered list of table cells.
	KindTableRow NodeKind = "table_row"
	// KindTableCell is one table cell holding child nodes.
	KindTableCell NodeKind = "table_cell"
	// KindEmphasis wraps a subtree in bold or italic emphasis.
	KindEmphasis NodeKind = "emphasis"
	// KindLink is an inline reference to a URL or symbolic target.
	KindLink NodeKind = "link"
	// KindHeading is a markdown heading with level.
	KindHeading NodeKind = "heading"
	// KindNote is a callout admonition block.
	KindNote NodeKind = "note"
	// KindExpandable is a collapsible details block with summary title.
	KindExpandable NodeKind = "expandable"
)

// DocNode is one immutable node in the document tree being rendered.
//
// The kind field selects the active variant; only the fields listed for that
// variant are meaningful. The tree is a strict forest: one parent per node,
// no cycles, no shared ownership.
type DocNode struct {
	// Kind selects the node variant.
	Kind NodeKind `json:"kind" yaml:"kind"`
	// Text holds leaf text for plain_text nodes and inline display text for links.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Level is the heading level for heading nodes.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
	// Bold marks bold emphasis for emphasis nodes.
	Bold bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	// Italic marks italic emphasis for emphasis nodes.
	Italic bool `json:"italic,omitempty" yaml:"italic,omitempty"`
	// Target is the link destination: a URL or a symbolic reference.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Title is the summary text for expandable nodes.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Header is the optional header row for table nodes.
	Header *DocNode `json:"header,omitempty" yaml:"header,omitempty"`
	// Rows are ordered body rows for table nodes.
	Rows []*DocNode `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Cells are ordered cells for table_row nodes.
	Cells []*DocNode `json:"cells,omitempty" yaml:"cells,omitempty"`
	// Children are ordered child nodes for container variants.
	Children []*DocNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Text returns a plain text leaf node.
func Text(text string) *DocNode {
	return &DocNode{Kind: KindPlainText, Text: text}
}

// SoftBreak returns a soft break node.
func SoftBreak() *DocNode {
	return &DocNode{Kind: KindSoftBreak}
}

// Section returns a block container node over children.
func Section(children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindSection, Children: children}
}

// Paragraph returns one paragraph node over inline children.
func Paragraph(children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindParagraph, Children: children}
}

// Table returns a table node from optional header row and body rows.
func Table(header *DocNode, rows ...*DocNode) *DocNode {
	return &DocNode{Kind: KindTable, Header: header, Rows: rows}
}

// Row returns a table row node over cells.
func Row(cells ...*DocNode) *DocNode {
	return &DocNode{Kind: KindTableRow, Cells: cells}
}

// Cell returns a table cell node over child nodes.
func Cell(children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindTableCell, Children: children}
}

// TextCell returns a table cell holding one plain text leaf.
func TextCell(text string) *DocNode {
	return Cell(Text(text))
}

// Emphasis returns an emphasis node with bold or italic flags over children.
func Emphasis(bold, italic bool, children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindEmphasis, Bold: bold, Italic: italic, Children: children}
}

// Link returns a link node pointing at target with optional inline children.
func Link(target, text string, children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindLink, Target: target, Text: text, Children: children}
}

// Heading returns a heading node with level over inline children.
func Heading(level int, children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindHeading, Level: level, Children: children}
}

// Note returns a callout note node over children.
func Note(children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindNote, Children: children}
}

// Expandable returns a collapsible block node with summary title.
func Expandable(title string, children ...*DocNode) *DocNode {
	return &DocNode{Kind: KindExpandable, Title: title, Children: children}
}

// APIItem is the contextual API item a document is rendered for.
type APIItem struct {
	// Name is the item's declared name.
	Name string `json:"name" yaml:"name"`
	// Kind is the item kind, for example "class" or "interface".
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Package is the import path or namespace owning the item.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
}

// Identity returns a stable identity string for cache key composition.
func (item *APIItem) Identity() string {
	if item == nil {
		return ""
	}

	if item.Package == "" {
		return item.Name
	}

	return item.Package + "." + item.Name
}
