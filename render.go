// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// FileNameFunc maps one API item to its output document file name.
// The second result is false when the item has no mapped output document.
type FileNameFunc func(item *APIItem) (string, bool)

// RendererOptions configures a document renderer.
type RendererOptions struct {
	// Caches is the coordinator consulted for type analysis and reference
	// resolution; nil constructs an isolated default coordinator.
	Caches *Coordinator
	// FileName maps resolved API items to output file names.
	FileName FileNameFunc
	// Resolve performs real reference resolution on cache misses.
	Resolve ResolveFunc
	// Logger receives diagnostic output for silent input normalization.
	Logger *zerolog.Logger
}

// Renderer converts DocNode trees into MDX text.
//
// Rendering is synchronous and depth-first; independent documents may render
// concurrently through one Renderer provided each owns its RenderContext.
type Renderer struct {
	caches   *Coordinator
	fileName FileNameFunc
	resolve  ResolveFunc
	logger   zerolog.Logger
}

// NewRenderer returns a renderer wired to caches and resolution callbacks.
func NewRenderer(options RendererOptions) *Renderer {
	caches := options.Caches
	if caches == nil {
		caches = NewCoordinator(DefaultCoordinatorOptions())
	}

	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = *options.Logger
	}

	return &Renderer{
		caches:   caches,
		fileName: options.FileName,
		resolve:  options.Resolve,
		logger:   componentLogger(logger, "renderer"),
	}
}

// emphasisState is one active emphasis frame on the render stack.
type emphasisState struct {
	bold   bool
	italic bool
}

// RenderContext is mutable per-render state.
//
// A context must not be shared between concurrently rendered documents; seed
// a fresh one per document with NewRenderContext.
type RenderContext struct {
	// Item is the contextual API item used to resolve relative references.
	Item *APIItem

	indent      int
	emphasis    []emphasisState
	importSeen  map[string]bool
	importLines []string
}

// NewRenderContext returns a cleared context for one document render.
func NewRenderContext(item *APIItem) *RenderContext {
	return &RenderContext{
		Item:       item,
		importSeen: make(map[string]bool),
	}
}

// pushEmphasis enters one emphasis frame.
func (context *RenderContext) pushEmphasis(bold, italic bool) {
	context.emphasis = append(context.emphasis, emphasisState{bold: bold, italic: italic})
}

// popEmphasis leaves the innermost emphasis frame.
func (context *RenderContext) popEmphasis() {
	if len(context.emphasis) == 0 {
		return
	}

	context.emphasis = context.emphasis[:len(context.emphasis)-1]
}

// activeEmphasis combines all emphasis frames currently on the stack.
func (context *RenderContext) activeEmphasis() emphasisState {
	var active emphasisState
	for _, frame := range context.emphasis {
		active.bold = active.bold || frame.bold
		active.italic = active.italic || frame.italic
	}

	return active
}

// requireImport records a one-time import line for one component family.
func (context *RenderContext) requireImport(family, line string) {
	if context.importSeen[family] {
		return
	}

	context.importSeen[family] = true
	context.importLines = append(context.importLines, line)
}

// Render converts one document tree into MDX text.
//
// One-time setup imports recorded during the walk are prepended to the body.
// An unknown node kind is the only error; malformed tables and blank cells
// normalize silently.
func (renderer *Renderer) Render(tree *DocNode, context *RenderContext) (string, error) {
	if context == nil {
		context = NewRenderContext(nil)
	}

	body, err := renderer.renderNode(tree, context)
	if err != nil {
		return "", err
	}

	if len(context.importLines) == 0 {
		return ensureTrailingNewline(body), nil
	}

	header := strings.Join(context.importLines, "\n")
	return ensureTrailingNewline(header + "\n\n" + body), nil
}

// renderNode dispatches depth-first on the node variant tag.
func (renderer *Renderer) renderNode(node *DocNode, context *RenderContext) (string, error) {
	if node == nil {
		return "", nil
	}

	switch node.Kind {
	case KindPlainText:
		return escapeText(node.Text), nil
	case KindSoftBreak:
		return "\n" + strings.Repeat("  ", context.indent), nil
	case KindSection:
		return renderer.renderBlocks(node.Children, context)
	case KindParagraph:
		return renderer.renderInline(node.Children, context)
	case KindEmphasis:
		return renderer.renderEmphasis(node, context)
	case KindLink:
		return renderer.renderLink(node, context)
	case KindHeading:
		return renderer.renderHeading(node, context)
	case KindNote:
		return renderer.renderNote(node, context)
	case KindExpandable:
		return renderer.renderExpandable(node, context)
	case KindTable:
		return renderer.renderTable(node, context)
	case KindTableRow:
		return renderer.renderRowInline(node, context)
	case KindTableCell:
		return renderer.renderInline(node.Children, context)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownNodeKind, node.Kind)
	}
}

// renderBlocks renders children as blocks separated by blank lines.
func (renderer *Renderer) renderBlocks(children []*DocNode, context *RenderContext) (string, error) {
	blocks := make([]string, 0, len(children))
	for _, child := range children {
		rendered, err := renderer.renderNode(child, context)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(rendered) == "" {
			continue
		}

		blocks = append(blocks, strings.TrimRight(rendered, "\n"))
	}

	return strings.Join(blocks, "\n\n"), nil
}

// renderInline renders children joined without block separators.
func (renderer *Renderer) renderInline(children []*DocNode, context *RenderContext) (string, error) {
	var out strings.Builder
	for _, child := range children {
		rendered, err := renderer.renderNode(child, context)
		if err != nil {
			return "", err
		}

		out.WriteString(rendered)
	}

	return out.String(), nil
}

// renderEmphasis renders an emphasis subtree with balanced flag stack frames.
func (renderer *Renderer) renderEmphasis(node *DocNode, context *RenderContext) (string, error) {
	active := context.activeEmphasis()
	context.pushEmphasis(node.Bold, node.Italic)
	defer context.popEmphasis()

	inner, err := renderer.renderInline(node.Children, context)
	if err != nil {
		return "", err
	}

	if node.Bold && !active.bold {
		inner = "**" + inner + "**"
	}

	if node.Italic && !active.italic {
		inner = "*" + inner + "*"
	}

	return inner, nil
}

// renderHeading renders a markdown heading with clamped level.
func (renderer *Renderer) renderHeading(node *DocNode, context *RenderContext) (string, error) {
	level := node.Level
	if level < 1 {
		level = 1
	}

	if level > 6 {
		level = 6
	}

	text, err := renderer.renderInline(node.Children, context)
	if err != nil {
		return "", err
	}

	return strings.Repeat("#", level) + " " + sanitizeText(text), nil
}

// renderNote renders a callout admonition block.
func (renderer *Renderer) renderNote(node *DocNode, context *RenderContext) (string, error) {
	context.indent++
	defer func() { context.indent-- }()

	body, err := renderer.renderBlocks(node.Children, context)
	if err != nil {
		return "", err
	}

	return ":::note\n" + body + "\n:::", nil
}

// renderExpandable renders a collapsible details block.
func (renderer *Renderer) renderExpandable(node *DocNode, context *RenderContext) (string, error) {
	context.indent++
	defer func() { context.indent-- }()

	body, err := renderer.renderBlocks(node.Children, context)
	if err != nil {
		return "", err
	}

	summary := sanitizeText(node.Title)
	if summary == "" {
		summary = "Details"
	}

	return "<details>\n<summary>" + escapeText(summary) + "</summary>\n\n" + body + "\n\n</details>", nil
}

// renderLink renders URL links directly and symbolic links through resolution.
func (renderer *Renderer) renderLink(node *DocNode, context *RenderContext) (string, error) {
	display := sanitizeText(flattenText(node.Children...))
	if display == "" {
		display = sanitizeText(node.Text)
	}

	target := strings.TrimSpace(node.Target)
	if isURL(target) {
		if display == "" {
			display = target
		}

		return "[" + escapeText(display) + "](" + target + ")", nil
	}

	item, ok := renderer.caches.ResolveReference(context.Item, target, renderer.resolve)
	if !ok || item == nil {
		if display == "" {
			display = target
		}

		return escapeText(display), nil
	}

	if display == "" {
		display = item.Name
	}

	file := ""
	mapped := false
	if renderer.fileName != nil {
		file, mapped = renderer.fileName(item)
	}

	if !mapped || strings.TrimSpace(file) == "" {
		renderer.logger.Debug().Str("reference", target).Msg("resolved reference has no mapped output file")
		return escapeText(display), nil
	}

	return "[" + escapeText(display) + "](" + file + "#" + headingAnchor(item.Name) + ")", nil
}

// renderRowInline renders a stray table row met outside a table.
func (renderer *Renderer) renderRowInline(node *DocNode, context *RenderContext) (string, error) {
	parts := make([]string, 0, len(node.Cells))
	for _, cell := range node.Cells {
		rendered, err := renderer.renderNode(cell, context)
		if err != nil {
			return "", err
		}

		parts = append(parts, rendered)
	}

	return strings.Join(parts, " "), nil
}

// isURL reports whether target is an absolute URL rather than a symbolic reference.
func isURL(target string) bool {
	for _, prefix := range []string{"http://", "https://", "mailto:", "//"} {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}

	return false
}

// flattenText concatenates plain text leaves in document order.
//
// Soft breaks contribute exactly one space and are never duplicated; links
// without inline children fall back to explicit link text, then the raw
// target reference.
func flattenText(nodes ...*DocNode) string {
	var out strings.Builder
	for _, node := range nodes {
		appendFlatText(&out, node)
	}

	return out.String()
}

// appendFlatText appends one node's plain text contribution to the builder.
func appendFlatText(out *strings.Builder, node *DocNode) {
	if node == nil {
		return
	}

	switch node.Kind {
	case KindPlainText:
		out.WriteString(node.Text)
	case KindSoftBreak:
		text := out.String()
		if text != "" && !strings.HasSuffix(text, " ") {
			out.WriteString(" ")
		}
	case KindLink:
		if len(node.Children) > 0 {
			for _, child := range node.Children {
				appendFlatText(out, child)
			}
			return
		}

		if node.Text != "" {
			out.WriteString(node.Text)
			return
		}

		out.WriteString(node.Target)
	case KindTableRow:
		for _, cell := range node.Cells {
			appendFlatText(out, cell)
		}
	case KindTable:
		appendFlatText(out, node.Header)
		for _, row := range node.Rows {
			appendFlatText(out, row)
		}
	default:
		for _, child := range node.Children {
			appendFlatText(out, child)
		}
	}
}

// headingAnchor converts heading or item text into a markdown anchor slug.
func headingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '.':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
