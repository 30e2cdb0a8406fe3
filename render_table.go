// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import "strings"

const (
	// propertyImportLine is emitted once per document before the first property block.
	propertyImportLine = "import { PropertyBlock } from '@docforge/components';"
	// methodImportLine is emitted once per document before the first method block.
	methodImportLine = "import { MethodBlock } from '@docforge/components';"
	// deprecationMarker starts a method description that documents a deprecated member.
	deprecationMarker = "deprecated:"
)

// tableKind is one of the three table classification outcomes.
type tableKind int

const (
	tableGeneric tableKind = iota
	tableProperty
	tableMethod
)

// propertyKeywords classify a header as a property-like table.
var propertyKeywords = map[string]struct{}{
	"property":   {},
	"properties": {},
	"parameter":  {},
	"parameters": {},
	"prop":       {},
	"field":      {},
	"attribute":  {},
	"option":     {},
}

// methodKeywords classify a header as a method-like table.
var methodKeywords = map[string]struct{}{
	"constructor":  {},
	"constructors": {},
	"method":       {},
	"methods":      {},
	"function":     {},
	"functions":    {},
	"signature":    {},
	"event":        {},
}

// classifyTable inspects header cell text against the fixed keyword sets.
//
// Property-like keywords are checked before method-like ones; a header
// matching both sets classifies as a property table. The heuristic is fuzzy
// on purpose: extending either keyword set means revisiting this precedence.
func classifyTable(header *DocNode) tableKind {
	if header == nil || len(header.Cells) == 0 {
		return tableGeneric
	}

	words := make(map[string]struct{}, len(header.Cells))
	for _, cell := range header.Cells {
		for _, word := range strings.Fields(strings.ToLower(cellKeywordText(cell))) {
			words[strings.Trim(word, ".,:;()")] = struct{}{}
		}
	}

	for word := range words {
		if _, ok := propertyKeywords[word]; ok {
			return tableProperty
		}
	}

	for word := range words {
		if _, ok := methodKeywords[word]; ok {
			return tableMethod
		}
	}

	return tableGeneric
}

// cellKeywordText extracts a cell's plain text through at most one level of
// paragraph wrapping, for keyword matching only.
func cellKeywordText(cell *DocNode) string {
	if cell == nil {
		return ""
	}

	var out strings.Builder
	for _, child := range cell.Children {
		switch child.Kind {
		case KindPlainText:
			out.WriteString(child.Text)
			out.WriteString(" ")
		case KindParagraph:
			for _, inner := range child.Children {
				if inner.Kind == KindPlainText {
					out.WriteString(inner.Text)
					out.WriteString(" ")
				}
			}
		}
	}

	return strings.TrimSpace(out.String())
}

// cellText flattens one cell to sanitized plain text.
func cellText(cell *DocNode) string {
	return sanitizeText(flattenText(cell))
}

// renderTable classifies one table node and emits its MDX form.
//
// Classification never fails; anything unmatched falls through to the
// generic markdown table. A table node always produces output, even when it
// has neither header nor rows.
func (renderer *Renderer) renderTable(node *DocNode, context *RenderContext) (string, error) {
	if node.Header == nil && len(node.Rows) == 0 {
		return "<table></table>", nil
	}

	switch classifyTable(node.Header) {
	case tableProperty:
		return renderer.renderPropertyTable(node, context), nil
	case tableMethod:
		return renderer.renderMethodTable(node, context), nil
	default:
		return renderer.renderGenericTable(node), nil
	}
}

// renderPropertyTable emits one PropertyBlock component per table row.
func (renderer *Renderer) renderPropertyTable(node *DocNode, context *RenderContext) string {
	typeColumn := findTypeColumn(node.Header)

	blocks := make([]string, 0, len(node.Rows))
	for _, row := range node.Rows {
		if row == nil || len(row.Cells) == 0 {
			renderer.logger.Debug().Msg("property table row without cells skipped")
			continue
		}

		name := cellText(row.Cells[0])
		required := true
		if strings.HasSuffix(name, "?") {
			required = false
			name = strings.TrimSpace(strings.TrimSuffix(name, "?"))
		}

		if name == "" {
			renderer.logger.Debug().Msg("property table row with blank name skipped")
			continue
		}

		typeExpr := ""
		if typeColumn < len(row.Cells) {
			typeExpr = cellText(row.Cells[typeColumn])
		}

		info := renderer.caches.AnalyzeType(typeExpr)
		if info.Optional {
			required = false
		}

		description := ""
		if last := len(row.Cells) - 1; last > 0 && last != typeColumn {
			description = cellText(row.Cells[last])
		}

		var block strings.Builder
		block.WriteString(`<PropertyBlock name="`)
		block.WriteString(escapeAttribute(name))
		block.WriteString(`" type="`)
		block.WriteString(escapeAttribute(info.Display))
		block.WriteString(`"`)
		if required {
			block.WriteString(" required")
		}

		if description != "" {
			block.WriteString(` description="`)
			block.WriteString(escapeAttribute(description))
			block.WriteString(`"`)
		}

		block.WriteString(" />")
		blocks = append(blocks, block.String())
	}

	if len(blocks) == 0 {
		return "<table></table>"
	}

	context.requireImport("property", propertyImportLine)
	return strings.Join(blocks, "\n")
}

// renderMethodTable emits one MethodBlock component per table row.
func (renderer *Renderer) renderMethodTable(node *DocNode, context *RenderContext) string {
	blocks := make([]string, 0, len(node.Rows))
	for _, row := range node.Rows {
		if row == nil || len(row.Cells) == 0 {
			renderer.logger.Debug().Msg("method table row without cells skipped")
			continue
		}

		signature := cellText(row.Cells[0])
		if signature == "" {
			renderer.logger.Debug().Msg("method table row with blank signature skipped")
			continue
		}

		description := ""
		if last := len(row.Cells) - 1; last > 0 {
			description = cellText(row.Cells[last])
		}

		modifiers := make([]string, 0, 2)
		for _, cell := range row.Cells[1 : max(len(row.Cells)-1, 1)] {
			if modifier := cellText(cell); modifier != "" {
				modifiers = append(modifiers, modifier)
			}
		}

		deprecated := false
		if marker := strings.ToLower(description); strings.HasPrefix(marker, deprecationMarker) {
			deprecated = true
			description = strings.TrimSpace(description[len(deprecationMarker):])
		}

		var block strings.Builder
		block.WriteString(`<MethodBlock signature="`)
		block.WriteString(escapeAttribute(signature))
		block.WriteString(`"`)
		if len(modifiers) > 0 {
			block.WriteString(` modifiers="`)
			block.WriteString(escapeAttribute(strings.Join(modifiers, ", ")))
			block.WriteString(`"`)
		}

		if deprecated {
			block.WriteString(" deprecated")
		}

		if description != "" {
			block.WriteString(` description="`)
			block.WriteString(escapeAttribute(description))
			block.WriteString(`"`)
		}

		block.WriteString(" />")
		blocks = append(blocks, block.String())
	}

	if len(blocks) == 0 {
		return "<table></table>"
	}

	context.requireImport("method", methodImportLine)
	return strings.Join(blocks, "\n")
}

// renderGenericTable emits a markdown pipe table padded to the maximum
// observed cell count among header and rows.
func (renderer *Renderer) renderGenericTable(node *DocNode) string {
	width := 0
	if node.Header != nil {
		width = len(node.Header.Cells)
	}

	for _, row := range node.Rows {
		if row != nil && len(row.Cells) > width {
			width = len(row.Cells)
		}
	}

	if width == 0 {
		return "<table></table>"
	}

	if node.Header != nil && len(node.Header.Cells) != width {
		renderer.logger.Debug().Int("width", width).Msg("ragged table padded to maximum observed width")
	}

	var out strings.Builder
	writeTableLine(&out, rowCellTexts(node.Header, width))

	separator := make([]string, width)
	for index := range separator {
		separator[index] = "---"
	}

	out.WriteString("\n")
	writeTableLine(&out, separator)

	for _, row := range node.Rows {
		out.WriteString("\n")
		writeTableLine(&out, rowCellTexts(row, width))
	}

	return out.String()
}

// rowCellTexts flattens row cells to escaped text right-padded to width.
func rowCellTexts(row *DocNode, width int) []string {
	out := make([]string, width)
	if row == nil {
		return out
	}

	for index := 0; index < width && index < len(row.Cells); index++ {
		out[index] = escapeTableCell(cellText(row.Cells[index]))
	}

	return out
}

// writeTableLine writes one markdown table line from cell texts.
func writeTableLine(out *strings.Builder, cells []string) {
	out.WriteString("|")
	for _, cell := range cells {
		out.WriteString(" ")
		out.WriteString(cell)
		out.WriteString(" |")
	}
}

// findTypeColumn returns the header column labeled "type", defaulting to 1.
func findTypeColumn(header *DocNode) int {
	if header == nil {
		return 1
	}

	for index, cell := range header.Cells {
		if strings.EqualFold(strings.TrimSpace(cellKeywordText(cell)), "type") {
			return index
		}
	}

	return 1
}
