// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import "strings"

// attributeEscaper rewrites characters that break JSX attribute syntax.
var attributeEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
	"\n", " ",
	"\r", " ",
)

// textEscaper neutralizes raw markup characters in MDX text position.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

// escapeAttribute escapes value for use inside a double-quoted JSX attribute.
//
// The function is total: every input string has a defined escaped output and
// the result never closes the surrounding attribute or component tag.
func escapeAttribute(value string) string {
	return attributeEscaper.Replace(value)
}

// escapeText escapes value for MDX text position outside components.
func escapeText(value string) string {
	return textEscaper.Replace(value)
}

// escapeTableCell escapes value for one markdown pipe table cell.
func escapeTableCell(value string) string {
	return strings.ReplaceAll(escapeText(value), "|", "\\|")
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
