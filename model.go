// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ModelFormatJSON decodes document model input as JSON.
	ModelFormatJSON ModelFormat = "json"
	// ModelFormatYAML decodes document model input as YAML.
	ModelFormatYAML ModelFormat = "yaml"
	// ModelFormatAuto sniffs the document model format from input bytes.
	ModelFormatAuto ModelFormat = "auto"
)

// ModelFormat selects the wire encoding of a document model.
type ModelFormat string

// Document is the wire form of one renderable document: the DocNode tree
// plus the contextual API item it documents.
type Document struct {
	// Item is the contextual API item, optional.
	Item *APIItem `json:"item,omitempty" yaml:"item,omitempty"`
	// Root is the document tree to render.
	Root *DocNode `json:"root" yaml:"root"`
}

// DecodeDocument decodes one document model from JSON or YAML bytes.
func DecodeDocument(data []byte, format ModelFormat) (Document, error) {
	format, err := normalizeModelFormat(format, data)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	switch format {
	case ModelFormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	case ModelFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	default:
		return Document{}, fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}

	if doc.Root == nil {
		return Document{}, ErrEmptyModel
	}

	normalizeNodeKinds(doc.Root)
	return doc, nil
}

// normalizeModelFormat validates the caller format and sniffs auto input.
func normalizeModelFormat(format ModelFormat, data []byte) (ModelFormat, error) {
	normalized := ModelFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ModelFormatJSON, ModelFormatYAML:
		return normalized, nil
	case ModelFormatAuto, "":
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			return ModelFormatJSON, nil
		}

		return ModelFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}
}

// normalizeNodeKinds lowercases kind tags so wire input stays case-insensitive.
// Unknown kinds are kept verbatim and surface as render errors.
func normalizeNodeKinds(node *DocNode) {
	if node == nil {
		return
	}

	node.Kind = NodeKind(strings.ToLower(strings.TrimSpace(string(node.Kind))))

	normalizeNodeKinds(node.Header)
	for _, row := range node.Rows {
		normalizeNodeKinds(row)
	}

	for _, cell := range node.Cells {
		normalizeNodeKinds(cell)
	}

	for _, child := range node.Children {
		normalizeNodeKinds(child)
	}
}
