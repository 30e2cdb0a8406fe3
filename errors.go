// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import "errors"

var (
	// ErrUnknownNodeKind is returned when the renderer meets an unregistered node variant.
	ErrUnknownNodeKind = errors.New("unknown document node kind")
	// ErrCoordinatorConflict is returned when the shared coordinator is re-initialized with conflicting options.
	ErrCoordinatorConflict = errors.New("shared cache coordinator already initialized with different options")
	// ErrDecodeModel is returned when document model decoding fails.
	ErrDecodeModel = errors.New("decode document model")
	// ErrEmptyModel is returned when document model input holds no document tree.
	ErrEmptyModel = errors.New("document model has no document tree")
	// ErrUnknownModelFormat is returned when document model format is not supported.
	ErrUnknownModelFormat = errors.New("unknown document model format")
)
