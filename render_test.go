// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderHeadingLevels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		level int
		want  string
	}{
		{name: "regular", level: 2, want: "## Options"},
		{name: "clamped low", level: 0, want: "# Options"},
		{name: "clamped high", level: 9, want: "###### Options"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := renderTree(t, Heading(testCase.level, Text("Options")))
			if strings.TrimRight(got, "\n") != testCase.want {
				t.Fatalf("heading = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestRenderSectionSeparatesParagraphs(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Section(
		Paragraph(Text("first paragraph")),
		Paragraph(Text("second paragraph")),
	))

	want := "first paragraph\n\nsecond paragraph\n"
	if got != want {
		t.Fatalf("section = %q, want %q", got, want)
	}
}

func TestRenderSoftBreakInsideParagraph(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Paragraph(Text("line one"), SoftBreak(), Text("line two")))
	if got != "line one\nline two\n" {
		t.Fatalf("paragraph with soft break = %q", got)
	}
}

func TestRenderUnknownNodeKindFails(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RendererOptions{})
	_, err := renderer.Render(&DocNode{Kind: NodeKind("mystery")}, NewRenderContext(nil))
	if !errors.Is(err, ErrUnknownNodeKind) {
		t.Fatalf("expected ErrUnknownNodeKind, got %v", err)
	}

	if !strings.Contains(err.Error(), "mystery") {
		t.Fatalf("error does not name the node kind: %v", err)
	}
}

func TestRenderNestedEmphasisDoesNotDoubleMarkers(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Paragraph(
		Emphasis(true, false,
			Text("bold "),
			Emphasis(true, true, Text("both")),
		),
	))

	if strings.TrimRight(got, "\n") != "**bold *both***" {
		t.Fatalf("nested emphasis = %q", got)
	}
}

func TestRenderEmphasisStackBalancedOnError(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RendererOptions{})
	context := NewRenderContext(nil)

	tree := Emphasis(true, false, &DocNode{Kind: NodeKind("mystery")})
	if _, err := renderer.Render(tree, context); !errors.Is(err, ErrUnknownNodeKind) {
		t.Fatalf("expected ErrUnknownNodeKind, got %v", err)
	}

	if len(context.emphasis) != 0 {
		t.Fatalf("emphasis stack not balanced after error: %d frames left", len(context.emphasis))
	}
}

func TestRenderURLLink(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Paragraph(Link("https://example.com/docs", "Example")))
	assertContains(t, got, "[Example](https://example.com/docs)")
}

func TestRenderURLLinkWithoutTextUsesTarget(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Paragraph(Link("https://example.com", "")))
	assertContains(t, got, "[https://example.com](https://example.com)")
}

func TestRenderSymbolicLinkResolved(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RendererOptions{
		Resolve: func(_ *APIItem, reference string) (*APIItem, bool) {
			if reference != "ui.Widget" {
				return nil, false
			}

			return &APIItem{Name: "Widget", Package: "ui"}, true
		},
		FileName: func(item *APIItem) (string, bool) {
			return item.Name + ".mdx", true
		},
	})

	got, err := renderer.Render(Paragraph(Link("ui.Widget", "")), NewRenderContext(nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertContains(t, got, "[Widget](Widget.mdx#widget)")
}

func TestRenderSymbolicLinkDisplayFallbackOrder(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RendererOptions{})

	cases := []struct {
		name string
		node *DocNode
		want string
	}{
		{name: "inline children win", node: Link("pkg.Thing", "explicit", Text("inline")), want: "inline"},
		{name: "explicit text next", node: Link("pkg.Thing", "explicit"), want: "explicit"},
		{name: "raw target last", node: Link("pkg.Thing", ""), want: "pkg.Thing"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderer.Render(Paragraph(testCase.node), NewRenderContext(nil))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			if strings.TrimRight(got, "\n") != testCase.want {
				t.Fatalf("unresolved link = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestRenderSymbolicLinkUnmappedFileRendersPlainText(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RendererOptions{
		Resolve: func(_ *APIItem, _ string) (*APIItem, bool) {
			return &APIItem{Name: "Hidden"}, true
		},
		FileName: func(_ *APIItem) (string, bool) {
			return "", false
		},
	})

	got, err := renderer.Render(Paragraph(Link("pkg.Hidden", "")), NewRenderContext(nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.TrimRight(got, "\n") != "Hidden" {
		t.Fatalf("unmapped link = %q", got)
	}

	assertNotContains(t, got, "](")
}

func TestRenderNoteAdmonition(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Note(Paragraph(Text("Be careful."))))
	assertContains(t, got, ":::note\nBe careful.\n:::")
}

func TestRenderExpandableDetails(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Expandable("More", Paragraph(Text("hidden body"))))
	assertContains(t, got, "<details>")
	assertContains(t, got, "<summary>More</summary>")
	assertContains(t, got, "hidden body")
	assertContains(t, got, "</details>")
}

func TestRenderPlainTextEscapesMarkup(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Paragraph(Text("a < b > c { d }")))
	assertContains(t, got, "a &lt; b &gt; c &#123; d &#125;")
	assertNotContains(t, strings.ReplaceAll(got, "&lt;", ""), "<")
}

func TestRenderNilNodeIsEmpty(t *testing.T) {
	t.Parallel()

	got := renderTree(t, Section(nil, Paragraph(Text("kept"))))
	if got != "kept\n" {
		t.Fatalf("section with nil child = %q", got)
	}
}

func TestRenderIdempotentAcrossFreshContexts(t *testing.T) {
	t.Parallel()

	caches := NewCoordinator(DefaultCoordinatorOptions())
	renderer := NewRenderer(RendererOptions{Caches: caches})

	tree := Section(
		Heading(2, Text("Widget")),
		propertyFixtureTable(),
		Paragraph(Text("Prose with "), Emphasis(false, true, Text("emphasis")), Text(".")),
	)

	first, err := renderer.Render(tree, NewRenderContext(nil))
	if err != nil {
		t.Fatalf("first render: %v", err)
	}

	caches.ClearAll()
	second, err := renderer.Render(tree, NewRenderContext(nil))
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if first != second {
		t.Fatalf("render is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestFlattenTextSoftBreakNeverDuplicated(t *testing.T) {
	t.Parallel()

	got := flattenText(Section(
		Paragraph(Text("one"), SoftBreak(), SoftBreak(), Text("two")),
	))

	if got != "one two" {
		t.Fatalf("flattened text = %q", got)
	}
}

func TestHeadingAnchorSlugs(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Widget":        "widget",
		"ui.Widget Set": "ui-widget-set",
		"  ":            "",
	}

	for input, want := range cases {
		if got := headingAnchor(input); got != want {
			t.Fatalf("headingAnchor(%q) = %q, want %q", input, got, want)
		}
	}
}

// renderTree renders one tree with a default renderer and fails the test on error.
func renderTree(t *testing.T, tree *DocNode) string {
	t.Helper()

	renderer := NewRenderer(RendererOptions{})
	got, err := renderer.Render(tree, NewRenderContext(nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	return got
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
