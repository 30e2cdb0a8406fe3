// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

/*
Package mdxdoc renders parsed API documentation trees into MDX text.

The package consumes an already-resolved document model: a tree of DocNode
values describing prose, headings, tables, emphasis, and cross-references.
It decides what the tree does not say itself: it classifies structurally
similar tables into property, method, and generic kinds, escapes arbitrary
content for the markup-plus-component output syntax, and resolves symbolic
cross-references to concrete output locations through a caller callback.

Basic render of a built tree:

	renderer := mdxdoc.NewRenderer(mdxdoc.RendererOptions{})
	tree := mdxdoc.Section(
		mdxdoc.Heading(2, mdxdoc.Text("Options")),
		mdxdoc.Paragraph(mdxdoc.Text("Configuration options.")),
	)

	out, err := renderer.Render(tree, mdxdoc.NewRenderContext(nil))
	if err != nil {
		return err
	}

	fmt.Println(out)

Wire resolution callbacks and a shared cache coordinator:

	caches := mdxdoc.NewCoordinator(mdxdoc.ProductionCoordinatorOptions())
	renderer := mdxdoc.NewRenderer(mdxdoc.RendererOptions{
		Caches: caches,
		Resolve: func(context *mdxdoc.APIItem, reference string) (*mdxdoc.APIItem, bool) {
			return model.Lookup(context, reference)
		},
		FileName: func(item *mdxdoc.APIItem) (string, bool) {
			return manifest.FileFor(item)
		},
	})

	context := mdxdoc.NewRenderContext(&mdxdoc.APIItem{Name: "Client", Package: "api"})
	out, err := renderer.Render(tree, context)

Decode a document model from JSON or YAML and render it:

	doc, err := mdxdoc.DecodeDocument(data, mdxdoc.ModelFormatAuto)
	if err != nil {
		return err
	}

	out, err := renderer.Render(doc.Root, mdxdoc.NewRenderContext(doc.Item))

Inspect cache effectiveness after a generation run:

	stats := caches.Stats()
	fmt.Printf("hit rate %.2f\n", stats.HitRate)
*/
package mdxdoc
