// Package render draws a tour as an undirected Graphviz cycle.
//
// ToDOT emits plain DOT text; RenderSVG lays it out with the embedded Graphviz
// engine. The depot is drawn as a double circle and every edge is labelled with
// its cost.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/tourlab/tsp"
)

// Options tunes the drawing.
type Options struct {
	// Title is shown as the graph label when non-empty.
	Title string
	// Costs labels edges with their cost when true.
	Costs bool
}

// ToDOT converts the closed route of t into DOT. model is consulted only for edge labels.
func ToDOT(model *tsp.CostModel, t tsp.Tour, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph tour {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("  0 [shape=doublecircle, label=\"depot\"];\n")
	for _, v := range t {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	route := make([]int, 0, len(t)+2)
	route = append(route, 0)
	route = append(route, t...)
	route = append(route, 0)
	var i int
	for i = 1; i < len(route); i++ {
		u, v := route[i-1], route[i]
		if !opts.Costs || model == nil {
			fmt.Fprintf(&buf, "  %d -- %d;\n", u, v)
			continue
		}
		d, err := model.Edge(u, v)
		if err != nil {
			fmt.Fprintf(&buf, "  %d -- %d;\n", u, v)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d [label=\"%d\"];\n", u, v, d)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders DOT text to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: svg: %w", err)
	}

	return buf.Bytes(), nil
}
