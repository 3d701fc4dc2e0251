package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/kestrelgeo/trapdecomp"
)

// parsePolygonSVG extracts the points attribute of the single <polygon> in an
// SVG document; a document with no <polygon> or with more than one is
// rejected. Adapted from the teacher's fixture loader: this is not a
// full (or even correct) SVG parser, just enough to pull one polygon's
// vertex list out of a hand-drawn fixture.
func parsePolygonSVG(r io.Reader) ([]trapdecomp.Vertex, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, fmt.Errorf("no <polygon> element found")
	}
	if len(polygons) > 1 {
		return nil, fmt.Errorf("more than one <polygon> element found")
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	vertices := make([]trapdecomp.Vertex, 0, len(pointStrings))
	for _, p := range pointStrings {
		coords := strings.Split(p, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid point %q", p)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", p, err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", p, err)
		}
		vertices = append(vertices, trapdecomp.Vertex{X: x, Y: y})
	}
	return vertices, nil
}
