// Command trapdecomp reads a simple polygon from a file and prints its
// vertical (trapezoidal) decomposition.
package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kestrelgeo/trapdecomp"
)

var (
	app = kingpin.New("trapdecomp", "Vertical (trapezoidal) decomposition of a simple polygon.")

	inputPath = app.Arg("input", "polygon input file").Required().String()
	svgMode   = app.Flag("svg", "treat the input file as an SVG document containing one <polygon>").Bool()
	seed      = app.Flag("seed", "random seed controlling edge insertion order").Default("1").Int64()
	padding   = app.Flag("padding", "bounding box padding around the polygon").Default("2").Float64()
	debug     = app.Flag("debug", "print a colored trapezoid and edge report").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	file, err := os.Open(*inputPath)
	if err != nil {
		fail(err)
	}
	defer file.Close()

	var vertices []trapdecomp.Vertex
	if *svgMode {
		vertices, err = parsePolygonSVG(file)
	} else {
		vertices, err = parsePolygonText(file)
	}
	if err != nil {
		fail(&trapdecomp.MalformedInput{Reason: err.Error()})
	}

	if *debug {
		trapdecomp.SetTracer(tracePhase)
	}

	edges := trapdecomp.ClosedPolygon(vertices)
	decomp, err := trapdecomp.Decompose(edges, trapdecomp.Options{Seed: *seed, Padding: *padding})
	if err != nil {
		fail(err)
	}

	if *debug {
		fmt.Print(decomp.Report())
	}
	for _, te := range decomp.TaggedEdges() {
		fmt.Printf("%s %v-%v\n", te.Kind, te.Edge.P1, te.Edge.P2)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}

// tracePhase prints one insertion's phase boundaries (locate, split, merge,
// graft) as they happen, colored by phase so a -debug run's trace reads at
// a glance.
func tracePhase(phase string, edge trapdecomp.Edge) {
	var label fmt.Stringer
	switch phase {
	case "locate":
		label = aurora.Cyan(phase)
	case "split":
		label = aurora.Yellow(phase)
	case "merge":
		label = aurora.Magenta(phase)
	case "graft":
		label = aurora.Blue(phase)
	default:
		label = aurora.White(phase)
	}
	fmt.Printf("  %s %v-%v\n", label, edge.P1, edge.P2)
}
