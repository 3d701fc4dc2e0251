package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kestrelgeo/trapdecomp"
)

// parsePolygonText reads the text format of spec §6: a non-empty line
// holding the vertex count N, followed by N lines of two whitespace
// separated integers.
func parsePolygonText(r io.Reader) ([]trapdecomp.Vertex, error) {
	scanner := bufio.NewScanner(r)

	count, ok, err := nextInt(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("empty input: missing vertex count")
	}
	if count < 3 {
		return nil, fmt.Errorf("a polygon needs at least 3 vertices, got %d", count)
	}

	vertices := make([]trapdecomp.Vertex, 0, count)
	for len(vertices) < count {
		line, ok := nextLine(scanner)
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed vertex line %q: want \"x y\"", line)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid x coordinate %q: %w", fields[0], err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid y coordinate %q: %w", fields[1], err)
		}
		vertices = append(vertices, trapdecomp.Vertex{X: float64(x), Y: float64(y)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(vertices) != count {
		return nil, fmt.Errorf("expected %d vertices, got %d", count, len(vertices))
	}
	return vertices, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func nextInt(scanner *bufio.Scanner) (int, bool, error) {
	line, ok := nextLine(scanner)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false, fmt.Errorf("malformed vertex count %q: %w", line, err)
	}
	return n, true, nil
}
