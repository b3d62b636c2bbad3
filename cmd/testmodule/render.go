package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/feather-lang/testmodule"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderGrids prints the input and output grids. Terminals get aligned
// rows; anything else gets both grids flattened on one line.
func renderGrids(w io.Writer, in, out *testmodule.Grid) {
	if !isTerminal(w) {
		fmt.Fprintf(w, "%s %s\n", flat(in), flat(out))
		return
	}
	fmt.Fprintln(w, "in:")
	writeAligned(w, in)
	fmt.Fprintln(w, "out:")
	writeAligned(w, out)
}

func flat(g *testmodule.Grid) string {
	parts := make([]string, g.Len())
	for i, v := range g.Data() {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func writeAligned(w io.Writer, g *testmodule.Grid) {
	width := 0
	for _, v := range g.Data() {
		width = max(width, len(formatFloat(v)))
	}
	for r := 0; r < g.Height(); r++ {
		var b strings.Builder
		b.WriteString("  ")
		for c, v := range g.Row(r) {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, formatFloat(v))
		}
		fmt.Fprintln(w, b.String())
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
