// File: print.go
// Role: Text rendering of the adjacency lists.
package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ListTerminator ends every rendered adjacency list.
const ListTerminator = "NULL"

// Print writes one line per vertex:
//
//	Vertex 0: 2 -> 1 -> NULL
//	Vertex 1: 3 -> 0 -> NULL
//
// Neighbours appear most-recent-first. Print does not mutate g, so two calls
// with no mutation in between produce identical output.
func (g *Graph) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < g.vertexCount; v++ {
		bw.WriteString("Vertex ")
		bw.WriteString(strconv.Itoa(v))
		bw.WriteString(": ")
		for i := len(g.adjacency[v]) - 1; i >= 0; i-- {
			bw.WriteString(strconv.Itoa(g.adjacency[v][i]))
			bw.WriteString(" -> ")
		}
		bw.WriteString(ListTerminator)
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}

// String renders g the same way Print does.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Print(&sb) // strings.Builder never fails

	return sb.String()
}
