package metaphor

import (
	"bufio"
	"io"
	"strings"
)

const indentUnit = "    "

// Render writes the tree below root, one indent unit per level. Every text
// line, blank or not, is prefixed with its indentation.
func Render(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	for _, child := range root.Children {
		renderNode(bw, child, 0)
	}
	return bw.Flush()
}

// renderNode relies on bufio.Writer keeping the first write error for Flush.
func renderNode(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	if n.Type == NodeText {
		w.WriteString(indent)
		w.WriteString(n.Value)
		w.WriteByte('\n')
		return
	}

	w.WriteString(indent)
	w.WriteString(n.Type.String())
	w.WriteByte(':')
	if n.Value != "" {
		w.WriteByte(' ')
		w.WriteString(n.Value)
	}
	w.WriteByte('\n')

	for _, child := range n.Children {
		renderNode(w, child, depth+1)
	}
}
