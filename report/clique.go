package report

import (
	"fmt"
	"strings"

	"github.com/MrLoydHD/mei-aa-p1/clique"
)

const rule = "-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-="

// FormatClique renders the result block printed by the solve command.
// A nil clique renders "No Cliques found...".
func FormatClique(c *clique.Clique, header string) string {
	var b strings.Builder
	b.WriteString(rule + "\n\n")
	if c == nil {
		b.WriteString(" No Cliques found...\n\n")
	} else {
		fmt.Fprintf(&b, " %s\n\n", header)
		fmt.Fprintf(&b, " Max Weight Clique:\n   %v\n\n", c.Vertices)
		fmt.Fprintf(&b, " Max Weight:\n   %d\n\n", c.Weight)
	}
	b.WriteString(rule + "\n")

	return b.String()
}
