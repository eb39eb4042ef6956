package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var localHeader = strings.Join([]string{
	"Element",
	"Neutral",
	"(N-1)e'S=cation(+1)",
	"N+1=anion(-1)",
	"f-",
	"f+",
	"local_nucleophilicity",
	"local_electrophilicity",
}, ",")

// WriteGlobal writes the global reactivity indices to w in the fixed
// reference order. The combined layout leads with the base path and
// rounds to four places; the plain layout keeps full precision.
func WriteGlobal(w io.Writer, base string, g Global, prof Profile) error {
	nw := bufio.NewWriter(w)
	if prof.Combined {
		fmt.Fprintf(nw, "%s\n", base)
		fmt.Fprintf(nw, "electronegativity,%.4f\n", g.Electronegativity)
		fmt.Fprintf(nw, "hardness,%.4f\n", g.Hardness)
		fmt.Fprintf(nw, "softness,%.4f\n", g.Softness)
		fmt.Fprintf(nw, "global_electrophilicity,%.4f\n", g.Electrophilicity)
		fmt.Fprintf(nw, "global_nucleophilicity,%.4f\n\n", g.Nucleophilicity)
		return nw.Flush()
	}
	fmt.Fprintf(nw, "electronegativity; %s\n", formatFloat(g.Electronegativity, -1))
	fmt.Fprintf(nw, "hardness; %s\n", formatFloat(g.Hardness, -1))
	fmt.Fprintf(nw, "softness; %s\n", formatFloat(g.Softness, -1))
	fmt.Fprintf(nw, "global_electrophilicity; %s\n", formatFloat(g.Electrophilicity, -1))
	fmt.Fprintf(nw, "global_nucleophilicity; %s\n", formatFloat(g.Nucleophilicity, -1))
	return nw.Flush()
}

// WriteLocal writes the per-atom reactivity table to w as CSV, one
// row per non-hydrogen atom in table order
func WriteLocal(w io.Writer, locals []Local, prof Profile) error {
	nw := bufio.NewWriter(w)
	fmt.Fprintln(nw, localHeader)
	for _, l := range locals {
		fmt.Fprintf(nw, "%s,%s,%s,%s,%s,%s,%s,%s\n",
			l.Label,
			formatFloat(l.Neutral, prof.Digits),
			formatFloat(l.Cation, prof.Digits),
			formatFloat(l.Anion, prof.Digits),
			formatFloat(l.FMinus, prof.Digits),
			formatFloat(l.FPlus, prof.Digits),
			formatFloat(l.Nucleo, prof.Digits),
			formatFloat(l.Electro, prof.Digits),
		)
	}
	return nw.Flush()
}
