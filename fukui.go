package main

import "fmt"

// A Local holds the charges and derived reactivity indices for one
// non-hydrogen atom across the three oxidation states
type Local struct {
	Label   string
	Neutral float64
	Cation  float64
	Anion   float64
	FMinus  float64
	FPlus   float64
	Nucleo  float64
	Electro float64
}

// Combine joins the three charge tables by position and derives the
// local reactivity indices from the Fukui differences. The tables
// must have the same length and the same label at every index; any
// mismatch aborts the combination since there is no way to re-align
// the atoms.
func Combine(neutral, cation, anion []AtomCharge, g Global) ([]Local, error) {
	if len(neutral) != len(cation) || len(neutral) != len(anion) {
		return nil, fmt.Errorf("%w: %d, %d, and %d atoms",
			ErrTableMismatch, len(neutral), len(cation), len(anion))
	}
	ret := make([]Local, len(neutral))
	for i := range neutral {
		if neutral[i].Label != cation[i].Label ||
			neutral[i].Label != anion[i].Label {
			return nil, fmt.Errorf(
				"%w: atom %d is %q, %q, and %q",
				ErrTableMismatch, i, neutral[i].Label,
				cation[i].Label, anion[i].Label)
		}
		fm := neutral[i].Charge - cation[i].Charge
		fp := anion[i].Charge - neutral[i].Charge
		ret[i] = Local{
			Label:   neutral[i].Label,
			Neutral: neutral[i].Charge,
			Cation:  cation[i].Charge,
			Anion:   anion[i].Charge,
			FMinus:  fm,
			FPlus:   fp,
			// both local terms scale f-, not f+, following
			// the reference formula set
			Nucleo:  fm * g.Nucleophilicity,
			Electro: fm * g.Electrophilicity,
		}
	}
	return ret, nil
}
