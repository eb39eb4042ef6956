package main

import "fmt"

const (
	// conversion applied to the orbital eigenvalues before any of
	// the reactivity formulas; the reference outputs depend on this
	// exact value
	htToEv = 27.212
)

// Global holds the five global reactivity indices of one molecule
type Global struct {
	Electronegativity float64
	Hardness          float64
	Softness          float64
	Electrophilicity  float64
	Nucleophilicity   float64
}

// GlobalProps computes the global reactivity indices from the HOMO
// and LUMO energies in hartrees
func GlobalProps(homo, lumo float64) (Global, error) {
	homoE := htToEv * homo
	lumoE := htToEv * lumo
	chi := -(homoE + lumoE) / 2
	eta := lumoE - homoE
	if eta == 0 {
		return Global{}, fmt.Errorf(
			"%w: homo = lumo = %g ht", ErrDegenerateOrbitals, homo)
	}
	omega := chi * chi / (2 * eta)
	if omega == 0 {
		return Global{}, fmt.Errorf(
			"%w: zero electrophilicity", ErrDegenerateOrbitals)
	}
	return Global{
		Electronegativity: chi,
		Hardness:          eta,
		Softness:          1 / (2 * eta),
		Electrophilicity:  omega,
		Nucleophilicity:   1 / omega,
	}, nil
}
