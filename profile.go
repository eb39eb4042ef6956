package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// A Profile describes one log layout as data: the anchor strings to
// search for, the whitespace-delimited token positions holding the
// values, and the output conventions tied to that layout. Format
// drift in a future program version should be a profile change, not a
// code change.
type Profile struct {
	Name string

	// HOMO/LUMO extraction
	PopMarker  string
	OccMarker  string
	VirtMarker string
	LumoField  int

	// charge table extraction
	SectionMarker string
	// TableMarker is the header searched for after SectionMarker;
	// empty means the section marker heads the table itself
	TableMarker  string
	SkipRows     int
	TableEnd     string
	ElementField int
	ChargeField  int

	// output conventions
	GlobalSuffix string
	LocalSuffix  string
	// Combined appends the local table to the global output file
	Combined bool
	// Digits rounds table values to that many decimal places; a
	// negative value keeps full precision
	Digits int
}

// Mulliken is the profile for the Mulliken atomic charge layout
func Mulliken() Profile {
	return Profile{
		Name:          "mulliken",
		PopMarker:     "Population analysis using the SCF density.",
		OccMarker:     "Alpha  occ. eigenvalues",
		VirtMarker:    "Alpha virt. eigenvalues",
		LumoField:     4,
		SectionMarker: "Mulliken atomic charges:",
		SkipRows:      2,
		TableEnd:      " Sum",
		ElementField:  1,
		ChargeField:   2,
		GlobalSuffix:  "_global_electro.txt",
		LocalSuffix:   "_local_electro.txt",
		Digits:        -1,
	}
}

// NBO is the profile for the natural population analysis layout
// printed by the NBO program
func NBO() Profile {
	return Profile{
		Name:          "nbo",
		PopMarker:     "Population analysis using the SCF density.",
		OccMarker:     "Alpha  occ. eigenvalues",
		VirtMarker:    "Alpha virt. eigenvalues",
		LumoField:     4,
		SectionMarker: "Gaussian NBO Version 3.1",
		TableMarker:   "Summary of Natural Population Analysis:",
		SkipRows:      6,
		TableEnd:      " =======================================================================",
		ElementField:  0,
		ChargeField:   2,
		GlobalSuffix:  "_electro.csv",
		LocalSuffix:   "_electro.csv",
		Combined:      true,
		Digits:        4,
	}
}

// LoadProfile overlays the TOML file at filename onto base, leaving
// alone any field the file does not set
func LoadProfile(filename string, base Profile) (Profile, error) {
	byts, err := os.ReadFile(filename)
	if err != nil {
		return base, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	if err := toml.Unmarshal(byts, &base); err != nil {
		return base, err
	}
	return base, nil
}
