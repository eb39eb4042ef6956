package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
)

// Flags
var (
	logfile = flag.String("path", "",
		"path to the neutral-state log file")
	mode = flag.String("mode", "mulliken",
		"charge partitioning to extract (mulliken or nbo)")
	profile = flag.String("profile", "",
		"TOML file overriding fields of the selected format profile")
)

// Errors
var (
	ErrFileNotFound       = errors.New("log file not found")
	ErrMissingMarker      = errors.New("marker not found in log")
	ErrBadFloat           = errors.New("malformed numeric field in log")
	ErrDegenerateOrbitals = errors.New("degenerate orbital energies")
	ErrTableMismatch      = errors.New("charge tables do not correspond")
)

// Run executes the whole pipeline for the neutral-state log at infile:
// extract the frontier orbital energies and the three charge tables,
// derive the global and local reactivity indices, and write the output
// files next to infile. The cation and anion logs are expected at
// sibling paths with +1 and -1 inserted before the extension. Nothing
// is written until every computation has succeeded.
func Run(infile string, prof Profile) error {
	base := TrimExt(infile)
	ext := path.Ext(infile)
	lines, err := ReadLog(infile)
	if err != nil {
		return err
	}
	homo, lumo, err := HomoLumo(lines, prof, infile)
	if err != nil {
		return err
	}
	global, err := GlobalProps(homo, lumo)
	if err != nil {
		return err
	}
	neutral, err := ChargeTable(lines, prof, infile)
	if err != nil {
		return err
	}
	var tables [2][]AtomCharge
	for i, sib := range []string{base + "+1" + ext, base + "-1" + ext} {
		lines, err := ReadLog(sib)
		if err != nil {
			return err
		}
		tables[i], err = ChargeTable(lines, prof, sib)
		if err != nil {
			return err
		}
	}
	locals, err := Combine(neutral, tables[0], tables[1], global)
	if err != nil {
		return err
	}
	if prof.Combined {
		f, err := os.Create(base + prof.GlobalSuffix)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := WriteGlobal(f, base, global, prof); err != nil {
			return err
		}
		return WriteLocal(f, locals, prof)
	}
	f, err := os.Create(base + prof.GlobalSuffix)
	if err != nil {
		return err
	}
	err = WriteGlobal(f, base, global, prof)
	f.Close()
	if err != nil {
		return err
	}
	g, err := os.Create(base + prof.LocalSuffix)
	if err != nil {
		return err
	}
	defer g.Close()
	return WriteLocal(g, locals, prof)
}

func main() {
	flag.Parse()
	if *logfile == "" {
		log.Fatalln("-path flag is required, aborting")
	}
	var prof Profile
	switch *mode {
	case "mulliken":
		prof = Mulliken()
	case "nbo":
		prof = NBO()
	default:
		log.Fatalf("unrecognized mode %q, aborting\n", *mode)
	}
	if *profile != "" {
		var err error
		prof, err = LoadProfile(*profile, prof)
		if err != nil {
			log.Fatalf("loading profile %s: %v\n", *profile, err)
		}
	}
	if err := Run(*logfile, prof); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("wrote %s\n", TrimExt(*logfile)+prof.GlobalSuffix)
	if !prof.Combined {
		fmt.Printf("wrote %s\n", TrimExt(*logfile)+prof.LocalSuffix)
	}
}
