package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// An AtomCharge is one row of a charge table: an element symbol
// suffixed with its occurrence count in the table (the second carbon
// is C2) and the partial charge assigned to that atom.
type AtomCharge struct {
	Label  string
	Charge float64
}

// ReadLog reads filename and returns its lines. The whole file is
// needed at once because the interesting sections are anchored on the
// last occurrence of their markers.
func ReadLog(filename string) ([]string, error) {
	byts, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	return strings.Split(string(byts), "\n"), nil
}

// lastIndex returns the index of the last line containing marker, or
// -1 if no line does
func lastIndex(lines []string, marker string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(lines[i], marker) {
			return i
		}
	}
	return -1
}

// firstIndex returns the index of the first line containing marker, or
// -1 if no line does
func firstIndex(lines []string, marker string) int {
	for i := range lines {
		if strings.Contains(lines[i], marker) {
			return i
		}
	}
	return -1
}

// HomoLumo extracts the HOMO and LUMO energies, in hartrees, from the
// last population analysis section of a log. The HOMO is the last
// token of the last occupied-eigenvalue line, and the LUMO is the
// token at prof.LumoField of the first virtual-eigenvalue line; both
// positions come from the log layout, not from anything
// self-describing in the line.
func HomoLumo(lines []string, prof Profile, filename string) (
	homo, lumo float64, err error) {
	pop := lastIndex(lines, prof.PopMarker)
	if pop < 0 {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrMissingMarker, prof.PopMarker, filename)
	}
	lines = lines[pop:]
	occ := lastIndex(lines, prof.OccMarker)
	if occ < 0 {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrMissingMarker, prof.OccMarker, filename)
	}
	virt := firstIndex(lines, prof.VirtMarker)
	if virt < 0 {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrMissingMarker, prof.VirtMarker, filename)
	}
	fields := strings.Fields(lines[occ])
	homo, err = strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrBadFloat, lines[occ], filename)
	}
	fields = strings.Fields(lines[virt])
	if len(fields) <= prof.LumoField {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrBadFloat, lines[virt], filename)
	}
	lumo, err = strconv.ParseFloat(fields[prof.LumoField], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q in %s",
			ErrBadFloat, lines[virt], filename)
	}
	return homo, lumo, nil
}

// ChargeTable extracts the per-atom partial charges from the last
// charge analysis section of a log. Hydrogen rows are dropped, and
// each remaining element gets an occurrence-count suffix so repeated
// elements stay distinct.
func ChargeTable(lines []string, prof Profile, filename string) (
	[]AtomCharge, error) {
	sec := lastIndex(lines, prof.SectionMarker)
	if sec < 0 {
		return nil, fmt.Errorf("%w: %q in %s",
			ErrMissingMarker, prof.SectionMarker, filename)
	}
	lines = lines[sec:]
	if prof.TableMarker != "" {
		tab := firstIndex(lines, prof.TableMarker)
		if tab < 0 {
			return nil, fmt.Errorf("%w: %q in %s",
				ErrMissingMarker, prof.TableMarker, filename)
		}
		lines = lines[tab:]
	}
	if len(lines) <= prof.SkipRows {
		return nil, fmt.Errorf("%w: %q in %s",
			ErrMissingMarker, prof.TableEnd, filename)
	}
	lines = lines[prof.SkipRows:]
	var (
		ret   []AtomCharge
		count = make(map[string]int)
	)
	for _, line := range lines {
		if strings.HasPrefix(line, prof.TableEnd) {
			return ret, nil
		}
		fields := strings.Fields(line)
		if len(fields) <= prof.ElementField ||
			len(fields) <= prof.ChargeField {
			return nil, fmt.Errorf("%w: %q in %s",
				ErrBadFloat, line, filename)
		}
		el := fields[prof.ElementField]
		if el == "H" {
			continue
		}
		v, err := strconv.ParseFloat(fields[prof.ChargeField], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %s",
				ErrBadFloat, line, filename)
		}
		count[el]++
		ret = append(ret, AtomCharge{
			Label:  fmt.Sprintf("%s%d", el, count[el]),
			Charge: v,
		})
	}
	return nil, fmt.Errorf("%w: %q in %s",
		ErrMissingMarker, prof.TableEnd, filename)
}
