package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestCombine(t *testing.T) {
	g := Global{Electrophilicity: 0.5, Nucleophilicity: 2.0}
	neutral := []AtomCharge{{"S1", 0.31}, {"C1", -0.12}, {"N1", -0.35}}
	cation := []AtomCharge{{"S1", 0.51}, {"C1", -0.02}, {"N1", -0.20}}
	anion := []AtomCharge{{"S1", 0.11}, {"C1", -0.22}, {"N1", -0.50}}
	got, err := Combine(neutral, cation, anion, g)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]Local, len(neutral))
	for i := range neutral {
		fm := neutral[i].Charge - cation[i].Charge
		fp := anion[i].Charge - neutral[i].Charge
		want[i] = Local{
			Label:   neutral[i].Label,
			Neutral: neutral[i].Charge,
			Cation:  cation[i].Charge,
			Anion:   anion[i].Charge,
			FMinus:  fm,
			FPlus:   fp,
			// f- scales both local terms
			Nucleo:  fm * g.Nucleophilicity,
			Electro: fm * g.Electrophilicity,
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestCombineLabelMismatch(t *testing.T) {
	g := Global{Electrophilicity: 0.5, Nucleophilicity: 2.0}
	neutral := []AtomCharge{{"S1", 0.31}, {"C1", -0.12}}
	cation := []AtomCharge{{"S1", 0.51}, {"N1", -0.02}}
	anion := []AtomCharge{{"S1", 0.11}, {"C1", -0.22}}
	got, err := Combine(neutral, cation, anion, g)
	if !errors.Is(err, ErrTableMismatch) {
		t.Errorf("got %v, wanted %v\n", err, ErrTableMismatch)
	}
	if got != nil {
		t.Errorf("got %v, wanted no rows\n", got)
	}
}

func TestCombineLengthMismatch(t *testing.T) {
	g := Global{Electrophilicity: 0.5, Nucleophilicity: 2.0}
	neutral := []AtomCharge{{"S1", 0.31}, {"C1", -0.12}}
	cation := []AtomCharge{{"S1", 0.51}}
	anion := []AtomCharge{{"S1", 0.11}, {"C1", -0.22}}
	got, err := Combine(neutral, cation, anion, g)
	if !errors.Is(err, ErrTableMismatch) {
		t.Errorf("got %v, wanted %v\n", err, ErrTableMismatch)
	}
	if got != nil {
		t.Errorf("got %v, wanted no rows\n", got)
	}
}
