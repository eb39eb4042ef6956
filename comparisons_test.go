package main

import "math"

// return whether a and b agree to within eps at every index
func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// return whether a and b hold the same labels and charges, the latter
// to within eps
func compCharges(a, b []AtomCharge, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label {
			return false
		}
		if math.Abs(a[i].Charge-b[i].Charge) > eps {
			return false
		}
	}
	return true
}
