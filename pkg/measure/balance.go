package measure

import "math"

// E24Values are the candidate balance resistor values, drawn from the
// E24 preferred number series, 1 ohm to 91 kilohm.
var E24Values = []float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
	3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	10.0, 11.0, 12.0, 13.0, 15.0, 16.0, 18.0, 20.0, 22.0, 24.0, 27.0, 30.0,
	33.0, 36.0, 39.0, 43.0, 47.0, 51.0, 56.0, 62.0, 68.0, 75.0, 82.0, 91.0,
	100.0, 110.0, 120.0, 130.0, 150.0, 160.0, 180.0, 200.0, 220.0, 240.0, 270.0, 300.0,
	330.0, 360.0, 390.0, 430.0, 470.0, 510.0, 560.0, 620.0, 680.0, 750.0, 820.0, 910.0,
	1.0e3, 1.1e3, 1.2e3, 1.3e3, 1.5e3, 1.6e3, 1.8e3, 2.0e3, 2.2e3, 2.4e3, 2.7e3, 3.0e3,
	3.3e3, 3.6e3, 3.9e3, 4.3e3, 4.7e3, 5.1e3, 5.6e3, 6.2e3, 6.8e3, 7.5e3, 8.2e3, 9.1e3,
	10.0e3, 11.0e3, 12.0e3, 13.0e3, 15.0e3, 16.0e3, 18.0e3, 20.0e3, 22.0e3, 24.0e3, 27.0e3, 30.0e3,
	33.0e3, 36.0e3, 39.0e3, 43.0e3, 47.0e3, 51.0e3, 56.0e3, 62.0e3, 68.0e3, 75.0e3, 82.0e3, 91.0e3,
}

// Bridge models the NPP-301 sensor bridge with measured arm resistances
// R1-R4 and candidate balance resistors RA-RD applied in parallel pairs
// across the output pins.
type Bridge struct {
	R1, R2, R3, R4 float64
	RA, RB, RC, RD float64
}

// ParallelR computes the resistance of two resistors in parallel. A zero
// value stands for an unpopulated position and short-circuits the pair.
func ParallelR(ra, rb float64) float64 {
	if ra == 0.0 || rb == 0.0 {
		return 0.0
	}
	return 1.0 / (1.0/ra + 1.0/rb)
}

// Unbalance computes the voltage difference v2-v6 across the bridge
// output pins, per unit of excitation voltage.
func (b Bridge) Unbalance() float64 {
	rab := ParallelR(b.RA, b.RB)
	rcd := ParallelR(b.RC, b.RD)
	// currents in each arm of the bridge
	i12 := 1.0 / (b.R1 + b.R2 + rab)
	i34 := 1.0 / (b.R3 + b.R4 + rcd)
	// voltages at output pins 2 and 6
	v2 := 1.0 - b.R1*i12
	v6 := 1.0 - b.R3*i34
	return v2 - v6
}

// FindBalance searches pairs of E24 balance resistors that bring the
// bridge unbalance below tol. The sign of the initial unbalance picks
// which side of the bridge receives the resistors.
func FindBalance(b Bridge, tol float64) []Bridge {
	var candidates []Bridge
	test := func(ra, rb, rc, rd float64) {
		cand := b
		cand.RA, cand.RB, cand.RC, cand.RD = ra, rb, rc, rd
		if math.Abs(cand.Unbalance()) < tol {
			candidates = append(candidates, cand)
		}
	}
	if b.Unbalance() > 0.0 {
		for _, rc := range E24Values {
			for _, rd := range E24Values {
				test(0.0, 0.0, rc, rd)
			}
		}
	} else {
		for _, ra := range E24Values {
			for _, rb := range E24Values {
				test(ra, rb, 0.0, 0.0)
			}
		}
	}
	return candidates
}
