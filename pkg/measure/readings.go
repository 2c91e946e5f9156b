package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRref is the reference resistor value in ohms on the
// characterizer board.
const DefaultRref = 1000.0

// Readings holds one set of ADC values reported by the node. The fields
// are named for the NPP-301 sensor pins each channel samples.
type Readings struct {
	A8 int
	A2 int
	A4 int
	A5 int
	A6 int
}

// Resistances holds the computed bridge arm resistances in ohms.
type Resistances struct {
	R1 float64
	R2 float64
	R3 float64
	R4 float64
}

// ParseReadings parses the result text of a read-ADC command, a
// whitespace-separated sequence of exactly five integers.
func ParseReadings(text string) (Readings, error) {
	var r Readings
	fields := strings.Fields(text)
	if len(fields) != 5 {
		return r, fmt.Errorf("expected 5 ADC values, got %d in %q", len(fields), text)
	}
	vals := make([]int, 5)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return r, fmt.Errorf("bad ADC value %q in %q", f, text)
		}
		vals[i] = v
	}
	r.A8, r.A2, r.A4, r.A5, r.A6 = vals[0], vals[1], vals[2], vals[3], vals[4]
	return r, nil
}

// Resistances computes the four bridge arm resistances from the voltage
// divider readings, with rref the known reference resistor in ohms.
func (r Readings) Resistances(rref float64) (Resistances, error) {
	if r.A4 == 0 || r.A5 == 0 {
		return Resistances{}, fmt.Errorf("zero divider reading: a4=%d a5=%d", r.A4, r.A5)
	}
	return Resistances{
		R1: float64(r.A8-r.A2) / float64(r.A4) * rref,
		R2: float64(r.A2-r.A4) / float64(r.A4) * rref,
		R3: float64(r.A8-r.A6) / float64(r.A5) * rref,
		R4: float64(r.A6-r.A5) / float64(r.A5) * rref,
	}, nil
}

// String formats the resistances for display.
func (r Resistances) String() string {
	return fmt.Sprintf("r1=%.1f r2=%.1f r3=%.1f r4=%.1f", r.R1, r.R2, r.R3, r.R4)
}
