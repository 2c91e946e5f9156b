package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/picdaq/rs485.go/pkg/measure"
)

// Given measured bridge arm resistances, report balance resistor options
// from the E24 series that bring the output offset below a tolerance.

func main() {
	if len(os.Args) != 6 {
		fmt.Println("Expected command-line arguments for R1, R2, R3, R4 and unbalanceTol")
		os.Exit(1)
	}
	vals := make([]float64, 5)
	for i, arg := range os.Args[1:] {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Printf("Bad value %q: %v\n", arg, err)
			os.Exit(1)
		}
		vals[i] = val
	}
	b := measure.Bridge{R1: vals[0], R2: vals[1], R3: vals[2], R4: vals[3]}
	tol := vals[4]
	fmt.Printf("bridge= %+v unbalanceTol=%v\n", b, tol)
	fmt.Printf("initial unbalance v2-v6= %v\n", b.Unbalance())
	candidates := measure.FindBalance(b, tol)
	if len(candidates) == 0 {
		fmt.Println("No candidate solutions made the cut.")
	} else {
		for _, c := range candidates {
			fmt.Printf("RA=%.1f RB=%.1f RC=%.1f RD=%.1f v2mv6=%.1e (RAB=%.1f RCD=%.1f)\n",
				c.RA, c.RB, c.RC, c.RD, c.Unbalance(),
				measure.ParallelR(c.RA, c.RB), measure.ParallelR(c.RC, c.RD))
		}
	}
	fmt.Println("Done.")
}
