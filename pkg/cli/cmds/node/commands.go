// Package node provides the shell commands for a characterizer node.
package node

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/picdaq/rs485.go/pkg/cli/sh"
	"github.com/picdaq/rs485.go/pkg/device"
	"github.com/picdaq/rs485.go/pkg/measure"
)

var (
	// VersionCmd queries the node firmware version.
	VersionCmd = ishell.Cmd{
		Name:    "version",
		Aliases: []string{"v"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			txt, err := s.Client().Version()
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, map[string]string{"version": txt}, txt)
		}),
	}

	// LEDCmd sets the indicator LED.
	LEDCmd = ishell.Cmd{
		Name: "led",
		Help: "0|1",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("VALUE required"))
				return
			}
			val, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("Invalid VALUE: %v", err))
				return
			}
			if err = sh.ShellFrom(c).Client().SetLED(val); err != nil {
				c.Err(err)
			}
		}),
	}

	// VREFCmd sets the analog reference output.
	VREFCmd = ishell.Cmd{
		Name: "vref",
		Help: "LEVEL(0-255)|off",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("LEVEL required"))
				return
			}
			if c.Args[0] == "off" {
				if err := s.Client().SetVREFOff(); err != nil {
					c.Err(err)
				}
				return
			}
			level, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("Invalid LEVEL: %v", err))
				return
			}
			if err = s.Client().SetVREFOn(level); err != nil {
				c.Err(err)
				return
			}
			c.Printf("VREF %.3f V nominal\n", device.VREFVolts(level))
		}),
	}

	// ADCCmd reads the ADC channels once.
	ADCCmd = ishell.Cmd{
		Name:    "adc",
		Aliases: []string{"a"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			sampleOnce(c)
		}),
	}

	// MonitorCmd samples repeatedly and reports resistances.
	MonitorCmd = ishell.Cmd{
		Name:    "monitor",
		Aliases: []string{"mon"},
		Help:    "[COUNT [INTERVAL]]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			count := 10
			interval := sh.MonitorInterval
			var err error
			if len(c.Args) >= 1 {
				if count, err = strconv.Atoi(c.Args[0]); err != nil {
					c.Err(fmt.Errorf("Invalid COUNT: %v", err))
					return
				}
			}
			if len(c.Args) >= 2 {
				if interval, err = time.ParseDuration(c.Args[1]); err != nil {
					c.Err(fmt.Errorf("Invalid INTERVAL: %v", err))
					return
				}
			}
			for i := 0; i < count; i++ {
				if i > 0 {
					time.Sleep(interval)
				}
				if !sampleOnce(c) {
					return
				}
			}
		}),
	}

	// BalanceCmd searches balance resistor options for measured arms.
	BalanceCmd = ishell.Cmd{
		Name: "balance",
		Help: "R1 R2 R3 R4 TOL",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 5 {
				c.Err(fmt.Errorf("R1 R2 R3 R4 TOL required"))
				return
			}
			vals := make([]float64, 5)
			for i, arg := range c.Args {
				val, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					c.Err(fmt.Errorf("Invalid value %q: %v", arg, err))
					return
				}
				vals[i] = val
			}
			b := measure.Bridge{R1: vals[0], R2: vals[1], R3: vals[2], R4: vals[3]}
			c.Printf("initial unbalance v2-v6=%v\n", b.Unbalance())
			candidates := measure.FindBalance(b, vals[4])
			if len(candidates) == 0 {
				c.Println("No candidate solutions made the cut.")
				return
			}
			for _, cand := range candidates {
				c.Printf("RA=%.1f RB=%.1f RC=%.1f RD=%.1f v2mv6=%.1e (RAB=%.1f RCD=%.1f)\n",
					cand.RA, cand.RB, cand.RC, cand.RD, cand.Unbalance(),
					measure.ParallelR(cand.RA, cand.RB), measure.ParallelR(cand.RC, cand.RD))
			}
		},
	}
)

func sampleOnce(c *ishell.Context) bool {
	s := sh.ShellFrom(c)
	txt, err := s.Client().ReadADC()
	if err != nil {
		c.Err(err)
		return false
	}
	if device.NodeRejected(txt) {
		c.Err(fmt.Errorf("node rejected read: %s", txt))
		return false
	}
	readings, err := measure.ParseReadings(txt)
	if err != nil {
		c.Err(err)
		return false
	}
	res, err := readings.Resistances(measure.DefaultRref)
	if err != nil {
		c.Err(err)
		return false
	}
	s.Print(c,
		map[string]interface{}{"readings": readings, "resistances": res},
		fmt.Sprintf("adc readings a8=%d a2=%d a4=%d a5=%d a6=%d  resistances %s",
			readings.A8, readings.A2, readings.A4, readings.A5, readings.A6, res))
	return true
}

func init() {
	sh.AddCmds(
		&VersionCmd,
		&LEDCmd,
		&VREFCmd,
		&ADCCmd,
		&MonitorCmd,
		&BalanceCmd,
	)
}
