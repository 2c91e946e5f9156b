// Package device provides the command layer for a sensor node.
package device

// Each command to the node MCU is encoded as the first character of the
// command text; any required data follows that character. The node
// answers with a message starting with the same command character. A
// command that is not successful answers with a message containing the
// word "error" together with some more information.
//
// The command vocabulary of the characterizer firmware:
//
//	v  echo firmware version
//	L  set indicator LED on/off
//	w  set analog reference output (level and on/off flag)
//	a  report ADC readings
