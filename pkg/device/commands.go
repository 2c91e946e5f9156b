package device

import "fmt"

// VREFFullScale is the full-scale output of the node's DAC in volts.
// The physical output for a given level is (level/256) * 4.096 V; this
// scaling is a property of the hardware, not of the protocol.
const VREFFullScale = 4.096

// VREFVolts converts an 8-bit DAC level to the nominal output voltage.
func VREFVolts(level int) float64 {
	return float64(clampLevel(level)) / 256.0 * VREFFullScale
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 255 {
		return 255
	}
	return level
}

// Version queries the node firmware version string.
func (c *Client) Version() (string, error) {
	return c.Exec("v")
}

// SetLED sets the indicator LED. The value is passed verbatim; the
// firmware uses only its least-significant bit.
func (c *Client) SetLED(value int) error {
	_, err := c.Exec(fmt.Sprintf("L%d", value))
	return err
}

// SetVREFOn enables the analog reference output. The level is an 8-bit
// integer, clamped to [0, 255] before transmission.
func (c *Client) SetVREFOn(level int) error {
	_, err := c.Exec(fmt.Sprintf("w %d 1", clampLevel(level)))
	return err
}

// SetVREFOff disables the analog reference output.
func (c *Client) SetVREFOff() error {
	_, err := c.Exec("w 0 0")
	return err
}

// ReadADC reports the current ADC values. The result is a
// whitespace-separated sequence of integers; see the measure package for
// interpretation.
func (c *Client) ReadADC() (string, error) {
	return c.Exec("a")
}
