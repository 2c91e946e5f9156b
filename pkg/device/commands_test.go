package device

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceCommands(t *testing.T) {
	testCases := []struct {
		name       string
		invoke     func(*Client) error
		response   string
		expectWire string
	}{
		{
			"version",
			func(c *Client) error {
				txt, err := c.Version()
				if err == nil && txt != "0.1 PIC18F16Q41 NPP-301 Characterizer" {
					return fmt.Errorf("unexpected version %q", txt)
				}
				return err
			},
			"/0v 0.1 PIC18F16Q41 NPP-301 Characterizer#",
			"/Nv!\n",
		},
		{
			"led on",
			func(c *Client) error { return c.SetLED(1) },
			"/0L 1#",
			"/NL1!\n",
		},
		{
			"led off",
			func(c *Client) error { return c.SetLED(0) },
			"/0L 0#",
			"/NL0!\n",
		},
		{
			"vref on",
			func(c *Client) error { return c.SetVREFOn(128) },
			"/0w VREF on level=128#",
			"/Nw 128 1!\n",
		},
		{
			"vref on clamps low",
			func(c *Client) error { return c.SetVREFOn(-5) },
			"/0w VREF on level=0#",
			"/Nw 0 1!\n",
		},
		{
			"vref on clamps high",
			func(c *Client) error { return c.SetVREFOn(999) },
			"/0w VREF on level=255#",
			"/Nw 255 1!\n",
		},
		{
			"vref off",
			func(c *Client) error { return c.SetVREFOff() },
			"/0w VREF off#",
			"/Nw 0 0!\n",
		},
		{
			"read adc",
			func(c *Client) error {
				txt, err := c.ReadADC()
				if err == nil && txt != "100 50 30 20 10" {
					return fmt.Errorf("unexpected readings %q", txt)
				}
				return err
			},
			"/0a 100 50 30 20 10#",
			"/Na!\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, tr := newTestClient(t)
			tr.lines = []string{tc.response}
			require.NoError(t, tc.invoke(client))
			require.Equal(t, []byte(tc.expectWire), tr.wire.Bytes())
		})
	}
}

func TestVREFVolts(t *testing.T) {
	require.InDelta(t, 0.0, VREFVolts(0), 1e-9)
	require.InDelta(t, 2.048, VREFVolts(128), 1e-9)
	require.InDelta(t, 4.080, VREFVolts(255), 1e-9)
	require.InDelta(t, 0.0, VREFVolts(-5), 1e-9)
	require.InDelta(t, 4.080, VREFVolts(999), 1e-9)
}
