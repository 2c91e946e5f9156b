package device

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/picdaq/rs485.go/pkg/bus"
)

type fakeTransport struct {
	wire  bytes.Buffer
	lines []string
}

func (t *fakeTransport) ResetInput() error {
	return nil
}

func (t *fakeTransport) Write(p []byte) (int, error) {
	return t.wire.Write(p)
}

func (t *fakeTransport) Flush() error {
	return nil
}

func (t *fakeTransport) ReadLine() (string, error) {
	if len(t.lines) == 0 {
		return "", nil
	}
	line := t.lines[0]
	t.lines = t.lines[1:]
	return line, nil
}

func newTestClient(t *testing.T) (*Client, *fakeTransport) {
	tr := &fakeTransport{}
	node, err := bus.NewNode('N', tr)
	require.NoError(t, err)
	return NewClient(node), tr
}

func TestExec(t *testing.T) {
	testCases := []struct {
		name     string
		cmd      string
		response string
		expect   string
	}{
		{"version", "v", "/0v 1.0.3#", "1.0.3"},
		{"adc readings", "a", "/0a 100 50 30 20 10#", "100 50 30 20 10"},
		{"strips one code char only", "v", "/0vv1.2.3#", "v1.2.3"},
		{"soft error returned as data", "a", "/0a error: timeout#", "error: timeout"},
		{"empty result", "L1", "/0L#", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, tr := newTestClient(t)
			tr.lines = []string{tc.response}
			result, err := client.Exec(tc.cmd)
			require.NoError(t, err)
			require.Equal(t, tc.expect, result)
		})
	}
}

func TestExecWire(t *testing.T) {
	client, tr := newTestClient(t)
	tr.lines = []string{"/0v1.0.3#"}
	result, err := client.Exec("v")
	require.NoError(t, err)
	require.Equal(t, "1.0.3", result)
	require.Equal(t, []byte("/Nv!\n"), tr.wire.Bytes())
}

func TestExecCodeMismatch(t *testing.T) {
	testCases := []struct {
		name     string
		response string
	}{
		{"wrong code", "/0x nope#"},
		{"empty payload", "/0#"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, tr := newTestClient(t)
			tr.lines = []string{tc.response}
			_, err := client.Exec("v")
			var merr *CodeMismatchError
			require.ErrorAs(t, err, &merr)
			require.Equal(t, byte('v'), merr.Code)
		})
	}
}

func TestExecInvalidFrame(t *testing.T) {
	client, tr := newTestClient(t)
	tr.lines = []string{"BADFRAME"}
	_, err := client.Exec("v")
	var ferr *bus.InvalidFrameError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, "BADFRAME", ferr.Raw)
}

func TestExecEmptyCommand(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.Exec("")
	require.ErrorIs(t, err, bus.ErrEmptyCommand)
}

func TestNodeRejected(t *testing.T) {
	require.True(t, NodeRejected("error: no value"))
	require.True(t, NodeRejected("a error: timeout"))
	require.False(t, NodeRejected("VREF on level=128"))
	require.False(t, NodeRejected(""))
	// case-sensitive by contract
	require.False(t, NodeRejected("ERROR"))
}
