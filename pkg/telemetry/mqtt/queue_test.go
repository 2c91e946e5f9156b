package mqtt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	testCases := []struct {
		topic   string
		pattern string
		match   bool
	}{
		{"N/sample", "N/sample", true},
		{"N/sample", "N/+", true},
		{"N/sample", "+/sample", true},
		{"N/sample", "#", true},
		{"N/sample", "N/#", true},
		{"N/sample", "M/sample", false},
		{"N/sample", "N", false},
		{"N/sample", "N/sample/extra", false},
		{"N/sample/extra", "N/sample", false},
		{"N/sample/extra", "N/#", true},
	}

	for _, tc := range testCases {
		t.Run(tc.topic+"~"+tc.pattern, func(t *testing.T) {
			require.Equal(t, tc.match, MatchTopic(tc.topic, tc.pattern))
		})
	}
}

func TestClientOptionsFromURL(t *testing.T) {
	opts, prefix, err := ClientOptionsFromURL("mqtt://broker.local:1883/rs485/")
	require.NoError(t, err)
	require.Equal(t, "rs485/", prefix)
	require.Len(t, opts.Servers, 1)
	require.Equal(t, "tcp", opts.Servers[0].Scheme)
	require.Equal(t, "broker.local:1883", opts.Servers[0].Host)

	opts, _, err = ClientOptionsFromURL("mqtt://broker.local:1883/rs485/?client-id=bench-1")
	require.NoError(t, err)
	require.Equal(t, "bench-1", opts.ClientID)

	_, _, err = ClientOptionsFromURL("://bad")
	require.Error(t, err)
}
