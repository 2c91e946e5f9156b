package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/picdaq/rs485.go/pkg/measure"
)

func TestSampleEncodeDecode(t *testing.T) {
	res := measure.Resistances{R1: 1666.7, R2: 666.7, R3: 4500.0, R4: -500.0}
	s := &Sample{
		Node:        "N",
		Time:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Readings:    measure.Readings{A8: 100, A2: 50, A4: 30, A5: 20, A6: 10},
		Resistances: &res,
	}
	payload, err := s.Encode()
	require.NoError(t, err)

	got, err := DecodeSample(payload)
	require.NoError(t, err)
	require.Equal(t, s, got)

	_, err = DecodeSample([]byte("not json"))
	require.Error(t, err)
}

func TestSampleTopic(t *testing.T) {
	require.Equal(t, "N/sample", SampleTopic('N'))
}
