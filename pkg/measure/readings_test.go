package measure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReadings(t *testing.T) {
	r, err := ParseReadings("100 50 30 20 10")
	require.NoError(t, err)
	require.Equal(t, Readings{A8: 100, A2: 50, A4: 30, A5: 20, A6: 10}, r)

	_, err = ParseReadings("100 50 30 20")
	require.Error(t, err)
	_, err = ParseReadings("100 50 30 20 10 5")
	require.Error(t, err)
	_, err = ParseReadings("100 50 thirty 20 10")
	require.Error(t, err)
	_, err = ParseReadings("")
	require.Error(t, err)
}

func TestResistances(t *testing.T) {
	r := Readings{A8: 100, A2: 50, A4: 30, A5: 20, A6: 10}
	res, err := r.Resistances(DefaultRref)
	require.NoError(t, err)
	require.InDelta(t, (100.0-50.0)/30.0*1000.0, res.R1, 1e-9)
	require.InDelta(t, (50.0-30.0)/30.0*1000.0, res.R2, 1e-9)
	require.InDelta(t, (100.0-10.0)/20.0*1000.0, res.R3, 1e-9)
	require.InDelta(t, (10.0-20.0)/20.0*1000.0, res.R4, 1e-9)
}

func TestResistancesZeroDivider(t *testing.T) {
	_, err := Readings{A8: 100, A2: 50, A4: 0, A5: 20, A6: 10}.Resistances(DefaultRref)
	require.Error(t, err)
	_, err = Readings{A8: 100, A2: 50, A4: 30, A5: 0, A6: 10}.Resistances(DefaultRref)
	require.Error(t, err)
}
