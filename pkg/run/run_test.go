package run

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerWait(t *testing.T) {
	errBoom := errors.New("boom")
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return nil }),
		RunFunc(func(context.Context) error { return errBoom }),
		RunFunc(func(context.Context) error { return context.Canceled }),
	).Wait()
	var agg *AggregatedError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Errors, 1)
	require.ErrorIs(t, agg.Errors[0], errBoom)
}

func TestRunnerWaitNoErrors(t *testing.T) {
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return nil }),
		RunFunc(func(context.Context) error { return nil }),
	).Wait()
	require.NoError(t, err)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	errs.Add(nil, errors.New("a"), nil, errors.New("b"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "a")
	require.Contains(t, err.Error(), "b")
}
