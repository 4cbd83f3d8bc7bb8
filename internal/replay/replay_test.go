package replay

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
)

func TestScriptRendersEachStep(t *testing.T) {
	var buf bytes.Buffer
	got, err := Script(context.Background(), &buf, "12+7=", 0)
	require.NoError(t, err)
	require.Equal(t, "19", got)

	out := buf.String()
	require.Contains(t, out, "[1/5]")
	require.Contains(t, out, "12 + 7")
	require.Contains(t, out, "[5/5]")
}

func TestScriptRejectsUnknownKey(t *testing.T) {
	var buf bytes.Buffer
	_, err := Script(context.Background(), &buf, "1+{nope}", 0)
	require.ErrorIs(t, err, calc.ErrUnknownKey)
	require.Empty(t, buf.String())
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	p := New(&buf, time.Hour)
	got, err := p.Run(ctx, []calc.Event{calc.Digit('4'), calc.Digit('2')})
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, "0", got)
}

func TestRunWaitsBetweenKeys(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, 10*time.Millisecond)
	start := time.Now()
	got, err := p.Run(context.Background(), []calc.Event{calc.Digit('1'), calc.Digit('2'), calc.Digit('3')})
	require.NoError(t, err)
	require.Equal(t, "123", got)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
