package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	events, err := ParseKeys("12 + 7.5 =")
	require.NoError(t, err)
	require.Equal(t, []Event{Digit('1'), Digit('2'), Op(Add), Digit('7'), Dot, Digit('5'), Evaluate}, events)

	events, err = ParseKeys("{SQRT}{m+}{mr}x÷-*/%")
	require.NoError(t, err)
	require.Equal(t, []Event{Sqrt, MemoryAdd, MemoryRecall, Op(Multiply), Op(Divide), Op(Subtract), Op(Multiply), Op(Divide), Percent}, events)

	events, err = ParseKeys("")
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestParseKeysErrors(t *testing.T) {
	for _, script := range []string{"5a", "{foo}", "{sqrt", "5+(3)"} {
		t.Run(script, func(t *testing.T) {
			_, err := ParseKeys(script)
			require.ErrorIs(t, err, ErrUnknownKey)
		})
	}
}

func TestNamedKeysResolve(t *testing.T) {
	names := NamedKeys()
	require.Contains(t, names, "sqrt")
	require.IsIncreasing(t, names)
	for _, n := range names {
		_, ok := LookupNamedKey(n)
		require.True(t, ok, n)
	}
}
