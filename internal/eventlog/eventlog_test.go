package eventlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBackendRecordsInOrder(t *testing.T) {
	b := New()

	require.NoError(t, b.BeginObject())
	require.NoError(t, b.Key([]byte("a")))
	require.NoError(t, b.BeginArray())
	require.NoError(t, b.IntegerValue(1))
	require.NoError(t, b.DoubleValue(2.5))
	require.NoError(t, b.StringValue([]byte("x")))
	require.NoError(t, b.BooleanValue(true))
	require.NoError(t, b.NullValue())
	require.NoError(t, b.EndArray())
	require.NoError(t, b.EndObject())

	want := []Event{
		{Kind: BeginObject},
		{Kind: Key, Str: "a"},
		{Kind: BeginArray},
		{Kind: IntegerValue, Int: 1},
		{Kind: DoubleValue, Double: 2.5},
		{Kind: StringValue, Str: "x"},
		{Kind: BooleanValue, Bool: true},
		{Kind: NullValue},
		{Kind: EndArray},
		{Kind: EndObject},
	}

	got, err := b.Result()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBackendCopiesBorrowedSlices(t *testing.T) {
	b := New()
	key := []byte("mutable")
	require.NoError(t, b.Key(key))
	key[0] = 'X'

	got, err := b.Result()
	require.NoError(t, err)
	require.Equal(t, "mutable", got[0].Str)
}

func TestKindString(t *testing.T) {
	for _, test := range []struct {
		kind     Kind
		expected string
	}{
		{BeginArray, "begin_array"},
		{EndArray, "end_array"},
		{BeginObject, "begin_object"},
		{Key, "key"},
		{EndObject, "end_object"},
		{StringValue, "string_value"},
		{IntegerValue, "integer_value"},
		{DoubleValue, "double_value"},
		{BooleanValue, "boolean_value"},
		{NullValue, "null_value"},
		{Kind(1000), "unknown"},
	} {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.kind.String())
		})
	}
}

func TestEventString(t *testing.T) {
	require.Equal(t, `key("a")`, Event{Kind: Key, Str: "a"}.String())
	require.Equal(t, "integer_value(5)", Event{Kind: IntegerValue, Int: 5}.String())
	require.Equal(t, "boolean_value(true)", Event{Kind: BooleanValue, Bool: true}.String())
	require.Equal(t, "null_value", Event{Kind: NullValue}.String())
}
