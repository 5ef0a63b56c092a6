package peejay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcvoid/peejay/internal/eventlog"
)

func TestArrayTrailingComma(t *testing.T) {
	backend := eventlog.New()
	_, err := ParseString[[]eventlog.Event]("[1,2,]", backend)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrExpectedToken, perr.Code)

	backend2 := eventlog.New()
	got, err2 := ParseString[[]eventlog.Event]("[1,2,]", backend2, WithExtension(ArrayTrailingComma))
	require.NoError(t, err2)
	require.Equal(t, []eventlog.Event{
		{Kind: eventlog.BeginArray},
		{Kind: eventlog.IntegerValue, Int: 1},
		{Kind: eventlog.IntegerValue, Int: 2},
		{Kind: eventlog.EndArray},
	}, got)
}

func TestObjectTrailingComma(t *testing.T) {
	backend := eventlog.New()
	_, err := ParseString[[]eventlog.Event](`{"a":1,}`, backend)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrExpectedObjectKey, perr.Code)

	backend2 := eventlog.New()
	got, err2 := ParseString[[]eventlog.Event](`{"a":1,}`, backend2, WithExtension(ObjectTrailingComma))
	require.NoError(t, err2)
	require.Equal(t, []eventlog.Event{
		{Kind: eventlog.BeginObject},
		{Kind: eventlog.Key, Str: "a"},
		{Kind: eventlog.IntegerValue, Int: 1},
		{Kind: eventlog.EndObject},
	}, got)
}

func TestIdentifierObjectKeyExtension(t *testing.T) {
	backend := eventlog.New()
	got, err := ParseString[[]eventlog.Event](`{abc:1}`, backend, WithExtension(IdentifierObjectKey))
	require.NoError(t, err)
	require.Equal(t, []eventlog.Event{
		{Kind: eventlog.BeginObject},
		{Kind: eventlog.Key, Str: "abc"},
		{Kind: eventlog.IntegerValue, Int: 1},
		{Kind: eventlog.EndObject},
	}, got)

	backend2 := eventlog.New()
	_, err2 := ParseString[[]eventlog.Event](`{abc:1}`, backend2)
	require.Error(t, err2)
}

func TestEmptyArrayAndObject(t *testing.T) {
	backend := eventlog.New()
	got, err := ParseString[[]eventlog.Event]("[]", backend)
	require.NoError(t, err)
	require.Equal(t, []eventlog.Event{{Kind: eventlog.BeginArray}, {Kind: eventlog.EndArray}}, got)

	backend2 := eventlog.New()
	got2, err2 := ParseString[[]eventlog.Event]("{}", backend2)
	require.NoError(t, err2)
	require.Equal(t, []eventlog.Event{{Kind: eventlog.BeginObject}, {Kind: eventlog.EndObject}}, got2)
}

func TestComments(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		opts  []Option
	}{
		{"bash comment", "[1, # trailing\n 2]", []Option{WithExtension(BashComments)}},
		{"single-line comment", "[1, // trailing\n 2]", []Option{WithExtension(SingleLineComments)}},
		{"multi-line comment", "[1, /* skip */ 2]", []Option{WithExtension(MultiLineComments)}},
	} {
		t.Run(test.name, func(t *testing.T) {
			backend := eventlog.New()
			got, err := ParseString[[]eventlog.Event](test.input, backend, test.opts...)
			require.NoError(t, err)
			require.Equal(t, []eventlog.Event{
				{Kind: eventlog.BeginArray},
				{Kind: eventlog.IntegerValue, Int: 1},
				{Kind: eventlog.IntegerValue, Int: 2},
				{Kind: eventlog.EndArray},
			}, got)
		})
	}
}
