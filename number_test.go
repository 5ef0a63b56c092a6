package peejay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcvoid/peejay/internal/eventlog"
)

func TestNumberGrammar(t *testing.T) {
	for _, test := range []struct {
		name    string
		input   string
		opts    []Option
		want    eventlog.Event
		wantErr ErrorCode
	}{
		{name: "zero", input: "0", want: eventlog.Event{Kind: eventlog.IntegerValue, Int: 0}},
		{name: "negative integer", input: "-42", want: eventlog.Event{Kind: eventlog.IntegerValue, Int: -42}},
		{name: "leading plus with extension", input: "+7", opts: []Option{WithExtension(LeadingPlus)},
			want: eventlog.Event{Kind: eventlog.IntegerValue, Int: 7}},
		{name: "simple float", input: "3.5", want: eventlog.Event{Kind: eventlog.DoubleValue, Double: 3.5}},
		{name: "exponent", input: "1e2", want: eventlog.Event{Kind: eventlog.IntegerValue, Int: 100}},
		{name: "negative exponent", input: "1e-2", want: eventlog.Event{Kind: eventlog.DoubleValue, Double: 0.01}},
		{name: "trailing dot with extension", input: "1.", opts: []Option{WithExtension(Numbers)},
			want: eventlog.Event{Kind: eventlog.IntegerValue, Int: 1}},
		{name: "leading dot with extension", input: ".5", opts: []Option{WithExtension(Numbers)},
			want: eventlog.Event{Kind: eventlog.DoubleValue, Double: 0.5}},
		{name: "hex integer with extension", input: "0x1F", opts: []Option{WithExtension(Numbers)},
			want: eventlog.Event{Kind: eventlog.IntegerValue, Int: 31}},
		{name: "NaN with extension", input: "NaN", opts: []Option{WithExtension(Numbers)},
			want: eventlog.Event{Kind: eventlog.DoubleValue, Double: math.NaN()}},
		{name: "negative Infinity with extension", input: "-Infinity", opts: []Option{WithExtension(Numbers)},
			want: eventlog.Event{Kind: eventlog.DoubleValue, Double: math.Inf(-1)}},
		{name: "max int64", input: "9223372036854775807",
			want: eventlog.Event{Kind: eventlog.IntegerValue, Int: math.MaxInt64}},
		{name: "min int64", input: "-9223372036854775808",
			want: eventlog.Event{Kind: eventlog.IntegerValue, Int: math.MinInt64}},
		{name: "positive overflow", input: "99999999999999999999", wantErr: ErrNumberOutOfRange},
		{name: "negative overflow", input: "-99999999999999999999", wantErr: ErrNumberOutOfRange},
		{name: "bare zero then digit is out of range", input: "00", wantErr: ErrNumberOutOfRange},
		{name: "dangling minus has no digits", input: "-", wantErr: ErrExpectedDigits},
		{name: "dangling exponent sign", input: "1e+", wantErr: ErrExpectedDigits},
	} {
		t.Run(test.name, func(t *testing.T) {
			backend := eventlog.New()
			got, err := ParseString[[]eventlog.Event](test.input, backend, test.opts...)

			if test.wantErr != ErrNone {
				require.Error(t, err)
				perr, ok := err.(*Error)
				require.True(t, ok)
				require.Equal(t, test.wantErr, perr.Code)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, test.want.Kind, got[0].Kind)
			switch test.want.Kind {
			case eventlog.IntegerValue:
				require.Equal(t, test.want.Int, got[0].Int)
			case eventlog.DoubleValue:
				if math.IsNaN(test.want.Double) {
					require.True(t, math.IsNaN(got[0].Double))
				} else if math.IsInf(test.want.Double, 0) {
					require.Equal(t, test.want.Double, got[0].Double)
				} else {
					require.InDelta(t, test.want.Double, got[0].Double, 1e-9)
				}
			}
		})
	}
}
