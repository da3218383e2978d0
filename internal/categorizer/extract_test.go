package categorizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "bare", in: `{"a":1}`, want: `{"a":1}`, ok: true},
		{name: "fenced", in: "Sure!\n```json\n{\"a\": {\"b\": 2}}\n```", want: `{"a": {"b": 2}}`, ok: true},
		{name: "brace in string", in: `x {"a":"}{"} y`, want: `{"a":"}{"}`, ok: true},
		{name: "escaped quote", in: `{"a":"say \"}\""}`, want: `{"a":"say \"}\""}`, ok: true},
		{name: "first of two", in: `{"a":1} {"b":2}`, want: `{"a":1}`, ok: true},
		{name: "unbalanced then valid", in: `{ oops {"a":1}`, want: `{"a":1}`, ok: true},
		{name: "prose braces first", in: `Result {see below}: {"title":"Maths"}`, want: `{"title":"Maths"}`, ok: true},
		{name: "nested prose braces", in: "{pick {one}} then\n```json\n{\"a\":1}\n```", want: `{"a":1}`, ok: true},
		{name: "only prose braces", in: "answer in {json} please", ok: false},
		{name: "none", in: "no json here", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstObject(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	f, err := decodeFields(`{"Title":"Maths 2019","doc-type":"past paper","year":2019.0,` +
		`"confidence":0.8,"appropriate":false,"nested":{"x":[1,2]},"none":null}`)
	require.NoError(t, err)

	require.Equal(t, "Maths 2019", f.first("title"))
	require.Equal(t, "past paper", f.first("doctype", "doc_type"))
	require.Equal(t, 2019, f.int("year"))
	require.InDelta(t, 0.8, f.float("confidence"), 1e-9)

	v, ok := f.bool("appropriate")
	require.True(t, ok)
	require.False(t, v)

	_, ok = f.bool("missing")
	require.False(t, ok)
	require.Empty(t, f.first("nested"))

	_, err = decodeFields(`{"a":`)
	require.Error(t, err)
}

func TestFields_NonFinite(t *testing.T) {
	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity", "1e999"} {
		f := fields{"confidence": v, "year": v}
		require.Zero(t, f.float("confidence"), v)
		require.Zero(t, f.int("year"), v)
	}
}
