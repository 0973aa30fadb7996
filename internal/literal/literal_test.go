package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	var testCases = []struct {
		in     string
		expect string
	}{
		{"foo", `'foo'`},
		{"", `''`},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`it's "quoted"`, `'it\'s "quoted"'`},
		{"a\nb\tc", `'a\nb\tc'`},
		{`back\slash`, `'back\\slash'`},
		{"\x00", `'\x00'`},
	}

	for i, tc := range testCases {
		if got := Quote(tc.in); got != tc.expect {
			t.Fatalf("[%d] Quote(%q) = %s; expected %s", i, tc.in, got, tc.expect)
		}
	}
}

func TestValue(t *testing.T) {
	var testCases = []struct {
		description string
		in          any
		expect      string
	}{
		{description: "nil", in: nil, expect: "nil"},
		{description: "int", in: 42, expect: "42"},
		{description: "float", in: 1.5, expect: "1.5"},
		{description: "bool", in: false, expect: "false"},
		{description: "nil slice", in: []string(nil), expect: "nil"},
		{description: "array", in: [2]int{1, 2}, expect: "[1, 2]"},
		{description: "nested", in: map[string]any{"b": []any{"x", nil}, "a": map[string]int{"z": 1}}, expect: "{'a': {'z': 1}, 'b': ['x', nil]}"},
		{description: "non string keys", in: map[int]int{1: 2}, expect: "map[1:2]"},
		{description: "bytes", in: []byte("hi"), expect: `"hi"`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Value(tc.in), tc.description)
	}
}
