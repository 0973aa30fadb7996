package attrmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_String(t *testing.T) {
	testCases := []struct {
		description string
		m           *Map
		expect      string
	}{
		{
			description: "single entry",
			m:           MustNew(map[string]any{"foo": "bar"}),
			expect:      "Map({'foo': 'bar'})",
		},
		{
			description: "empty",
			m:           &Map{},
			expect:      "Map({})",
		},
		{
			description: "nil",
			expect:      "Map(nil)",
		},
		{
			description: "insertion order and value kinds",
			m: MustNew(Named{
				KV("n", 1),
				KV("ok", true),
				KV("none", nil),
				KV("list", []any{"a", 2}),
				KV("child", map[string]any{"b": 1, "a": "x"}),
				KV("attr", MustNew(Named{KV("x", "y")})),
				KV("quote", "it's"),
			}),
			expect: `Map({'n': 1, 'ok': true, 'none': nil, 'list': ['a', 2], 'child': {'a': 'x', 'b': 1}, 'attr': Map({'x': 'y'}), 'quote': "it's"})`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.m.String())
			assert.Equal(t, tc.expect, fmt.Sprint(tc.m))
		})
	}
}
