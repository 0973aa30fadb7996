// Package literal renders Go values as plain mapping literals for debug
// representations, e.g. {'foo': 'bar', 'n': 1, 'tags': ['a', 'b']}.
package literal
