package attrmap

import (
	"reflect"

	"github.com/viant/attrmap/internal/literal"
)

var typeName = reflect.TypeOf(Map{}).Name()

// String renders m as Map({'foo': 'bar'}) with entries in insertion order.
// The output is for debugging only and is not meant to be parsed.
func (m *Map) String() string {
	if m == nil {
		return typeName + "(nil)"
	}
	return typeName + "(" + literal.Dict(m.All()) + ")"
}
