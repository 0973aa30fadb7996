package attrmap

import (
	"slices"
)

// ReservedNamesAttr is the attribute name that yields the reserved name set.
const ReservedNamesAttr = "reserved_names"

// operations binds every reserved attribute name to the Map operation it
// resolves to. Populated in init to break the Attr -> operations cycle.
var operations map[string]func(m *Map) any

var reservedNames []string

func init() {
	operations = map[string]func(m *Map) any{
		"all":           func(m *Map) any { return m.All },
		"attr":          func(m *Map) any { return m.Attr },
		"clear":         func(m *Map) any { return m.Clear },
		"contains":      func(m *Map) any { return m.Contains },
		"copy":          func(m *Map) any { return m.Copy },
		"decode":        func(m *Map) any { return m.Decode },
		"delattr":       func(m *Map) any { return m.DelAttr },
		"delete":        func(m *Map) any { return m.Delete },
		"dict":          func(m *Map) any { return m.Dict },
		"equal":         func(m *Map) any { return m.Equal },
		"get":           func(m *Map) any { return m.Get },
		"getor":         func(m *Map) any { return m.GetOr },
		"items":         func(m *Map) any { return m.Items },
		"keys":          func(m *Map) any { return m.Keys },
		"len":           func(m *Map) any { return m.Len },
		"lookup":        func(m *Map) any { return m.Lookup },
		"marshaljson":   func(m *Map) any { return m.MarshalJSON },
		"marshalyaml":   func(m *Map) any { return m.MarshalYAML },
		"pop":           func(m *Map) any { return m.Pop },
		"popitem":       func(m *Map) any { return m.PopItem },
		"set":           func(m *Map) any { return m.Set },
		"setattr":       func(m *Map) any { return m.SetAttr },
		"setdefault":    func(m *Map) any { return m.SetDefault },
		"string":        func(m *Map) any { return m.String },
		"unmarshaljson": func(m *Map) any { return m.UnmarshalJSON },
		"unmarshalyaml": func(m *Map) any { return m.UnmarshalYAML },
		"update":        func(m *Map) any { return m.Update },
		"values":        func(m *Map) any { return m.Values },
	}
	reservedNames = make([]string, 0, len(operations)+1)
	for name := range operations {
		reservedNames = append(reservedNames, name)
	}
	reservedNames = append(reservedNames, ReservedNamesAttr)
	slices.Sort(reservedNames)
}

// ReservedNames returns the sorted attribute names that SetAttr and DelAttr
// refuse.
func ReservedNames() []string {
	return slices.Clone(reservedNames)
}

// IsReserved reports whether name is a reserved attribute name.
func IsReserved(name string) bool {
	if name == ReservedNamesAttr {
		return true
	}
	_, ok := operations[name]
	return ok
}

// Attr resolves name the way attribute access does: "reserved_names" yields
// ReservedNames(), any other reserved name yields the bound operation (for
// example Attr("keys") returns m.Keys as a func() []string), everything else
// is a key lookup with Get semantics.
func (m *Map) Attr(name string) (any, error) {
	if name == ReservedNamesAttr {
		return ReservedNames(), nil
	}
	if op, ok := operations[name]; ok {
		return op(m), nil
	}
	return m.Get(name)
}

// SetAttr stores value under name unless name is reserved.
func (m *Map) SetAttr(name string, value any) error {
	if IsReserved(name) {
		return &ReservedError{Name: name}
	}
	m.Set(name, value)
	return nil
}

// DelAttr deletes name unless it is reserved.
func (m *Map) DelAttr(name string) error {
	if IsReserved(name) {
		return &ReservedError{Name: name}
	}
	return m.Delete(name)
}
