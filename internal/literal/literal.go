package literal

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Dict renders entries, in iteration order, as a mapping literal.
func Dict(entries iter.Seq2[string, any]) string {
	b := &strings.Builder{}
	writeDict(b, entries)
	return b.String()
}

// Value renders a single value.
func Value(v any) string {
	b := &strings.Builder{}
	write(b, v)
	return b.String()
}

func writeDict(b *strings.Builder, entries iter.Seq2[string, any]) {
	b.WriteByte('{')
	i := 0
	for key, value := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(key))
		b.WriteString(": ")
		write(b, value)
		i++
	}
	b.WriteByte('}')
}

func write(b *strings.Builder, v any) {
	switch actual := v.(type) {
	case nil:
		b.WriteString("nil")
		return
	case string:
		b.WriteString(Quote(actual))
		return
	case bool:
		b.WriteString(strconv.FormatBool(actual))
		return
	case []byte:
		fmt.Fprintf(b, "%q", actual)
		return
	case fmt.Stringer:
		b.WriteString(actual.String())
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			fmt.Fprintf(b, "%v", v)
			return
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(x, y reflect.Value) int { return strings.Compare(x.String(), y.String()) })
		writeDict(b, func(yield func(string, any) bool) {
			for _, key := range keys {
				if !yield(key.String(), rv.MapIndex(key).Interface()) {
					return
				}
			}
		})
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("nil")
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

// Quote wraps s in single quotes, switching to double quotes when s contains
// a single quote but no double quote.
func Quote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	b := &strings.Builder{}
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case !unicode.IsPrint(r):
			if r < 0x100 {
				fmt.Fprintf(b, `\x%02x`, r)
			} else {
				fmt.Fprintf(b, `\u%04x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
