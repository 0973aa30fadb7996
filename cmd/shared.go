package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/viant/afs"
	"github.com/viant/attrmap/attrmap"
	"github.com/viant/attrmap/internal/literal"
	"gopkg.in/yaml.v3"
)

// stdout is swapped by tests.
var stdout io.Writer = os.Stdout

// mergeSources downloads every document, stacks them left to right and applies
// the key=value overrides last.
func mergeSources(ctx context.Context, URLs []string, overrides []string) (*attrmap.Map, error) {
	fs := afs.New()
	sources := make([]any, 0, len(URLs)+1)
	for _, URL := range URLs {
		m, err := loadMap(ctx, fs, URL)
		if err != nil {
			return nil, err
		}
		sources = append(sources, m)
	}
	named, err := parseOverrides(overrides)
	if err != nil {
		return nil, err
	}
	sources = append(sources, named)
	return attrmap.New(sources...)
}

// loadMap decodes a document as JSON when its extension says so, as YAML
// otherwise.
func loadMap(ctx context.Context, fs afs.Service, URL string) (*attrmap.Map, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", URL, err)
	}
	m := &attrmap.Map{}
	if strings.EqualFold(path.Ext(URL), ".json") {
		err = m.UnmarshalJSON(data)
	} else {
		err = yaml.Unmarshal(data, m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", URL, err)
	}
	return m, nil
}

// parseOverrides turns key=value items into named entries. Values are parsed
// as YAML scalars so that port=8080 yields an int.
func parseOverrides(overrides []string) (attrmap.Named, error) {
	named := make(attrmap.Named, 0, len(overrides))
	for _, item := range overrides {
		key, raw, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", item)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		named = append(named, attrmap.KV(key, value))
	}
	return named, nil
}

func printMap(m *attrmap.Map, format string) error {
	switch format {
	case "", "repr":
		_, err := fmt.Fprintln(stdout, m.String())
		return err
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case "dump":
		spew.Fdump(stdout, m.Dict())
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func printValue(value any, asJSON bool) error {
	value = callNiladic(value)
	if asJSON {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	_, err := fmt.Fprintln(stdout, literal.Value(value))
	return err
}

// callNiladic invokes bound operations such as the "keys" attribute so that
// the CLI prints their result rather than a function value.
func callNiladic(value any) any {
	fn := reflect.ValueOf(value)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return value
	}
	if fn.Type().NumIn() != 0 || fn.Type().NumOut() != 1 {
		return value
	}
	return fn.Call(nil)[0].Interface()
}
