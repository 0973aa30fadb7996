package cmd

import (
	"context"
	"fmt"

	"github.com/viant/attrmap/attrmap"
)

// GetCmd looks up a single name in the merged mapping either by key or, with
// --attr, by attribute so that reserved names resolve to map operations.
type GetCmd struct {
	Name string   `short:"n" long:"name" description:"key or attribute name" required:"yes"`
	Attr bool     `short:"a" long:"attr" description:"use attribute access"`
	Set  []string `short:"s" long:"set" description:"key=value override applied after all documents (repeatable)"`
	JSON bool     `long:"json" description:"print result as JSON"`
}

func (c *GetCmd) Execute(args []string) error {
	m, err := mergeSources(context.Background(), args, c.Set)
	if err != nil {
		return err
	}
	value, err := c.lookup(m)
	if err != nil {
		return err
	}
	return printValue(value, c.JSON)
}

func (c *GetCmd) lookup(m *attrmap.Map) (any, error) {
	if c.Attr {
		value, err := m.Attr(c.Name)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", c.Name, err)
		}
		return value, nil
	}
	return m.Get(c.Name)
}
