package cmd

import (
	"fmt"

	"github.com/viant/attrmap/attrmap"
	"github.com/viant/attrmap/internal/matcher"
)

// ReservedCmd lists the attribute names that cannot be set or deleted through
// attribute access.
type ReservedCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name prefix filter, * for all" default:"*"`
}

func (c *ReservedCmd) Execute(_ []string) error {
	for _, name := range attrmap.ReservedNames() {
		if !matcher.Match(c.Pattern, name) {
			continue
		}
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}
