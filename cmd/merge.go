package cmd

import (
	"context"
)

// MergeCmd stacks source documents (later ones win) and prints the result.
type MergeCmd struct {
	Set    []string `short:"s" long:"set" description:"key=value override applied after all documents (repeatable)"`
	Output string   `short:"o" long:"output" description:"output format" choice:"repr" choice:"json" choice:"yaml" choice:"dump" default:"repr"`
}

func (c *MergeCmd) Execute(args []string) error {
	m, err := mergeSources(context.Background(), args, c.Set)
	if err != nil {
		return err
	}
	return printMap(m, c.Output)
}
