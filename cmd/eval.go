package cmd

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
)

// EvalCmd evaluates an expr-lang expression with the merged entries as its
// environment, e.g. `attrmap eval -e 'port + 1' base.yaml`.
type EvalCmd struct {
	Expr string   `short:"e" long:"expr" description:"expression to evaluate" required:"yes"`
	Set  []string `short:"s" long:"set" description:"key=value override applied after all documents (repeatable)"`
	JSON bool     `long:"json" description:"print result as JSON"`
}

func (c *EvalCmd) Execute(args []string) error {
	m, err := mergeSources(context.Background(), args, c.Set)
	if err != nil {
		return err
	}
	value, err := expr.Eval(c.Expr, m.Dict())
	if err != nil {
		return fmt.Errorf("failed to evaluate %q: %w", c.Expr, err)
	}
	return printValue(value, c.JSON)
}
