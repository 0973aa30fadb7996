package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Merge    *MergeCmd    `command:"merge"    description:"Stack YAML/JSON documents and print the merged mapping"`
	Get      *GetCmd      `command:"get"      description:"Look up one entry of the merged mapping"`
	Eval     *EvalCmd     `command:"eval"     description:"Evaluate an expression against the merged mapping"`
	Reserved *ReservedCmd `command:"reserved" description:"List reserved attribute names"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "merge":
		o.Merge = &MergeCmd{}
	case "get":
		o.Get = &GetCmd{}
	case "eval":
		o.Eval = &EvalCmd{}
	case "reserved":
		o.Reserved = &ReservedCmd{}
	}
}
