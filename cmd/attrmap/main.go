package main

import (
	"os"

	"github.com/viant/attrmap/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
