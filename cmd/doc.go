// Package cmd implements all sub-commands that make up the attrmap
// command-line interface.  Each file in this directory registers a single
// sub-command (merge, get, eval, reserved).  The plumbing that is shared
// between commands such as loading and stacking source documents is located in
// shared.go.
package cmd
