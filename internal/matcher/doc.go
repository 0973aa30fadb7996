// Package matcher implements the name filters accepted by CLI flags.
package matcher
