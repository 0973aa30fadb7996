// Package attrmap provides Map, an insertion-ordered mapping of string keys to
// arbitrary values whose entries can be addressed either by key (Get, Set,
// Delete) or by attribute name (Attr, SetAttr, DelAttr).
//
// Both access modes are interchangeable for every name outside the reserved
// set. Reserved names are the attribute names of the Map's own operations
// (keys, items, update, ...) plus "reserved_names"; Attr resolves them to the
// bound operation and SetAttr/DelAttr refuse them. Key access is not
// restricted, so Set("keys", v) stores an ordinary entry that only Get can
// reach.
//
// A Map is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking.
package attrmap
