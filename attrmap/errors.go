package attrmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource is matched by construction errors.
	ErrInvalidSource = errors.New("invalid source")
	// ErrKeyNotFound is matched by lookups and deletes of absent keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrReserved is matched by attribute writes/deletes of reserved names.
	ErrReserved = errors.New("reserved attribute")
)

// SourceError reports a source that could not be converted to key/value pairs.
type SourceError struct {
	Index int // position of the offending source, -1 for decoded documents
	Err   error
}

func (e *SourceError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid source: %v", e.Err)
	}
	return fmt.Sprintf("invalid source #%d: %v", e.Index, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrInvalidSource }

// KeyError reports an absent key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string { return fmt.Sprintf("key %q not found", e.Key) }

func (e *KeyError) Is(target error) bool { return target == ErrKeyNotFound }

// ReservedError reports an attribute write or delete that targets a reserved name.
type ReservedError struct {
	Name string
}

func (e *ReservedError) Error() string {
	return "cannot set reserved attribute `" + e.Name + "`"
}

func (e *ReservedError) Is(target error) bool { return target == ErrReserved }

var errNilSource = errors.New("source is nil")
