package configtree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by tree operations. Callers should use
// [errors.Is] to match against these values; the typed errors below all
// unwrap to one of them.
var (
	// ErrNotFound is returned when a lookup path names an entry that does
	// not exist, or when the walk descends past a leaf value.
	ErrNotFound = errors.New("config entry not found")

	// ErrMalformedConfig is returned when a serialized payload cannot be
	// decoded (missing path separator or invalid JSON).
	ErrMalformedConfig = errors.New("malformed config payload")
)

// NotFoundError is the rich lookup failure returned by [Node.MustGet]. It
// carries enough context (the full requested path, the specific segment that
// failed, and a snapshot of the tree at the time of failure) to diagnose a
// missing mandatory entry without a debugger.
type NotFoundError struct {
	// Tree is a textual snapshot of the node the lookup started from.
	Tree string
	// Path is the full requested path.
	Path string
	// Key is the path segment at which the lookup failed.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mandatory entry for path %q was not found in config %s: failed at key %q", e.Path, e.Tree, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// LeafConflictError is returned by [Node.Set] when an intermediate path
// segment already holds a non-subtree value. The original entry is left
// untouched.
type LeafConflictError struct {
	// Path is the absolute path of the conflicting leaf.
	Path string
	// Segment is the key that holds the leaf.
	Segment string
}

func (e *LeafConflictError) Error() string {
	return fmt.Sprintf("cannot descend into leaf value at %q (segment %q is not a subtree)", e.Path, e.Segment)
}

// UnsupportedTypeError is returned by [Node.Set] and [Deserialize] when a
// raw value is none of the recognized shapes (nested mapping, string,
// integer, float, list).
type UnsupportedTypeError struct {
	// Path is the absolute path the value was being stored at.
	Path string
	// Value is the rejected raw value.
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported config value of type %T at path %q", e.Value, e.Path)
}

// MalformedConfigError is returned by [Deserialize] when a raw payload is
// not a valid "<path>:<json>" string.
type MalformedConfigError struct {
	// Reason describes what part of the payload was rejected.
	Reason string
	// Err is the underlying decode error, if any.
	Err error
}

func (e *MalformedConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed config payload: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed config payload: %s", e.Reason)
}

func (e *MalformedConfigError) Unwrap() error { return ErrMalformedConfig }
