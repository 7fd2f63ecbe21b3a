package configtree

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serialize encodes the tree as "<path>:<json>", where <path> is the node's
// parental path (empty at the root) and <json> is the plain nested encoding
// of all values with no type tags. Types are reconstructed from JSON's own
// primitive kinds on decode.
func (n *Node) Serialize() (string, error) {
	b, err := json.Marshal(n.RawMap())
	if err != nil {
		return "", fmt.Errorf("encoding config tree at %q: %w", n.Path, err)
	}
	return n.Path + ":" + string(b), nil
}

// Deserialize decodes a "<path>:<json>" payload into a typed value rooted
// at the embedded parental path. The payload is split on the first colon;
// the remainder is decoded as JSON with the integer/float distinction
// preserved, then recursively wrapped.
//
// It fails with an error matching [ErrMalformedConfig] when the separator is
// missing, the JSON is invalid, or trailing data follows the JSON document.
func Deserialize(raw string) (Value, error) {
	idx := strings.Index(raw, ":")
	if idx < 0 {
		return Value{}, &MalformedConfigError{Reason: "missing ':' path separator"}
	}
	path, content := raw[:idx], raw[idx+1:]

	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return Value{}, &MalformedConfigError{Reason: "invalid JSON content", Err: err}
	}
	if dec.More() {
		return Value{}, &MalformedConfigError{Reason: "trailing data after JSON content"}
	}

	return wrap(decoded, path)
}

// DeserializeTree is [Deserialize] restricted to payloads whose root is a
// subtree; it fails with an error matching [ErrMalformedConfig] when the
// payload decodes to a bare leaf.
func DeserializeTree(raw string) (*Node, error) {
	val, err := Deserialize(raw)
	if err != nil {
		return nil, err
	}
	if val.Kind() != KindSubtree {
		return nil, &MalformedConfigError{Reason: fmt.Sprintf("payload root is a %s, not a subtree", val.Kind())}
	}
	return val.Subtree(), nil
}
