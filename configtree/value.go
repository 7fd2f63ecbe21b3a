package configtree

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	// KindSubtree marks a nested [Node].
	KindSubtree Kind = iota
	// KindString marks a string leaf.
	KindString
	// KindInt marks an int64 leaf.
	KindInt
	// KindFloat marks a float64 leaf.
	KindFloat
	// KindList marks a list of values.
	KindList
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSubtree:
		return "subtree"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged variant stored in a [Node]: a subtree, a string, an
// int64, a float64, or a list of values. Every value carries the absolute
// path at which it sits; the path is diagnostic state and is excluded from
// equality.
type Value struct {
	// Path is the absolute slash-delimited path of this value.
	Path string

	kind Kind
	str  string
	i    int64
	f    float64
	list []Value
	node *Node
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Int returns the integer payload. Valid only for KindInt.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Valid only for KindFloat.
func (v Value) Float() float64 { return v.f }

// List returns the list payload. Valid only for KindList.
func (v Value) List() []Value { return v.list }

// Subtree returns the nested node, or nil if the value is a leaf.
func (v Value) Subtree() *Node {
	if v.kind != KindSubtree {
		return nil
	}
	return v.node
}

// Raw returns the plain (untyped) representation of the value: a
// map[string]any for subtrees, a []any for lists, and the bare scalar
// otherwise.
func (v Value) Raw() any {
	switch v.kind {
	case KindSubtree:
		return v.node.RawMap()
	case KindString:
		return v.str
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindList:
		raw := make([]any, len(v.list))
		for i, el := range v.list {
			raw[i] = el.Raw()
		}
		return raw
	default:
		return nil
	}
}

// Equal reports strict typed equality of two values. Kinds must match
// exactly: an int 12 is never equal to the string "12", and an int 12 is
// not equal to the float 12.0. Parental paths do not participate in the
// comparison. Subtrees and lists compare element for element.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindSubtree:
		return v.node.equal(other.node)
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Serialize encodes the value as "<path>:<json>", the same wire format
// produced by [Node.Serialize] for whole trees.
func (v Value) Serialize() (string, error) {
	b, err := json.Marshal(v.Raw())
	if err != nil {
		return "", fmt.Errorf("encoding config value at %q: %w", v.Path, err)
	}
	return v.Path + ":" + string(b), nil
}

// String renders the value for diagnostics.
func (v Value) String() string {
	b, _ := json.Marshal(v.Raw())
	return fmt.Sprintf("%s(path=%q %s)", v.kind, v.Path, b)
}

// clone returns a deep copy of the value rooted at path. Inserting a value
// into a tree always clones it, so no structure is ever shared between two
// trees and parental paths are always recomputed at the insertion point.
func (v Value) clone(path string) Value {
	out := Value{Path: path, kind: v.kind, str: v.str, i: v.i, f: v.f}
	switch v.kind {
	case KindSubtree:
		out.node = v.node.cloneAt(path)
	case KindList:
		out.list = make([]Value, len(v.list))
		for i, el := range v.list {
			out.list[i] = el.clone(path)
		}
	}
	return out
}

// wrap converts a raw value into the matching tagged variant rooted at path.
// Recognized shapes are nested string-keyed mappings, strings, all integer
// kinds, floats, slices, json.Number, and already-wrapped Value/*Node
// (which are deep-copied). Anything else is an *UnsupportedTypeError.
func wrap(raw any, path string) (Value, error) {
	switch val := raw.(type) {
	case Value:
		return val.clone(path), nil
	case *Node:
		return Value{Path: path, kind: KindSubtree, node: val.cloneAt(path)}, nil
	case map[string]any:
		node, err := newNodeFromMap(val, path)
		if err != nil {
			return Value{}, err
		}
		return Value{Path: path, kind: KindSubtree, node: node}, nil
	case string:
		return Value{Path: path, kind: KindString, str: val}, nil
	case json.Number:
		return wrapNumber(val, path)
	case float32:
		return Value{Path: path, kind: KindFloat, f: float64(val)}, nil
	case float64:
		return Value{Path: path, kind: KindFloat, f: val}, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{Path: path, kind: KindInt, i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(^uint64(0)>>1) {
			return Value{}, &UnsupportedTypeError{Path: path, Value: raw}
		}
		return Value{Path: path, kind: KindInt, i: int64(u)}, nil
	case reflect.Slice, reflect.Array:
		list := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := wrap(rv.Index(i).Interface(), path)
			if err != nil {
				return Value{}, err
			}
			list[i] = el
		}
		return Value{Path: path, kind: KindList, list: list}, nil
	}

	return Value{}, &UnsupportedTypeError{Path: path, Value: raw}
}

// wrapNumber preserves the integer/float distinction of a JSON number: a
// token without a fraction or exponent becomes an int, everything else a
// float.
func wrapNumber(num json.Number, path string) (Value, error) {
	if i, err := num.Int64(); err == nil {
		return Value{Path: path, kind: KindInt, i: i}, nil
	}
	f, err := num.Float64()
	if err != nil {
		return Value{}, &UnsupportedTypeError{Path: path, Value: num}
	}
	return Value{Path: path, kind: KindFloat, f: f}, nil
}
