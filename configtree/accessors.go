package configtree

import "fmt"

// Typed accessors resolve a path with [Node.Get] and assert the leaf kind.
// Unlike [Node.Diff], which compares strictly, the only conversion performed
// here is the lossless int-to-float widening in [Node.Float64].

// Str returns the string leaf at path. (Node.String is the fmt.Stringer
// diagnostic rendering, hence the short name.)
func (n *Node) Str(path string) (string, error) {
	val, err := n.Get(path)
	if err != nil {
		return "", err
	}
	if val.Kind() != KindString {
		return "", fmt.Errorf("config path %q holds a %s, not a string", path, val.Kind())
	}
	return val.Str(), nil
}

// Int64 returns the integer leaf at path.
func (n *Node) Int64(path string) (int64, error) {
	val, err := n.Get(path)
	if err != nil {
		return 0, err
	}
	if val.Kind() != KindInt {
		return 0, fmt.Errorf("config path %q holds a %s, not an int", path, val.Kind())
	}
	return val.Int(), nil
}

// Float64 returns the float leaf at path. An integer leaf is widened.
func (n *Node) Float64(path string) (float64, error) {
	val, err := n.Get(path)
	if err != nil {
		return 0, err
	}
	switch val.Kind() {
	case KindFloat:
		return val.Float(), nil
	case KindInt:
		return float64(val.Int()), nil
	default:
		return 0, fmt.Errorf("config path %q holds a %s, not a number", path, val.Kind())
	}
}

// Strings returns the list leaf at path as a string slice; every element
// must be a string.
func (n *Node) Strings(path string) ([]string, error) {
	val, err := n.Get(path)
	if err != nil {
		return nil, err
	}
	if val.Kind() != KindList {
		return nil, fmt.Errorf("config path %q holds a %s, not a list", path, val.Kind())
	}
	out := make([]string, len(val.List()))
	for i, el := range val.List() {
		if el.Kind() != KindString {
			return nil, fmt.Errorf("config path %q element %d holds a %s, not a string", path, i, el.Kind())
		}
		out[i] = el.Str()
	}
	return out, nil
}
