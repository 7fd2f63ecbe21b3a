package configtree

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Node is one level of the configuration tree: a mapping from key to typed
// [Value]. The zero value is not usable; construct nodes with [NewNode] or
// [NewNodeFrom].
type Node struct {
	// Path is the absolute slash-delimited path of this node from the tree
	// root. Empty at the true root. The field is denormalized state computed
	// at insertion time, not a live pointer into the parent.
	Path string

	entries map[string]Value
}

// Item pairs a flattened leaf path with its value, as produced by
// [Node.DeepItems].
type Item struct {
	Key   string
	Value Value
}

// KV is one input pair for [FromKeyValueList].
type KV struct {
	Key   string
	Value any
}

// NewNode returns an empty tree rooted at the empty path.
func NewNode() *Node {
	return &Node{entries: make(map[string]Value)}
}

// NewNodeFrom builds a tree rooted at path from a raw nested mapping,
// recursively wrapping every entry into its typed variant. It fails with an
// *UnsupportedTypeError if any nested value has an unrecognized shape.
func NewNodeFrom(raw map[string]any, path string) (*Node, error) {
	return newNodeFromMap(raw, path)
}

// FromKeyValueList builds a tree by applying [Node.Set] for every pair in
// order.
func FromKeyValueList(pairs []KV) (*Node, error) {
	n := NewNode()
	for _, kv := range pairs {
		if err := n.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func newNodeFromMap(raw map[string]any, path string) (*Node, error) {
	n := &Node{Path: path, entries: make(map[string]Value, len(raw))}
	for key, val := range raw {
		wrapped, err := wrap(val, childPath(path, key))
		if err != nil {
			return nil, err
		}
		n.entries[key] = wrapped
	}
	return n, nil
}

// Set stores raw at the slash-delimited path, wrapping it into the matching
// typed variant tagged with its absolute path. Intermediate subtrees are
// created as needed. It returns a *LeafConflictError when an intermediate
// segment already holds a leaf, and an *UnsupportedTypeError when raw has an
// unrecognized shape. Inserted subtrees and values are deep-copied, never
// aliased.
func (n *Node) Set(path string, raw any) error {
	head, tail, hasTail := splitPath(path)

	// leading and duplicate slashes are transparent
	if head == "" && hasTail {
		return n.Set(tail, raw)
	}

	if !hasTail {
		wrapped, err := wrap(raw, childPath(n.Path, head))
		if err != nil {
			return err
		}
		n.entries[head] = wrapped
		return nil
	}

	existing, ok := n.entries[head]
	if !ok {
		child := &Node{Path: childPath(n.Path, head), entries: make(map[string]Value)}
		existing = Value{Path: child.Path, kind: KindSubtree, node: child}
		n.entries[head] = existing
	} else if existing.kind != KindSubtree {
		return &LeafConflictError{Path: childPath(n.Path, head), Segment: head}
	}
	return existing.node.Set(tail, raw)
}

// Get resolves the slash-delimited path to a value. It fails with an error
// matching [ErrNotFound] when any segment is absent or when the walk would
// descend past a leaf.
func (n *Node) Get(path string) (Value, error) {
	val, _, err := n.lookup(path)
	if err != nil {
		return Value{}, fmt.Errorf("config path %q: %w", path, ErrNotFound)
	}
	return val, nil
}

// MustGet is [Node.Get] with full diagnostics: on failure it returns a
// *NotFoundError carrying the tree snapshot, the full requested path, and
// the segment at which resolution failed.
func (n *Node) MustGet(path string) (Value, error) {
	val, failedAt, err := n.lookup(path)
	if err != nil {
		return Value{}, &NotFoundError{Tree: n.String(), Path: path, Key: failedAt}
	}
	return val, nil
}

// lookup walks the path and returns the value, or the segment that failed.
func (n *Node) lookup(path string) (Value, string, error) {
	head, tail, hasTail := splitPath(path)

	if head == "" && hasTail {
		return n.lookup(tail)
	}

	val, ok := n.entries[head]
	if !ok {
		return Value{}, head, ErrNotFound
	}
	if !hasTail {
		return val, "", nil
	}
	if val.kind != KindSubtree {
		// descending past a leaf
		return Value{}, head, ErrNotFound
	}
	return val.node.lookup(tail)
}

// Keys returns every leaf path in the tree, depth-first, with each node's
// keys visited in sorted order. Subtree entries are expanded recursively and
// never appear themselves. The view is computed fresh on every call.
func (n *Node) Keys() []string {
	var keys []string
	for _, key := range n.sortedKeys() {
		val := n.entries[key]
		if val.kind == KindSubtree {
			for _, sub := range val.node.Keys() {
				keys = append(keys, key+"/"+sub)
			}
		} else {
			keys = append(keys, key)
		}
	}
	return keys
}

// DeepItems returns every leaf path paired with its wrapped value, in the
// same order as [Node.Keys].
func (n *Node) DeepItems() []Item {
	var items []Item
	for _, key := range n.sortedKeys() {
		val := n.entries[key]
		if val.kind == KindSubtree {
			for _, sub := range val.node.DeepItems() {
				items = append(items, Item{Key: key + "/" + sub.Key, Value: sub.Value})
			}
		} else {
			items = append(items, Item{Key: key, Value: val})
		}
	}
	return items
}

// Len returns the number of direct entries in the node.
func (n *Node) Len() int { return len(n.entries) }

// RawMap returns the plain nested-mapping representation of the node, with
// all type tags stripped.
func (n *Node) RawMap() map[string]any {
	raw := make(map[string]any, len(n.entries))
	for key, val := range n.entries {
		raw[key] = val.Raw()
	}
	return raw
}

// String renders the node for diagnostics: its parental path and the plain
// JSON encoding of its subtree.
func (n *Node) String() string {
	b, _ := json.Marshal(n.RawMap())
	return fmt.Sprintf("Node(path=%q subtree=%s)", n.Path, b)
}

func (n *Node) sortedKeys() []string {
	keys := make([]string, 0, len(n.entries))
	for key := range n.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (n *Node) equal(other *Node) bool {
	if len(n.entries) != len(other.entries) {
		return false
	}
	for key, val := range n.entries {
		otherVal, ok := other.entries[key]
		if !ok || !val.Equal(otherVal) {
			return false
		}
	}
	return true
}

// cloneAt deep-copies the node, rebasing it and all descendants at path.
func (n *Node) cloneAt(path string) *Node {
	out := &Node{Path: path, entries: make(map[string]Value, len(n.entries))}
	for key, val := range n.entries {
		out.entries[key] = val.clone(childPath(path, key))
	}
	return out
}

// childPath joins a parental path with a key.
func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "/" + key
}

// splitPath splits a path on the first slash into head and tail.
func splitPath(path string) (head, tail string, hasTail bool) {
	if idx := strings.Index(path, "/"); idx >= 0 {
		return path[:idx], path[idx+1:], true
	}
	return path, "", false
}
