package configtree

import (
	"fmt"

	"dario.cat/mergo"
)

// Change is one entry of a tree diff: the leaf key, the value it held in the
// receiver, and the value it holds in the compared tree. Old may be nil when
// a change is constructed by hand without the previous value; [Node.Diff]
// always populates it.
type Change struct {
	Key string
	Old *Value
	New *Value
}

// Diff compares the receiver against other, one leaf key at a time. For
// every leaf key of the receiver that also resolves in other, a [Change] is
// emitted when the two values are not strictly equal (see [Value.Equal]; no
// type coercion is performed, so an int 12 and a string "12" always differ).
//
// The comparison is one-directional and non-exhaustive: keys missing from
// other are skipped, and keys present only in other are never visited. It
// answers "what changed among my existing keys", not the symmetric delta.
func (n *Node) Diff(other *Node) []Change {
	var changes []Change
	for _, key := range n.Keys() {
		newVal, err := other.Get(key)
		if err != nil {
			// not present on the other side
			continue
		}
		oldVal, err := n.Get(key)
		if err != nil {
			continue
		}
		if !oldVal.Equal(newVal) {
			o, nw := oldVal, newVal
			changes = append(changes, Change{Key: key, Old: &o, New: &nw})
		}
	}
	return changes
}

// ApplyDiff sets every change's key to its new value, in entry order; later
// entries for the same key win. Entries with an empty key or a nil new
// value are skipped.
func (n *Node) ApplyDiff(changes []Change) error {
	for _, change := range changes {
		if change.Key == "" || change.New == nil {
			continue
		}
		if err := n.Set(change.Key, *change.New); err != nil {
			return fmt.Errorf("applying diff entry %q: %w", change.Key, err)
		}
	}
	return nil
}

// Merge folds a raw nested mapping into the tree: values present in raw
// override existing entries, everything else is preserved. The merged
// result replaces the node's entries with freshly wrapped values, so paths
// stay consistent.
func (n *Node) Merge(raw map[string]any) error {
	merged := n.RawMap()
	if err := mergo.Merge(&merged, raw, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging raw config: %w", err)
	}
	rebuilt, err := newNodeFromMap(merged, n.Path)
	if err != nil {
		return err
	}
	n.entries = rebuilt.entries
	return nil
}
