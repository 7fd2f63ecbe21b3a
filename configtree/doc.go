// Package configtree implements the hierarchical, path-addressed
// configuration data model used by the ssconfig client.
//
// A tree is a [Node]: a mapping from string keys to typed [Value] entries.
// Values are a tagged union of a nested subtree, a string, an int64, a
// float64, or a list. Every node and value carries the absolute
// slash-delimited path at which it sits, which makes serialized payloads and
// lookup errors self-describing.
//
// Paths are interpreted segment by segment on the first "/": an empty
// leading segment is skipped, so "/a/b", "//a/b" and "a/b" address the same
// entry. Setting a value at a multi-segment path creates intermediate
// subtrees as needed; descending through an existing leaf is an error.
//
// The wire format produced by [Node.Serialize] and consumed by [Deserialize]
// is "<path>:<json>", where the JSON part is the plain nested encoding of
// the tree with no type tags. Integer/float distinctions are preserved by
// decoding JSON numbers explicitly.
//
// A Node is not safe for concurrent mutation. Callers that share a tree
// across goroutines must treat it as immutable after construction or
// serialize writers externally.
package configtree
