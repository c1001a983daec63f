package variants

import (
	"fmt"
	"sort"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// DefaultVariant is the key consulted when no variant is requested and the
// leaf used when a branch is resolved directly.
const DefaultVariant = "default"

type nodeKind uint8

const (
	kindNone nodeKind = iota
	kindText
	kindFunc
	kindBranch
)

// Node is one element of a style table: a string leaf, a function leaf or a
// branch. The zero Node represents an absent entry.
type Node struct {
	kind     nodeKind
	text     string
	fn       func() string
	children map[string]Node
}

// Text returns a leaf holding a literal style string.
func Text(value string) Node {
	return Node{kind: kindText, text: value}
}

// Func returns a leaf whose style string is produced by fn on every lookup.
// fn must be deterministic. A nil fn yields the zero Node.
func Func(fn func() string) Node {
	if fn == nil {
		return Node{}
	}
	return Node{kind: kindFunc, fn: fn}
}

// Branch returns a node with the supplied children. The map is copied so the
// resulting tree cannot be mutated through the caller's reference.
func Branch(children map[string]Node) Node {
	copied := make(map[string]Node, len(children))
	for key, child := range children {
		copied[key] = child
	}
	return Node{kind: kindBranch, children: copied}
}

// IsZero reports whether the node is absent.
func (n Node) IsZero() bool {
	return n.kind == kindNone
}

// IsLeaf reports whether the node yields a style string directly.
func (n Node) IsLeaf() bool {
	return n.kind == kindText || n.kind == kindFunc
}

// IsBranch reports whether the node has children.
func (n Node) IsBranch() bool {
	return n.kind == kindBranch
}

// Child returns the child stored under key. Leaves and absent nodes have no
// children.
func (n Node) Child(key string) (Node, bool) {
	if n.kind != kindBranch {
		return Node{}, false
	}
	child, ok := n.children[key]
	if !ok || child.IsZero() {
		return Node{}, false
	}
	return child, true
}

// Keys returns the branch keys in lexical order.
func (n Node) Keys() []string {
	if n.kind != kindBranch {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// truthy mirrors the existence check used by Has: empty string leaves count
// as missing.
func (n Node) truthy() bool {
	switch n.kind {
	case kindText:
		return n.text != ""
	case kindFunc, kindBranch:
		return true
	default:
		return false
	}
}

// evaluate produces the leaf value. A panicking function leaf is converted
// into ErrLeafPanicked.
func (n Node) evaluate() (value string, err error) {
	switch n.kind {
	case kindText:
		return n.text, nil
	case kindFunc:
		defer func() {
			if r := recover(); r != nil {
				value = ""
				err = fmt.Errorf("%w: %v", stylekiterrors.ErrLeafPanicked, r)
			}
		}()
		return n.fn(), nil
	case kindBranch:
		return "", stylekiterrors.ErrNotLeaf
	default:
		return "", stylekiterrors.ErrStyleNotFound
	}
}

// resolveNode evaluates a leaf, or the default leaf of a branch.
func resolveNode(n Node) (string, error) {
	if n.IsBranch() {
		def, ok := n.Child(DefaultVariant)
		if !ok || !def.IsLeaf() {
			return "", stylekiterrors.ErrNotLeaf
		}
		return def.evaluate()
	}
	return n.evaluate()
}
