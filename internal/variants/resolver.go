package variants

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Options configures a Resolver.
type Options struct {
	// Logger receives a warning for every fallback taken. Nil discards.
	Logger *logger.Logger
	// Fallbacks are installed over DefaultFallbacks.
	Fallbacks map[string]string
}

// Resolver answers style lookups against one immutable style table. Only its
// fallback table is mutable.
type Resolver struct {
	table     Node
	fallbacks *FallbackTable
	log       *logger.Logger
}

// New creates a Resolver over table. A table that is not a branch behaves as
// an empty one.
func New(table Node, opts Options) *Resolver {
	if !table.IsBranch() {
		table = Branch(nil)
	}

	fallbacks := NewFallbackTable(DefaultFallbacks())
	for key, value := range opts.Fallbacks {
		fallbacks.Add(key, value)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		table:     table,
		fallbacks: fallbacks,
		log:       log.WithFields(map[string]any{"component": "resolver"}),
	}
}

// Get resolves table[category][variant]. An empty variant selects "default",
// unless category is a dot-path such as "button.primary", which is split into
// its category and variant. With an explicit variant the category is a single
// key, so Get("button.primary", "small") looks up table["button.primary"].
// A dotted variant walks deeper levels. Unresolvable paths go through the
// fallback chain.
func (r *Resolver) Get(category, variant string) string {
	category, variant = splitVariant(category, variant)
	value, err := r.lookup(category, variant)
	if err == nil {
		return value
	}
	return r.fallback(category, variant, err)
}

// Lookup is Get without the fallback chain. Failures are reported as
// *errors.ResolutionError.
func (r *Resolver) Lookup(category, variant string) (string, error) {
	category, variant = splitVariant(category, variant)
	return r.lookup(category, variant)
}

// Sized resolves table[category][variant][size]. When the variant has no such
// size the request degrades to Get(category, variant).
func (r *Resolver) Sized(category, variant, size string) string {
	if value, err := r.LookupSized(category, variant, size); err == nil {
		return value
	}
	return r.Get(category, variant)
}

// LookupSized is Sized without degradation.
func (r *Resolver) LookupSized(category, variant, size string) (string, error) {
	category, variant = splitVariant(category, variant)
	path := fallbackKey(category, variant) + "." + size

	node, err := r.node(category, variant)
	if err != nil {
		return "", stylekiterrors.NewResolutionError(path, err)
	}
	if size == "" || !node.IsBranch() {
		return "", stylekiterrors.NewResolutionError(path, stylekiterrors.ErrStyleNotFound)
	}
	child, ok := node.Child(size)
	if !ok {
		return "", stylekiterrors.NewResolutionError(path, stylekiterrors.ErrStyleNotFound)
	}
	value, err := resolveNode(child)
	if err != nil {
		return "", stylekiterrors.NewResolutionError(path, err)
	}
	return value, nil
}

// Nested walks dotPath from the root of the table, stopping at the deepest
// node reached, and resolves that node. Unresolvable paths fall back using
// the first key as category and the remainder as variant.
func (r *Resolver) Nested(dotPath string) string {
	value, err := r.LookupPath(dotPath)
	if err == nil {
		return value
	}
	category, variant := splitPath(dotPath)
	return r.fallback(category, variant, err)
}

// LookupPath is Nested without the fallback chain.
func (r *Resolver) LookupPath(dotPath string) (string, error) {
	if dotPath == "" {
		return "", stylekiterrors.NewResolutionError(dotPath, stylekiterrors.ErrMalformedPath)
	}

	keys := strings.Split(dotPath, ".")
	for _, key := range keys {
		if key == "" {
			return "", stylekiterrors.NewResolutionError(dotPath, stylekiterrors.ErrMalformedPath)
		}
	}

	current := r.table
	reached := 0
	for _, key := range keys {
		child, ok := current.Child(key)
		if !ok {
			break
		}
		current = child
		reached++
	}

	if reached == 0 {
		return "", stylekiterrors.NewResolutionError(dotPath, stylekiterrors.ErrStyleNotFound)
	}

	value, err := resolveNode(current)
	if err != nil {
		if reached < len(keys) {
			err = stylekiterrors.ErrStyleNotFound
		}
		return "", stylekiterrors.NewResolutionError(dotPath, err)
	}
	if reached < len(keys) {
		r.log.WithFields(map[string]any{
			"path":    dotPath,
			"reached": strings.Join(keys[:reached], "."),
		}).Debug("style path resolved at a shallower node")
	}
	return value, nil
}

// When returns Get(categoryA, variantA) if condition holds, otherwise
// Get(categoryB, variantB) when both are supplied, otherwise "".
func (r *Resolver) When(condition bool, categoryA, variantA, categoryB, variantB string) string {
	if condition {
		return r.Get(categoryA, variantA)
	}
	if categoryB != "" && variantB != "" {
		return r.Get(categoryB, variantB)
	}
	return ""
}

// Combine joins the supplied tokens with single spaces, in order. Tokens
// containing a dot are tried as style paths first; tokens that do not
// resolve, and tokens without a dot, are kept literally. Empty results are
// dropped.
func (r *Resolver) Combine(tokens ...string) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if strings.Contains(token, ".") {
			if value := r.combinePath(token); value != "" {
				parts = append(parts, value)
				continue
			}
		}
		parts = append(parts, token)
	}
	return strings.Join(parts, " ")
}

// combinePath resolves like Nested. A miss is only logged when the fallback
// table supplies the value; literal class names such as "w-1.5" stay quiet.
func (r *Resolver) combinePath(token string) string {
	value, err := r.LookupPath(token)
	if err == nil {
		return value
	}
	category, variant := splitPath(token)
	value, hit := r.fallbacks.Resolve(category, variant)
	if hit {
		r.warnFallback(category, variant, err, hit)
	}
	return value
}

// Has reports whether table[category][variant] exists and is non-empty. It
// never consults fallbacks and never evaluates function leaves.
func (r *Resolver) Has(category, variant string) bool {
	category, variant = splitVariant(category, variant)
	node, err := r.node(category, variant)
	if err != nil {
		return false
	}
	return node.truthy()
}

// AddFallback inserts or overwrites a fallback entry.
func (r *Resolver) AddFallback(key, value string) {
	r.fallbacks.Add(key, value)
}

// Fallbacks exposes the resolver's fallback table.
func (r *Resolver) Fallbacks() *FallbackTable {
	return r.fallbacks
}

// Paths lists every leaf path in the table in natural order.
func (r *Resolver) Paths() []string {
	var paths []string
	var walk func(prefix string, n Node)
	walk = func(prefix string, n Node) {
		for _, key := range n.Keys() {
			child, _ := n.Child(key)
			path := joinPath(prefix, key)
			if child.IsLeaf() {
				paths = append(paths, path)
				continue
			}
			walk(path, child)
		}
	}
	walk("", r.table)

	sort.Sort(natural.StringSlice(paths))
	return paths
}

func (r *Resolver) lookup(category, variant string) (string, error) {
	node, err := r.node(category, variant)
	if err == nil {
		var value string
		value, err = resolveNode(node)
		if err == nil {
			return value, nil
		}
	}
	return "", stylekiterrors.NewResolutionError(fallbackKey(category, variant), err)
}

// node looks up category as a single key and then walks the dot-separated
// segments of variant, without fallback. Callers pass the output of
// splitVariant, so an empty variant only comes from a trailing dot and is
// malformed.
func (r *Resolver) node(category, variant string) (Node, error) {
	if category == "" {
		return Node{}, stylekiterrors.ErrMalformedPath
	}

	keys := append([]string{category}, strings.Split(variant, ".")...)

	current := r.table
	for _, key := range keys {
		if key == "" {
			return Node{}, stylekiterrors.ErrMalformedPath
		}
		child, ok := current.Child(key)
		if !ok {
			return Node{}, stylekiterrors.ErrStyleNotFound
		}
		current = child
	}
	return current, nil
}

func (r *Resolver) fallback(category, variant string, cause error) string {
	value, hit := r.fallbacks.Resolve(category, variant)
	r.warnFallback(category, variant, cause, hit)
	return value
}

func (r *Resolver) warnFallback(category, variant string, cause error, hit bool) {
	r.log.WithFields(map[string]any{
		"path":         fallbackKey(category, variant),
		"category":     category,
		"variant":      variant,
		"reason":       cause.Error(),
		"fallback_hit": hit,
	}).Warn("style not resolved, using fallback")
}

func splitVariant(category, variant string) (string, string) {
	if variant != "" {
		return category, variant
	}
	if head, tail, ok := strings.Cut(category, "."); ok {
		return head, tail
	}
	return category, DefaultVariant
}

func splitPath(dotPath string) (string, string) {
	head, tail, ok := strings.Cut(dotPath, ".")
	if !ok || tail == "" {
		return head, DefaultVariant
	}
	return head, tail
}
