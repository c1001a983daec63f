package variants

import (
	"fmt"
	"sort"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// FromMap builds a style table from decoded data. Values may be strings,
// func() string, Node, map[string]string or nested map[string]any.
func FromMap(data map[string]any) (Node, error) {
	return branchFromMap("", data)
}

func branchFromMap(prefix string, data map[string]any) (Node, error) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	children := make(map[string]Node, len(data))
	for _, key := range keys {
		path := joinPath(prefix, key)
		child, err := nodeFromValue(path, data[key])
		if err != nil {
			return Node{}, err
		}
		children[key] = child
	}
	return Node{kind: kindBranch, children: children}, nil
}

func nodeFromValue(path string, value any) (Node, error) {
	switch v := value.(type) {
	case string:
		return Text(v), nil
	case func() string:
		if v == nil {
			return Node{}, stylekiterrors.NewValidationError(path, "style function is nil", nil)
		}
		return Func(v), nil
	case Node:
		if v.IsZero() {
			return Node{}, stylekiterrors.NewValidationError(path, "style node is empty", nil)
		}
		return v, nil
	case map[string]string:
		children := make(map[string]Node, len(v))
		for key, text := range v {
			children[key] = Text(text)
		}
		return Node{kind: kindBranch, children: children}, nil
	case map[string]any:
		return branchFromMap(path, v)
	default:
		return Node{}, stylekiterrors.NewValidationError(path, fmt.Sprintf("unsupported style value of type %T", value), nil)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
