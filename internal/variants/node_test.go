package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestNodeKinds(t *testing.T) {
	t.Parallel()

	assert.True(t, Node{}.IsZero())
	assert.True(t, Text("a").IsLeaf())
	assert.True(t, Func(func() string { return "a" }).IsLeaf())
	assert.True(t, Func(nil).IsZero())
	assert.True(t, Branch(nil).IsBranch())
	assert.False(t, Text("a").IsBranch())
}

func TestBranchCopiesChildren(t *testing.T) {
	t.Parallel()

	children := map[string]Node{"a": Text("one")}
	branch := Branch(children)
	children["a"] = Text("two")
	children["b"] = Text("three")

	child, ok := branch.Child("a")
	require.True(t, ok)
	value, err := child.evaluate()
	require.NoError(t, err)
	assert.Equal(t, "one", value)
	assert.Equal(t, []string{"a"}, branch.Keys())
}

func TestChildOfLeafIsAbsent(t *testing.T) {
	t.Parallel()

	_, ok := Text("x").Child("anything")
	assert.False(t, ok)
	assert.Nil(t, Text("x").Keys())
}

func TestResolveNode(t *testing.T) {
	t.Parallel()

	value, err := resolveNode(Branch(map[string]Node{"default": Func(func() string { return "d" })}))
	require.NoError(t, err)
	assert.Equal(t, "d", value)

	_, err = resolveNode(Branch(map[string]Node{"default": Branch(nil)}))
	assert.ErrorIs(t, err, stylekiterrors.ErrNotLeaf)

	_, err = resolveNode(Node{})
	assert.ErrorIs(t, err, stylekiterrors.ErrStyleNotFound)

	_, err = resolveNode(Func(func() string { panic("boom") }))
	assert.ErrorIs(t, err, stylekiterrors.ErrLeafPanicked)
	assert.Contains(t, err.Error(), "boom")
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	table, err := FromMap(map[string]any{
		"button": map[string]any{
			"primary": map[string]any{
				"default": "btn-primary",
				"small":   "btn-primary-sm",
			},
			"ghost": func() string { return "btn-ghost" },
			"link":  Text("btn-link"),
		},
		"badge": map[string]string{"default": "badge"},
	})
	require.NoError(t, err)

	r := New(table, Options{})
	assert.Equal(t, "btn-primary", r.Get("button", "primary"))
	assert.Equal(t, "btn-primary-sm", r.Sized("button", "primary", "small"))
	assert.Equal(t, "btn-ghost", r.Get("button", "ghost"))
	assert.Equal(t, "btn-link", r.Get("button", "link"))
	assert.Equal(t, "badge", r.Get("badge", ""))
}

func TestFromMapRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{
		"button": map[string]any{
			"size": 12,
		},
	})
	require.Error(t, err)

	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "button.size", validationErr.Field)
	assert.Contains(t, validationErr.Message, "int")

	_, err = FromMap(map[string]any{"x": nil})
	require.Error(t, err)
}
