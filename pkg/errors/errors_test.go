package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("styles.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "styles.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "styles.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("styles.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: styles.yaml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("fallbacks.button", "key must be category.variant", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "fallbacks.button", validationErr.Field)
	require.Contains(t, err.Error(), "key must be category.variant")
}

func TestResolutionErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewResolutionError("button.ghost", ErrStyleNotFound)

	var resolutionErr *ResolutionError
	require.ErrorAs(t, err, &resolutionErr)
	require.Equal(t, "button.ghost", resolutionErr.Path)
	require.ErrorIs(t, err, ErrStyleNotFound)
	require.False(t, stdErrors.Is(err, ErrNotLeaf))
	require.Equal(t, "resolution error [button.ghost]: style not found", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var resolutionErr *ResolutionError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, resolutionErr.Error())
	require.Nil(t, resolutionErr.Unwrap())
}
