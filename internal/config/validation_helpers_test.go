package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestConvertValidationError(t *testing.T) {
	t.Parallel()

	require.NoError(t, convertValidationError(nil))

	err := validatorInstance().Struct(&Document{Version: "1.0"})
	require.Error(t, err)

	converted := convertValidationError(err)
	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, converted, &validationErr)
	require.Equal(t, "styles", validationErr.Field)
	require.Contains(t, validationErr.Message, "'required'")
}

func TestYamlishFieldName(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Logging.Level = "loud"

	err := ValidateDocument(doc)
	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "logging.level", validationErr.Field)
}

func TestFieldForLink(t *testing.T) {
	t.Parallel()

	require.Equal(t, "links[2]", fieldForLink(2, ""))
	require.Equal(t, "links[0](privacy)", fieldForLink(0, "privacy"))
}
