package config

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// ValidateDocument performs schema validation followed by semantic checks of
// the styles and links sections. Semantic problems are reported together.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return stylekiterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	var errs error
	errs = multierr.Append(errs, validateStyles("styles", doc.Styles))
	errs = multierr.Append(errs, validateLinks(doc.Links))
	return errs
}

// Problems flattens an error returned by ValidateDocument.
func Problems(err error) []error {
	return multierr.Errors(err)
}

func validateStyles(prefix string, styles map[string]any) error {
	keys := make([]string, 0, len(styles))
	for key := range styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs error
	for _, key := range keys {
		field := prefix + "." + key
		if strings.TrimSpace(key) == "" {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, "style keys must not be blank", nil))
			continue
		}
		if strings.Contains(key, ".") {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, "style keys must not contain '.'", nil))
			continue
		}

		switch value := styles[key].(type) {
		case string:
		case map[string]any:
			if len(value) == 0 {
				errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, "style group must not be empty", nil))
				continue
			}
			errs = multierr.Append(errs, validateStyles(field, value))
		default:
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, fmt.Sprintf("style value must be a string or a mapping, got %s", describe(value)), nil))
		}
	}
	return errs
}

func validateLinks(links LinkTable) error {
	seen := make(map[string]int, len(links))

	var errs error
	for i, link := range links {
		field := fieldForLink(i, link.Phrase)
		if strings.TrimSpace(link.Phrase) == "" {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, "phrase must not be blank", nil))
			continue
		}
		if strings.TrimSpace(link.Destination) == "" {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, "destination must not be blank", nil))
		}

		folded := strings.ToLower(link.Phrase)
		if first, ok := seen[folded]; ok {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(field, fmt.Sprintf("phrase duplicates links[%d] ignoring case", first), nil))
			continue
		}
		seen[folded] = i
	}
	return errs
}

func describe(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%T", value)
}
