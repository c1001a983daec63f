package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
	"github.com/alexisbeaulieu97/stylekit/internal/variants"
)

// Document represents a full style document: the style table, fallback
// overrides, phrase links and logging preferences.
type Document struct {
	Version   string            `yaml:"version" validate:"required,semver"`
	Name      string            `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Styles    map[string]any    `yaml:"styles" validate:"required,min=1"`
	Fallbacks map[string]string `yaml:"fallbacks,omitempty" validate:"omitempty,dive,keys,variant_key,endkeys"`
	Links     LinkTable         `yaml:"links,omitempty"`
	Logging   LoggingConfig     `yaml:"logging,omitempty"`
}

// LoggingConfig holds logger preferences declared by the document.
type LoggingConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// LinkTable is an ordered phrase to destination mapping. Document order is
// preserved because it breaks ties between phrases of equal length.
type LinkTable []linkify.Mapping

// UnmarshalYAML decodes a YAML mapping while keeping key order.
func (t *LinkTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: links must be a mapping of phrase to destination", value.Line)
	}

	entries := make(LinkTable, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var phrase, destination string
		if err := value.Content[i].Decode(&phrase); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&destination); err != nil {
			return err
		}
		entries = append(entries, linkify.Mapping{Phrase: phrase, Destination: destination})
	}

	*t = entries
	return nil
}

// MarshalYAML encodes the table as a mapping in its stored order.
func (t LinkTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range t {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: m.Phrase},
			&yaml.Node{Kind: yaml.ScalarNode, Value: m.Destination},
		)
	}
	return node, nil
}

// Table converts the styles section into a style table.
func (d *Document) Table() (variants.Node, error) {
	if d == nil {
		return variants.Branch(nil), nil
	}
	return variants.FromMap(d.Styles)
}

// Mappings returns the links in document order.
func (d *Document) Mappings() []linkify.Mapping {
	if d == nil {
		return nil
	}
	return append([]linkify.Mapping(nil), d.Links...)
}
