package manifest

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/atriumhq/atrium/pkg/element"
)

// Manifest is a declarative admin tree loaded from a YAML file. It is the
// file-based equivalent of composing elements in code.
type Manifest struct {
	Title       string
	Description string
	Elements    []*element.Element
}

// raw mirrors the YAML document shape. Element nodes stay untyped maps so
// unknown keys can be folded into metadata instead of failing the decode.
type raw struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Elements    []map[string]any `yaml:"elements"`
}

// nodeSpec carries the recognized keys of one element declaration.
type nodeSpec struct {
	Kind     string            `mapstructure:"kind"`
	Name     string            `mapstructure:"name"`
	Label    string            `mapstructure:"label"`
	Icon     string            `mapstructure:"icon"`
	NoLayout bool              `mapstructure:"no_layout"`
	NoMenu   bool              `mapstructure:"no_menu"`
	Content  string            `mapstructure:"content"`
	Metadata map[string]string `mapstructure:"metadata"`
	Children []map[string]any  `mapstructure:"children"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML manifest into an element tree.
func Parse(data []byte) (*Manifest, error) {
	var doc raw
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	elements, err := buildAll(doc.Elements)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Title:       doc.Title,
		Description: doc.Description,
		Elements:    elements,
	}, nil
}

func buildAll(nodes []map[string]any) ([]*element.Element, error) {
	out := make([]*element.Element, 0, len(nodes))
	for i, node := range nodes {
		el, err := build(node)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, el)
	}
	return out, nil
}

func build(node map[string]any) (*element.Element, error) {
	var spec nodeSpec
	if err := mapstructure.Decode(node, &spec); err != nil {
		return nil, fmt.Errorf("invalid element declaration: %w", err)
	}

	children, err := buildAll(spec.Children)
	if err != nil {
		return nil, err
	}

	var el *element.Element
	switch spec.Kind {
	case "fragment", "":
		el = element.Fragment(children...)
	case "category":
		el = element.Category(spec.Label, children...)
	case "resource":
		el = element.Resource(keyOrGenerated(spec.Name))
	case "route":
		el = element.Route(keyOrGenerated(spec.Name))
		el.NoLayout = spec.NoLayout
		el.NoMenu = spec.NoMenu
	case "raw":
		el = element.Raw(spec.Content)
	default:
		return nil, fmt.Errorf("unknown element kind %q", spec.Kind)
	}

	if spec.Label != "" {
		el.Label = spec.Label
	}
	el.Icon = spec.Icon
	for k, v := range spec.Metadata {
		el.WithMeta(k, v)
	}
	if spec.Content != "" && el.Content == nil {
		el.Content = spec.Content
	}
	return el, nil
}

// keyOrGenerated falls back to a generated key for entries declared without
// a name, so an incomplete manifest still yields addressable records.
func keyOrGenerated(name string) string {
	if name != "" {
		return name
	}
	return uuid.NewString()
}
