package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Node is one entry of a plan tree
type Node struct {
	Name         string `yaml:"name" toml:"name"`
	Kind         string `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Parallel     bool   `yaml:"parallel,omitempty" toml:"parallel,omitempty"`
	MaxThreads   int    `yaml:"max_threads,omitempty" toml:"max_threads,omitempty"`
	PollInterval string `yaml:"poll_interval,omitempty" toml:"poll_interval,omitempty"`
	Params       Params `yaml:"params,omitempty" toml:"params,omitempty"`
	Children     []Node `yaml:"children,omitempty" toml:"children,omitempty"`
}

// IsCollection is true for nodes with children or without a kind
func (n *Node) IsCollection() bool {
	return len(n.Children) > 0 || n.Kind == ""
}

// FormatFromPath picks the decoder from the file extension. JSON files are
// decoded as YAML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", &PlanError{Kind: ErrUnsupportedFormat, Path: path}
	}
}

// Load reads, validates and decodes a plan file.
func Load(path string) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}

	node, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Parse validates data against the plan schema and decodes it.
func Parse(data []byte, format Format) (*Node, error) {
	var doc any
	var node Node

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, invalidf("", "yaml: %v", err)
		}
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, invalidf("", "yaml: %v", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, invalidf("", "toml: %v", err)
		}
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, &node); err != nil {
			return nil, invalidf("", "toml: %v", err)
		}
	default:
		return nil, &PlanError{Kind: ErrUnsupportedFormat, Msg: string(format)}
	}

	return &node, nil
}
