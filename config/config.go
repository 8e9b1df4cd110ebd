// Package config loads road network definitions from YAML and turns them
// into a core.Graph.
//
// A network file lists its nodes in declaration order and its roads:
//
//	name: us-cities
//	unit: miles
//	nodes: [NewYork, Chicago, Houston]
//	roads:
//	  - {from: NewYork, to: Chicago, distance: 800}
//	  - {from: Chicago, to: Houston, distance: 1000}
//
// Unknown keys are rejected. Default returns the bundled six-city network.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/core"
)

// DefaultUnit is used when a network file does not name its distance unit.
const DefaultUnit = "miles"

// ErrInvalidNetwork indicates a network definition that cannot form a graph.
var ErrInvalidNetwork = errors.New("config: invalid network")

//go:embed networks/us_cities.yaml
var defaultNetwork []byte

// Network is the YAML representation of a road network.
type Network struct {
	Name  string   `yaml:"name"`
	Unit  string   `yaml:"unit"`
	Nodes []string `yaml:"nodes"`
	Roads []Road   `yaml:"roads"`
}

// Road is one undirected road in a network file.
type Road struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Load decodes and validates a network from r.
func Load(r io.Reader) (*Network, error) {
	var n Network
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidNetwork)
		}

		return nil, fmt.Errorf("failed to parse network YAML: %w", err)
	}
	if n.Unit == "" {
		n.Unit = DefaultUnit
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// LoadFile opens path and loads the network it contains.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network file: %w", err)
	}
	defer f.Close()

	n, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Default returns the bundled six-city network.
func Default() (*Network, error) {
	return Load(bytes.NewReader(defaultNetwork))
}

// Validate checks the network without building it: at least one node, unique
// non-empty node names, and roads between distinct known nodes with
// non-negative distances.
func (n *Network) Validate() error {
	if len(n.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidNetwork)
	}
	seen := make(map[string]struct{}, len(n.Nodes))
	for i, name := range n.Nodes {
		if name == "" {
			return fmt.Errorf("%w: node %d has an empty name", ErrInvalidNetwork, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalidNetwork, name)
		}
		seen[name] = struct{}{}
	}
	for i, r := range n.Roads {
		if _, ok := seen[r.From]; !ok {
			return fmt.Errorf("%w: road %d: unknown node %q", ErrInvalidNetwork, i, r.From)
		}
		if _, ok := seen[r.To]; !ok {
			return fmt.Errorf("%w: road %d: unknown node %q", ErrInvalidNetwork, i, r.To)
		}
		if r.From == r.To {
			return fmt.Errorf("%w: road %d: %q joins itself", ErrInvalidNetwork, i, r.From)
		}
		if r.Distance < 0 || r.Distance == core.Unreachable {
			return fmt.Errorf("%w: road %d: bad distance %d", ErrInvalidNetwork, i, r.Distance)
		}
	}

	return nil
}

// Build creates a core.Graph with the network's nodes and roads.
// Later roads between the same pair overwrite earlier ones.
func (n *Network) Build() (*core.Graph, error) {
	g, err := core.NewGraph(n.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}
	for i, r := range n.Roads {
		if err = g.AddRoad(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: road %d: %w", ErrInvalidNetwork, i, err)
		}
	}

	return g, nil
}
