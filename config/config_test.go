package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/core"
)

func TestDefault(t *testing.T) {
	n, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, "us-cities", n.Name)
	assert.Equal(t, "miles", n.Unit)
	assert.Equal(t, []string{"NewYork", "LosAngeles", "Chicago", "Houston", "Phoenix", "Philadelphia"}, n.Nodes)
	assert.Len(t, n.Roads, 9)

	g, err := n.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 9, g.RoadCount())

	w, err := g.Weight("Phoenix", "Philadelphia")
	require.NoError(t, err)
	assert.Equal(t, int64(2100), w)
}

func TestLoad_DefaultsUnit(t *testing.T) {
	n, err := config.Load(strings.NewReader("nodes: [A, B]\nroads:\n  - {from: A, to: B, distance: 3}\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultUnit, n.Unit)
	assert.Equal(t, []config.Road{{From: "A", To: "B", Distance: 3}}, n.Roads)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"no nodes", "name: x\n"},
		{"duplicate node", "nodes: [A, A]\n"},
		{"empty node", "nodes: [A, '']\n"},
		{"unknown from", "nodes: [A, B]\nroads: [{from: Z, to: B, distance: 1}]\n"},
		{"unknown to", "nodes: [A, B]\nroads: [{from: A, to: Z, distance: 1}]\n"},
		{"self road", "nodes: [A, B]\nroads: [{from: A, to: A, distance: 1}]\n"},
		{"negative", "nodes: [A, B]\nroads: [{from: A, to: B, distance: -4}]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, config.ErrInvalidNetwork)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := config.Load(strings.NewReader("nodes: [A]\ncolour: red\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "colour")
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(strings.NewReader("nodes: [A, B\n"))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidNetwork)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.yaml")
	doc := "name: tiny\nunit: km\nnodes: [X, Y, Z]\nroads:\n  - {from: X, to: Y, distance: 5}\n  - {from: X, to: Y, distance: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	n, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "km", n.Unit)

	g, err := n.Build()
	require.NoError(t, err)
	w, err := g.Weight("Y", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w, "later road wins")
	assert.Equal(t, 1, g.RoadCount())

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestBuild_UnvalidatedNetwork(t *testing.T) {
	n := &config.Network{Nodes: []string{"A", "A"}}
	_, err := n.Build()
	require.ErrorIs(t, err, config.ErrInvalidNetwork)
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	n = &config.Network{Nodes: []string{"A", "B"}, Roads: []config.Road{{From: "A", To: "C", Distance: 1}}}
	_, err = n.Build()
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}
