package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadnet/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := core.NewGraph([]string{"A", "B", "C", "D"})
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNewGraphInitialMatrix() {
	require := require.New(s.T())
	require.Equal(4, s.g.NodeCount())
	require.Equal([]string{"A", "B", "C", "D"}, s.g.Nodes())
	require.Zero(s.g.RoadCount())

	// Diagonal is 0, everything else unreachable.
	for _, from := range s.g.Nodes() {
		for _, to := range s.g.Nodes() {
			w, err := s.g.Weight(from, to)
			require.NoError(err)
			if from == to {
				require.Zero(w, "diagonal %s", from)
			} else {
				require.Equal(core.Unreachable, w, "%s-%s", from, to)
			}
		}
	}
}

func (s *GraphSuite) TestAddRoadIsSymmetric() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoad("A", "C", 7))

	ac, err := s.g.Weight("A", "C")
	require.NoError(err)
	ca, err := s.g.Weight("C", "A")
	require.NoError(err)
	require.Equal(int64(7), ac)
	require.Equal(ac, ca)
	require.True(s.g.HasRoad("C", "A"))
	require.Equal(1, s.g.RoadCount())
}

func (s *GraphSuite) TestAddRoadLastWriteWins() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoad("A", "B", 10))
	require.NoError(s.g.AddRoad("B", "A", 4))

	w, err := s.g.Weight("A", "B")
	require.NoError(err)
	require.Equal(int64(4), w)
	require.Equal(1, s.g.RoadCount(), "overwrite must not count a second road")
}

func (s *GraphSuite) TestAddRoadZeroWeight() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoad("A", "B", 0))
	require.True(s.g.HasRoad("A", "B"))
}

func (s *GraphSuite) TestAddRoadErrors() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddRoad("A", "Z", 1), core.ErrNodeNotFound)
	require.ErrorIs(s.g.AddRoad("Z", "A", 1), core.ErrNodeNotFound)
	require.ErrorIs(s.g.AddRoad("", "A", 1), core.ErrNodeNotFound)
	require.ErrorIs(s.g.AddRoad("A", "A", 1), core.ErrSelfRoad)
	require.ErrorIs(s.g.AddRoad("A", "B", -1), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddRoad("A", "B", core.Unreachable), core.ErrBadWeight)

	// Failed calls leave the matrix untouched.
	require.Zero(s.g.RoadCount())
	w, err := s.g.Weight("A", "A")
	require.NoError(err)
	require.Zero(w)
}

func (s *GraphSuite) TestNodeNotFoundMessageNamesNode() {
	err := s.g.AddRoad("A", "Atlantis", 3)
	s.Require().ErrorIs(err, core.ErrNodeNotFound)
	s.Require().Contains(err.Error(), "Atlantis")
}

func (s *GraphSuite) TestIndexAndHasNode() {
	require := require.New(s.T())
	i, err := s.g.Index("C")
	require.NoError(err)
	require.Equal(2, i)

	_, err = s.g.Index("Q")
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.True(s.g.HasNode("D"))
	require.False(s.g.HasNode("Q"))
	require.False(s.g.HasRoad("A", "Q"))
	require.False(s.g.HasRoad("A", "A"))
}

func (s *GraphSuite) TestNeighborsDeclarationOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoad("B", "D", 4))
	require.NoError(s.g.AddRoad("B", "A", 2))

	nbs, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Equal([]core.Road{
		{From: "B", To: "A", Weight: 2},
		{From: "B", To: "D", Weight: 4},
	}, nbs)

	nbs, err = s.g.Neighbors("C")
	require.NoError(err)
	require.Empty(nbs)

	_, err = s.g.Neighbors("Q")
	require.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *GraphSuite) TestRoadsUpperTriangle() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoad("D", "A", 9))
	require.NoError(s.g.AddRoad("C", "B", 3))
	require.NoError(s.g.AddRoad("A", "B", 1))

	require.Equal([]core.Road{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "D", Weight: 9},
		{From: "B", To: "C", Weight: 3},
	}, s.g.Roads())
}

func (s *GraphSuite) TestNodesReturnsCopy() {
	nodes := s.g.Nodes()
	nodes[0] = "mutated"
	s.Require().Equal("A", s.g.Nodes()[0])
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestNewGraph_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  error
	}{
		{"duplicate", []string{"A", "B", "A"}, core.ErrDuplicateNode},
		{"empty name", []string{"A", ""}, core.ErrEmptyNodeName},
		{"empty list", nil, nil},
		{"single", []string{"Solo"}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := core.NewGraph(tc.names)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				require.Nil(t, g)

				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.names), g.NodeCount())
		})
	}
}

func TestNewGraph_DoesNotAliasInput(t *testing.T) {
	names := []string{"A", "B"}
	g, err := core.NewGraph(names)
	require.NoError(t, err)

	names[0] = "Z"
	require.True(t, g.HasNode("A"))
	require.False(t, g.HasNode("Z"))
}

func TestRoad_String(t *testing.T) {
	r := core.Road{From: "A", To: "B", Weight: 12}
	require.Equal(t, "A-B(12)", r.String())
}
