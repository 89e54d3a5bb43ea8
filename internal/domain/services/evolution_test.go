package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func link(id int, children ...entities.ChainLink) entities.ChainLink {
	return entities.ChainLink{Species: mocks.Ref("", speciesURL(id)), EvolvesTo: children}
}

func TestBuildEvolutionGraph_Linear(t *testing.T) {
	root := link(1, link(2, link(3)))

	graph, err := BuildEvolutionGraph(&root)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{2: 1, 3: 2}, graph.Parents)
	assert.Equal(t, map[int][]int{1: {2}, 2: {3}, 3: {}}, graph.Children)

	_, hasParent := graph.Parent(1)
	assert.False(t, hasParent)
}

func TestBuildEvolutionGraph_Branching(t *testing.T) {
	// Wurmple line: 265 -> 266 -> 267, 265 -> 268 -> 269
	root := link(265, link(266, link(267)), link(268, link(269)))

	graph, err := BuildEvolutionGraph(&root)
	require.NoError(t, err)

	assert.Equal(t, []int{266, 268}, graph.ChildrenOf(265))
	assert.Equal(t, []int{267}, graph.ChildrenOf(266))
	assert.Equal(t, []int{269}, graph.ChildrenOf(268))

	// Every recorded child points back at the node that listed it.
	for parent, children := range graph.Children {
		for _, child := range children {
			p, ok := graph.Parent(child)
			require.True(t, ok)
			assert.Equal(t, parent, p)
		}
	}
	// And every parent entry is listed by its parent.
	for child, parent := range graph.Parents {
		assert.Contains(t, graph.ChildrenOf(parent), child)
	}
}

func TestBuildEvolutionGraph_IgnoresEmbeddedIDs(t *testing.T) {
	root := entities.ChainLink{
		Species: &entities.NamedResource{Name: "eevee", URL: "https://pokeapi.co/api/v2/pokemon-species/133/"},
	}

	graph, err := BuildEvolutionGraph(&root)
	require.NoError(t, err)
	assert.Contains(t, graph.Children, 133)
}

func TestBuildEvolutionGraph_CycleGuard(t *testing.T) {
	// 1 -> 2 -> 1 and a duplicated 2 under the root.
	root := link(1, link(2, link(1)), link(2))

	graph, err := BuildEvolutionGraph(&root)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, graph.ChildrenOf(1))
	assert.Empty(t, graph.ChildrenOf(2))
	assert.Equal(t, map[int]int{2: 1}, graph.Parents)
	for id, children := range graph.Children {
		assert.NotContains(t, children, id)
	}
}

func TestBuildEvolutionGraph_DeepChain(t *testing.T) {
	const depth = 10000
	root := link(depth)
	for id := depth - 1; id >= 1; id-- {
		root = link(id, root)
	}

	graph, err := BuildEvolutionGraph(&root)
	require.NoError(t, err)

	assert.Len(t, graph.Parents, depth-1)
	p, ok := graph.Parent(depth)
	require.True(t, ok)
	assert.Equal(t, depth-1, p)
}

func TestBuildEvolutionGraph_MissingSpecies(t *testing.T) {
	root := entities.ChainLink{
		Species:   mocks.Ref("bulbasaur", speciesURL(1)),
		EvolvesTo: []entities.ChainLink{{}},
	}

	_, err := BuildEvolutionGraph(&root)
	var missing *entities.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "species.url", missing.Field)

	_, err = BuildEvolutionGraph(nil)
	require.ErrorAs(t, err, &missing)
}
