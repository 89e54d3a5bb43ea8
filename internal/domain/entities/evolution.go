package entities

// EvolutionGraph holds the parent and child relations of one or more chains.
// Parents is the inverse of Children restricted to parent/child edges.
type EvolutionGraph struct {
	Parents  map[int]int   `json:"parents"`
	Children map[int][]int `json:"children"`
}

// NewEvolutionGraph returns an empty graph.
func NewEvolutionGraph() EvolutionGraph {
	return EvolutionGraph{
		Parents:  make(map[int]int),
		Children: make(map[int][]int),
	}
}

// Parent returns the direct predecessor of id.
func (g EvolutionGraph) Parent(id int) (int, bool) {
	p, ok := g.Parents[id]
	return p, ok
}

// ChildrenOf returns the direct successors of id in chain order.
func (g EvolutionGraph) ChildrenOf(id int) []int {
	return g.Children[id]
}
