package services

import (
	"github.com/ersonp/dex-core/internal/domain/entities"
)

// BuildEvolutionGraph walks an evolution chain depth-first with an explicit
// stack and records parent and child relations keyed by species id.
//
// Ids come from the species URL, never from embedded integers. A species id
// already seen in the walk is not linked again, so a malformed chain cannot
// create a cycle or a second parent.
func BuildEvolutionGraph(root *entities.ChainLink) (entities.EvolutionGraph, error) {
	graph := entities.NewEvolutionGraph()
	if root == nil {
		return graph, &entities.MissingFieldError{Resource: "evolution-chain", Field: "chain"}
	}

	rootID, err := chainLinkID(root)
	if err != nil {
		return graph, err
	}

	type frame struct {
		node *entities.ChainLink
		id   int
	}

	seen := map[int]bool{rootID: true}
	stack := []frame{{node: root, id: rootID}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := make([]int, 0, len(top.node.EvolvesTo))
		pending := make([]frame, 0, len(top.node.EvolvesTo))
		for i := range top.node.EvolvesTo {
			child := &top.node.EvolvesTo[i]
			childID, err := chainLinkID(child)
			if err != nil {
				return graph, err
			}
			if seen[childID] {
				continue
			}
			seen[childID] = true
			children = append(children, childID)
			graph.Parents[childID] = top.id
			pending = append(pending, frame{node: child, id: childID})
		}
		graph.Children[top.id] = children

		// Push in reverse so the first child is visited next.
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}

	return graph, nil
}

func chainLinkID(node *entities.ChainLink) (int, error) {
	if node.Species == nil || node.Species.URL == "" {
		return 0, &entities.MissingFieldError{Resource: "evolution-chain", Field: "species.url"}
	}
	return entities.IDFromURL(node.Species.URL)
}
