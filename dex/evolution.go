package dex

import "github.com/qyinm/pokedextui/types"

// ChainStage is one displayed step of an evolution line
type ChainStage struct {
	ID   int
	Name string
}

// StageLabel returns "Basic" for species without a predecessor and
// "Stage 1+" otherwise. Stage 2 is not told apart from stage 1.
func StageLabel(species types.Species) string {
	if species.EvolvesFromSpecies == nil {
		return "Basic"
	}
	return "Stage 1+"
}

// WalkEvolutionChain flattens an evolution tree by following only the first
// listed branch at every node. Branching lines (eevee) keep their first path.
func WalkEvolutionChain(root types.ChainLink) []ChainStage {
	var stages []ChainStage
	node := &root
	for node != nil {
		stages = append(stages, ChainStage{
			ID:   node.Species.ID(),
			Name: node.Species.Name,
		})
		if len(node.EvolvesTo) == 0 {
			break
		}
		node = &node.EvolvesTo[0]
	}
	return stages
}
