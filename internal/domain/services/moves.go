package services

import (
	"sort"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// LevelUpMoves returns the (level, move) pairs learned by level-up in any
// tracked version group, deduplicated and sorted by level then key.
func LevelUpMoves(p *entities.PokemonResource) []entities.LevelMove {
	seen := make(map[entities.LevelMove]bool)
	moves := make([]entities.LevelMove, 0)
	for _, m := range p.Moves {
		for _, vd := range m.VersionGroupDetails {
			if !tracked(vd, entities.LearnLevelUp) {
				continue
			}
			lm := entities.LevelMove{Level: vd.LevelLearnedAt, Key: m.Move.Name}
			if seen[lm] {
				continue
			}
			seen[lm] = true
			moves = append(moves, lm)
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Level != moves[j].Level {
			return moves[i].Level < moves[j].Level
		}
		return moves[i].Key < moves[j].Key
	})
	return moves
}

// EggMoves returns the keys of moves learned as egg moves in any tracked
// version group.
func EggMoves(p *entities.PokemonResource) entities.KeySet {
	moves := entities.KeySet{}
	for _, m := range p.Moves {
		for _, vd := range m.VersionGroupDetails {
			if tracked(vd, entities.LearnEgg) {
				moves.Add(m.Move.Name)
				break
			}
		}
	}
	return moves
}

func tracked(vd entities.VersionGroupDetail, method entities.LearnMethod) bool {
	if vd.MoveLearnMethod == nil || vd.VersionGroup == nil {
		return false
	}
	return vd.MoveLearnMethod.Name == string(method) && entities.IsTrackedVersionGroup(vd.VersionGroup.Name)
}
