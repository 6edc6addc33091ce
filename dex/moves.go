package dex

import (
	"sort"

	"github.com/qyinm/pokedextui/types"
)

// MaxLevelMoves caps the moves tab
const MaxLevelMoves = 30

const levelUpMethod = "level-up"

// LevelMove is a move learned by levelling up
type LevelMove struct {
	Name  string
	Level int
}

// LevelUpMoves returns the moves that have a level-up learn method, sorted
// ascending by the level of their first level-up entry, capped at limit.
// A non-positive limit means MaxLevelMoves.
func LevelUpMoves(p types.Pokemon, limit int) []LevelMove {
	if limit <= 0 {
		limit = MaxLevelMoves
	}

	moves := make([]LevelMove, 0, len(p.Moves))
	for _, m := range p.Moves {
		for _, d := range m.VersionGroupDetails {
			if d.MoveLearnMethod.Name == levelUpMethod {
				moves = append(moves, LevelMove{Name: m.Move.Name, Level: d.LevelLearnedAt})
				break
			}
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Level < moves[j].Level
	})

	if len(moves) > limit {
		moves = moves[:limit]
	}
	return moves
}
