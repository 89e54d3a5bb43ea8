package entities

// LearnMethod is how a move is learned.
type LearnMethod string

// Learn methods kept by the move filter.
const (
	LearnLevelUp LearnMethod = "level-up"
	LearnEgg     LearnMethod = "egg"
)

// LevelMove is a level-up move before localization.
type LevelMove struct {
	Level int    `json:"level"`
	Key   string `json:"key"`
}

// MoveRecord is a localized learnable move.
type MoveRecord struct {
	Key      string      `json:"key"`
	Name     string      `json:"name"`
	TypeKey  string      `json:"type_key"`
	TypeName string      `json:"type_name"`
	Level    int         `json:"level"` // 0 for egg moves
	Method   LearnMethod `json:"method"`
}
