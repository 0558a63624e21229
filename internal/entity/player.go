package entity

const (
	HumanKind = "human"
	BotKind   = "bot"
)

type Player struct {
	Name  string `json:"name"`
	Mark  string `json:"mark"`
	Kind  string `json:"kind"`
	Score int    `json:"score"`
}

func NewHumanPlayer(name, mark string) *Player {
	return &Player{Name: name, Mark: mark, Kind: HumanKind}
}

func NewBotPlayer(name, mark string) *Player {
	return &Player{Name: name, Mark: mark, Kind: BotKind}
}

func (that *Player) IsBot() bool {
	return that.Kind == BotKind
}
