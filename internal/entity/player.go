package entity

type Player struct {
	Name string `json:"name"`
	Sign Sign   `json:"sign"`
}

func NewPlayer(name string, sign Sign) Player {
	return Player{
		Name: name,
		Sign: sign,
	}
}
