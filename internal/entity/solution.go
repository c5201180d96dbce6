package entity

// Solution is the result of an exhaustive search for one position.
type Solution struct {
	Key   string `json:"key"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value int    `json:"value"`
	Nodes int    `json:"nodes"`
}

func NewSolution(game *Game, move Move, value, nodes int) *Solution {
	return &Solution{
		Key:   game.Key(),
		Row:   move.Row,
		Col:   move.Col,
		Value: value,
		Nodes: nodes,
	}
}

func (that *Solution) Move() Move {
	return NewMove(that.Row, that.Col)
}
