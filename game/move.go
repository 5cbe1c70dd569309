package game

import "fmt"

// Move removes Red red marbles and Blue blue marbles in one turn.
type Move struct {
	Red  int
	Blue int
}

// NoMove is returned by the searcher when it does not pick a move. It is never played.
var NoMove = Move{}

func (m Move) String() string {
	return fmt.Sprintf("(%d red, %d blue)", m.Red, m.Blue)
}
