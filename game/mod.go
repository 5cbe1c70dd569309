package game

import "fmt"

const (
	RED_POINTS  = 2 // Points per red marble left on the table
	BLUE_POINTS = 3 // Points per blue marble left on the table
)

// Variant selects when the game is over.
type Variant int

const (
	Standard Variant = iota // Over as soon as either pile is empty
	Misere                  // Over only once both piles are empty
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "misere":
		return Misere, nil
	default:
		return Standard, fmt.Errorf("unknown version %q: must be standard or misere", s)
	}
}

// Player is the side to move.
type Player int

const (
	Computer Player = iota
	Human
)

func (p Player) String() string {
	switch p {
	case Computer:
		return "computer"
	case Human:
		return "human"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func (p Player) Opponent() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "computer":
		return Computer, nil
	case "human":
		return Human, nil
	default:
		return Computer, fmt.Errorf("unknown player %q: must be computer or human", s)
	}
}
