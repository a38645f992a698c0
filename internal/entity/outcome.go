package entity

import "fmt"

// Outcome is the result of a round from the first player's point of view.
type Outcome int

const (
	Lose Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

func (that Outcome) String() string {
	switch that {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(that))
	}
}

// Negate - returns the same result seen from the other player.
func (that Outcome) Negate() Outcome {
	return -that
}

func (that Outcome) MarshalText() ([]byte, error) {
	if that < Lose || that > Win {
		return nil, fmt.Errorf("unknown outcome %d", int(that))
	}
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lose":
		*that = Lose
	case "draw":
		*that = Draw
	case "win":
		*that = Win
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}

	return nil
}
