package game

type State uint8

const (
	StateRunning State = iota
	StateLost
	StateWon
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	default:
		return "!"
	}
}

// Terminal reports whether the driver has stopped consuming events.
func (s State) Terminal() bool {
	return s != StateRunning
}
