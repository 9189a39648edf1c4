package game

// State enumerates the phases of a round:
//   - StateRoot: the four arms of the root must be filled
//   - StateOpen: a play may be made at the end of any arm
//   - StateChickie: a chicken foot must be completed before other plays resume
type State int

const (
	StateRoot State = iota
	StateOpen
	StateChickie
)

func (s State) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateOpen:
		return "open"
	case StateChickie:
		return "chickie"
	default:
		return "unknown"
	}
}
