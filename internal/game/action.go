package game

type Action int

const (
	ActionDescribe Action = iota
	ActionGo
	ActionWait
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDescribe:
		return "describe"
	case ActionGo:
		return "go"
	case ActionWait:
		return "wait"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "nowhere"
	}
}

// Vector is the offset of one step of magnitude m in this direction.
func (d Direction) Vector(m int8) Coord {
	switch d {
	case North:
		return Coord{N: m}
	case South:
		return Coord{N: saturatingNeg8(m)}
	case East:
		return Coord{W: saturatingNeg8(m)}
	case West:
		return Coord{W: m}
	default:
		return Coord{}
	}
}
