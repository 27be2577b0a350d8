package parser

type PickKind int

const (
	Picked PickKind = iota
	OutOfRange
	Ambiguous
	NoMatch
	Empty
)

// Pick is the result of reading one line of menu input against a list of
// choices.
type Pick struct {
	Raw        string
	Normalised string
	Kind       PickKind
	Index      int
	Confidence float64
	// Options holds the competing choice indexes when Kind is Ambiguous.
	Options []int
}

// ChoiceDef adds aliases to a choice label, e.g. "n" for "north".
type ChoiceDef struct {
	Label   string
	Aliases []string
}
