package game

// Coord is a north/west offset within a location. Positive N is north,
// positive W is west.
type Coord struct {
	N int8
	W int8
}

// Add combines two offsets, clamping at the int8 bounds.
func (c Coord) Add(o Coord) Coord {
	return Coord{
		N: saturatingAdd8(c.N, o.N),
		W: saturatingAdd8(c.W, o.W),
	}
}
