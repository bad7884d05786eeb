package domain

// sequence holds the segment lengths of the physical snake cube, in order.
var sequence = [...]int{2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 2, 2, 1, 1, 1, 1}

// Sequence returns a copy of the fixed distance sequence.
func Sequence() []int {
	out := make([]int, len(sequence))
	copy(out, sequence[:])
	return out
}

// Covered returns how many cells a path following seq occupies,
// counting the starting cell.
func Covered(seq []int) int {
	n := 1
	for _, v := range seq {
		n += v
	}
	return n
}
