package frogger

// GoalSlots are the landing zones of the goal row. A slot at column c
// accepts a player of width w whose column lies strictly between c and
// c+width-w. Occupancy only ever goes from free to filled.
type GoalSlots struct {
	columns []int
	width   int
	filled  []bool
}

// NewGoalSlots creates free slots at the given columns.
func NewGoalSlots(columns []int, width int) GoalSlots {
	cols := make([]int, len(columns))
	copy(cols, columns)
	return GoalSlots{
		columns: cols,
		width:   width,
		filled:  make([]bool, len(cols)),
	}
}

// Find returns the first free slot whose range contains col, or -1.
func (g *GoalSlots) Find(col, playerWidth int) int {
	for i, c := range g.columns {
		if g.filled[i] {
			continue
		}
		if col > c && col < c+g.width-playerWidth {
			return i
		}
	}
	return -1
}

// Fill marks slot i occupied. It reports false if i is out of range or
// already occupied.
func (g *GoalSlots) Fill(i int) bool {
	if i < 0 || i >= len(g.filled) || g.filled[i] {
		return false
	}
	g.filled[i] = true
	return true
}

// Filled reports whether slot i is occupied.
func (g *GoalSlots) Filled(i int) bool {
	return i >= 0 && i < len(g.filled) && g.filled[i]
}

// Count returns the number of occupied slots.
func (g *GoalSlots) Count() int {
	n := 0
	for _, f := range g.filled {
		if f {
			n++
		}
	}
	return n
}

// Len returns the number of slots.
func (g *GoalSlots) Len() int {
	return len(g.filled)
}

// Full reports whether every slot is occupied.
func (g *GoalSlots) Full() bool {
	return g.Count() == len(g.filled)
}

func (g *GoalSlots) occupancy() []bool {
	out := make([]bool, len(g.filled))
	copy(out, g.filled)
	return out
}
