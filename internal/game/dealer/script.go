package dealer

// Script replays scripted draws. Shuffles are applied as the listed
// permutations; with no permutation left, Shuffle keeps the order.
// An exhausted Floats or Ints queue yields 0.
type Script struct {
	Floats []float64
	Ints   []int
	Perms  [][]int

	// Draws records every request, for assertions.
	Draws []string
}

func (s *Script) Float(max float64) float64 {
	s.Draws = append(s.Draws, "float")
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	if v > max {
		v = max
	}
	return v
}

func (s *Script) IntInclusive(n int) int {
	s.Draws = append(s.Draws, "int")
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v > n {
		v = n
	}
	return v
}

// Shuffle rearranges so that position i receives the element previously at
// perm[i]. A permutation of the wrong length is ignored.
func (s *Script) Shuffle(n int, swap func(i, j int)) {
	s.Draws = append(s.Draws, "shuffle")
	if len(s.Perms) == 0 {
		return
	}
	perm := s.Perms[0]
	s.Perms = s.Perms[1:]
	if len(perm) != n {
		return
	}
	// pos[x] is where original element x currently sits
	pos := make([]int, n)
	at := make([]int, n)
	for i := range pos {
		pos[i], at[i] = i, i
	}
	for i := 0; i < n; i++ {
		j := pos[perm[i]]
		if j == i {
			continue
		}
		swap(i, j)
		pos[at[i]], pos[at[j]] = j, i
		at[i], at[j] = at[j], at[i]
	}
}
