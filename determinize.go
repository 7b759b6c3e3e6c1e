package automaton

// Determinize
// Runs the subset construction over alphabet and returns the complete, correct conversion
// table. Rows appear in discovery order starting from the start closure. The empty set never
// gets a row; cells that lead nowhere stay empty. The result always passes Validate.
// Worst case complexity: exponential in number of states.
func Determinize(a *Automaton, alphabet []Symbol) (*ConversionTable, error) {
	table, err := NewConversionTable(alphabet)
	if err != nil {
		return nil, err
	}

	initialSet := StartSet(a)
	if initialSet.IsEmpty() {
		return table, nil
	}

	newState := NewHashMap[int](WithCapacity(a.NumStates()))
	workList := []StateSet{initialSet}
	newState.Set(initialSet, 1)
	if err := table.SetHeader(1, initialSet.IDs()...); err != nil {
		return nil, err
	}
	table.EnsureTrailingEmptyRow()

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		row, _ := newState.Get(s)

		for j, c := range alphabet {
			next := ReachableOnSymbol(a, s, c)
			if err := table.SetCell(row, j, next.IDs()...); err != nil {
				return nil, err
			}
			if next.IsEmpty() {
				continue
			}
			if _, loaded := newState.GetOrSet(next, table.Len()-1); loaded {
				continue
			}
			if err := table.SetHeader(table.Len()-1, next.IDs()...); err != nil {
				return nil, err
			}
			table.EnsureTrailingEmptyRow()
			workList = append(workList, next)
		}
	}

	return table, nil
}
