package dotbracket

// PairTable returns the partner index of every position, -1 when unpaired.
func PairTable(s string) ([]int, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	table := make([]int, len(s))
	stack := make([]int, 0, len(s)/2)
	for i := 0; i < len(s); i++ {
		table[i] = -1
		switch s[i] {
		case Open:
			stack = append(stack, i)
		case Close:
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table[i], table[j] = j, i
		}
	}
	return table, nil
}
