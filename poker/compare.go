package poker

// Compare compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func Compare(a, b Hand) int {
	return Evaluate(a).Compare(Evaluate(b))
}

// Winners returns the indices of every hand sharing the best score, in input
// order. More than one index means a split.
func Winners(hands ...Hand) []int {
	if len(hands) == 0 {
		return nil
	}

	scores := make([]Score, len(hands))
	best := Score(0)
	for i, h := range hands {
		scores[i] = Evaluate(h)
		if scores[i] > best {
			best = scores[i]
		}
	}

	var winners []int
	for i, s := range scores {
		if s == best {
			winners = append(winners, i)
		}
	}
	return winners
}
