package simulation

// Checkpoints returns the summary years of a run from anchor to horizon:
// every tenth year from the first decade boundary after anchor, plus horizon.
func Checkpoints(anchor, horizon int) []int {
	if horizon < anchor {
		return nil
	}
	var years []int
	for y := (floorDiv(anchor, 10) + 1) * 10; y <= horizon; y += 10 {
		years = append(years, y)
	}
	if len(years) == 0 || years[len(years)-1] != horizon {
		years = append(years, horizon)
	}
	return years
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
