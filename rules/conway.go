package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Fewer than two or more than three living neighbors kill the cell, exactly three
bring it to life, and exactly two leave it as it was.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors < 2 || neighbors > 3:
		return false
	case neighbors == 3:
		return true
	default:
		return alive
	}
}
