package model

// Direction is the net movement of a period.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

// SignOf applies the generator's direction rule. A period that closes above
// its open is Up and one that closes below is Down. On a tie the close is
// compared with the previous period's close: unchanged or higher counts as Up.
// Without a previous period a tie is Up.
func SignOf(open, close, prevClose float64, hasPrev bool) Direction {
	switch {
	case open > close:
		return Down
	case open < close:
		return Up
	case !hasPrev:
		return Up
	case prevClose <= close:
		return Up
	default:
		return Down
	}
}

// BarDirection is the volume-bar colouring value: 1 when open is above close,
// -1 otherwise, the inverse of the SignOf convention.
func BarDirection(open, close float64) int {
	if open > close {
		return 1
	}
	return -1
}
