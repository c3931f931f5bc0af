package board

import "github.com/estalpaert/cheess/position"

// Side is an alias for position.Side: the side-relative stepping geometry
// in package position needs its own notion of colour, and board reuses it
// rather than defining a second, convertible type.
type Side = position.Side

const (
	SideUnknown = position.SideUnknown
	SideWhite   = position.SideWhite
	SideBlack   = position.SideBlack
)
