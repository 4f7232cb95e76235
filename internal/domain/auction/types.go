package auction

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusSold   Status = "SOLD"
	StatusClosed Status = "CLOSED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSold, StatusClosed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
// ACTIVE may move to SOLD or CLOSED; SOLD and CLOSED never revert.
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusClosed
}

func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusActive && next.IsTerminal()
}
