package globe

// State is a session's lifecycle stage.
type State int

const (
	StateUnmounted State = iota
	StateMounted
	StateAnimating
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateMounted:
		return "mounted"
	case StateAnimating:
		return "animating"
	case StateDisposed:
		return "disposed"
	}
	return "unknown"
}
