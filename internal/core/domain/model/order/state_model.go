package order

// StateModel selects which statuses a workflow variant uses.
//
// Basic is the intake dashboard flow (Pending, InProcess, Delayed, Completed,
// Cancelled). Extended adds the fulfilment tracking sub-states.
type StateModel int

const (
	Basic StateModel = iota
	Extended
)

// String returns the model name.
func (m StateModel) String() string {
	if m == Extended {
		return "extended"
	}
	return "basic"
}

// Allows reports whether s may be entered under this model.
func (m StateModel) Allows(s Status) bool {
	switch s {
	case Fulfilled, ReceptionCompleted, Delivered:
		return m == Extended
	case Unknown:
		return false
	default:
		return true
	}
}
