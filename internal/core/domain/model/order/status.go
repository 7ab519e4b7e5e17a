package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InProcess ──┬──> Completed
//	   ▲            │       │
//	   │            ▼       └──> Fulfilled ──> ReceptionCompleted ──> Delivered ──> Completed
//	   └──────── Delayed
//
//	any non-terminal status ──> Cancelled
//
// Delayed is entered only by the staleness sweep and left by starting the order
// again. The fulfilment sub-states exist only in the Extended state model.
// Unknown stands for a stored label that matched no status; it behaves like
// Pending for transitions and ranks last.
type Status int

const (
	Unknown Status = iota
	Pending
	InProcess
	Delayed
	Fulfilled
	ReceptionCompleted
	Delivered
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:            "Unknown",
	Pending:            "Pending",
	InProcess:          "InProcess",
	Delayed:            "Delayed",
	Fulfilled:          "Fulfilled",
	ReceptionCompleted: "ReceptionCompleted",
	Delivered:          "Delivered",
	Completed:          "Completed",
	Cancelled:          "Cancelled",
}

// statusRanks is the status-priority display order. Statuses missing from the
// table (Unknown) rank after every listed one.
var statusRanks = map[Status]int{
	Delayed:            0,
	Pending:            1,
	InProcess:          2,
	Fulfilled:          3,
	ReceptionCompleted: 4,
	Delivered:          5,
	Completed:          6,
	Cancelled:          7,
}

var transitions = map[Status][]Status{
	Unknown:            {InProcess, Cancelled},
	Pending:            {InProcess, Cancelled},
	InProcess:          {Delayed, Fulfilled, Completed, Cancelled},
	Delayed:            {InProcess, Cancelled},
	Fulfilled:          {ReceptionCompleted, Delivered, Completed, Cancelled},
	ReceptionCompleted: {Delivered, Completed, Cancelled},
	Delivered:          {Completed, Cancelled},
}

// Statuses lists every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, InProcess, Delayed, Fulfilled, ReceptionCompleted, Delivered, Completed, Cancelled}
}

// String returns the English name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the order belongs in the active queues.
func (s Status) IsActive() bool {
	return !s.IsTerminal()
}

// Rank returns the status-priority sort key. Lower ranks are shown first.
func (s Status) Rank() int {
	if r, ok := statusRanks[s]; ok {
		return r
	}
	return len(statusRanks)
}

// TransitionTo checks that the state machine and the given model allow moving
// from s to target, and returns target.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (Unknown, ValueIsInvalidError) when target is invalid, outside the model,
//     or not reachable from s
func (s Status) TransitionTo(target Status, model StateModel) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !model.Allows(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not part of the %s state model", target, model),
		)
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal", s),
		)
	}
	for _, next := range transitions[s] {
		if next == target {
			return target, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s cannot move to %s", s, target),
	)
}
