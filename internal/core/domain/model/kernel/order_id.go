package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// OrderIDPrefix is the fixed leading letter of every conforming identifier.
const OrderIDPrefix = "P"

var orderIDPattern = regexp.MustCompile(`^P(\d+)$`)

// OrderID identifies an order across the dashboard and the backing store.
//
// Conforming identifiers are "P" followed by a zero-padded sequence number of at
// least four digits (P0001, P0042, P12345). Records loaded from the store may
// carry legacy or hand-typed identifiers; those are still valid OrderIDs for
// lookups but have no sequence number (see Sequence).
type OrderID struct {
	value string
}

// NewOrderID builds an identifier from a sequence number.
//
// Example:
//
//	id, _ := kernel.NewOrderID(42)
//	fmt.Println(id) // P0042
func NewOrderID(sequence int) (OrderID, error) {
	if sequence <= 0 {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order sequence", sequence, 1, "unbounded")
	}
	return OrderID{value: fmt.Sprintf("%s%04d", OrderIDPrefix, sequence)}, nil
}

// OrderIDFromString wraps a stored identifier. Surrounding whitespace is
// trimmed; an empty value is rejected.
func OrderIDFromString(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s}, nil
}

// String returns the identifier as stored.
func (id OrderID) String() string {
	return id.value
}

// IsZero reports whether the identifier is unset.
func (id OrderID) IsZero() bool {
	return id.value == ""
}

// Sequence returns the numeric suffix of a conforming identifier. ok is false
// for identifiers that do not match P####.
func (id OrderID) Sequence() (sequence int, ok bool) {
	m := orderIDPattern.FindStringSubmatch(id.value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsEqual compares two identifiers.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
