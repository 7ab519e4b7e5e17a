package services

import (
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

const (
	ProfileIntake      = "intake"
	ProfileFulfillment = "fulfillment"

	DefaultStaleAfter = time.Hour
	DefaultHistoryCap = 50
)

// WorkflowProfile bundles the choices that differ between dashboard
// variants. Both variants share one engine and pick a profile.
type WorkflowProfile struct {
	Name       string
	Model      order.StateModel
	Ordering   Ordering
	History    HistoryPolicy
	StaleAfter time.Duration
}

// IntakeProfile is the order intake dashboard: basic state model,
// shipment-priority order, last 30 days of history.
func IntakeProfile() WorkflowProfile {
	return WorkflowProfile{
		Name:       ProfileIntake,
		Model:      order.Basic,
		Ordering:   ShipmentPriority,
		History:    HistoryPolicy{Window: 30 * 24 * time.Hour, Cap: DefaultHistoryCap},
		StaleAfter: DefaultStaleAfter,
	}
}

// FulfillmentProfile is the warehouse dashboard: extended state model,
// status-priority order, the 50 most recent completions.
func FulfillmentProfile() WorkflowProfile {
	return WorkflowProfile{
		Name:       ProfileFulfillment,
		Model:      order.Extended,
		Ordering:   StatusPriority,
		History:    HistoryPolicy{Cap: DefaultHistoryCap},
		StaleAfter: DefaultStaleAfter,
	}
}

// ProfileByName returns a preset profile.
func ProfileByName(name string) (WorkflowProfile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileIntake:
		return IntakeProfile(), nil
	case ProfileFulfillment:
		return FulfillmentProfile(), nil
	default:
		return WorkflowProfile{}, errs.NewValueIsInvalidErrorWithCause(
			"workflow profile", fmt.Errorf("unknown profile %q", name))
	}
}

// Validate checks the profile values that come from configuration.
func (p WorkflowProfile) Validate() error {
	if p.StaleAfter <= 0 {
		return errs.NewValueIsOutOfRangeError("stale after", p.StaleAfter, "1ns", "unbounded")
	}
	if p.History.Window < 0 {
		return errs.NewValueIsOutOfRangeError("history window", p.History.Window, 0, "unbounded")
	}
	if p.History.Cap < 0 {
		return errs.NewValueIsOutOfRangeError("history cap", p.History.Cap, 0, "unbounded")
	}
	return nil
}
