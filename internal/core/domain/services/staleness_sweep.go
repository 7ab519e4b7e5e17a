package services

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// StaleChange is one order moved to Delayed by a sweep. Order is a clone
// carrying the new state; the loaded order is left untouched.
type StaleChange struct {
	Order  *order.Order
	Fields []order.Field
}

// StalenessSweep finds InProcess orders whose processing started more than
// Threshold ago.
type StalenessSweep struct {
	Threshold time.Duration
}

// NewStalenessSweep creates a sweep with the profile threshold.
func NewStalenessSweep(threshold time.Duration) StalenessSweep {
	return StalenessSweep{Threshold: threshold}
}

// Plan returns the Delayed transitions to apply at now. The caller persists
// all of them as one batch. Running Plan again on the result yields nothing.
func (s StalenessSweep) Plan(orders []*order.Order, now time.Time) []StaleChange {
	var changes []StaleChange
	for _, o := range orders {
		if !o.IsStale(now, s.Threshold) {
			continue
		}
		c := o.Clone()
		fields, err := c.MarkDelayed(now)
		if err != nil || len(fields) == 0 {
			continue
		}
		changes = append(changes, StaleChange{Order: c, Fields: fields})
	}
	return changes
}
