// Package services holds the order engine that does not belong to a single
// Order: queue classification, display ordering, the history policy, the
// staleness sweep and identifier generation.
//
// The package includes:
//   - Classifier: resolves a queue definition against the loaded orders
//   - Ordering: the shipment-priority and status-priority display orders
//   - WorkflowProfile: the state model, ordering and history policy of one dashboard variant
//   - StalenessSweep: detects InProcess orders that ran past their threshold
//   - NextOrderID: the P#### identifier generator
//
// Everything here is a pure function of (orders, now). Nothing touches a store.
package services
