// Package order provides the Order aggregate of the order desk and the closed
// enumerations that classify it.
//
// The package includes:
//   - Order: the aggregate root tracked from intake to completion
//   - Status: the fulfilment state machine, with a rank table used for display order
//   - StateModel: which statuses a workflow variant may enter
//   - ShipmentType and Shift: the classification axes used to build queues
//   - Field: names the mutable attributes a mutation touched, so callers can
//     persist exactly those cells
//
// Key business rules:
//   - Pending -> InProcess -> Completed | Cancelled, with Delayed reachable only
//     from InProcess and fulfilment sub-states between InProcess and Completed
//   - Completing requires a non-empty assignee
//   - ProcessingStartedAt is set iff the status is InProcess; CompletedAt iff Completed
//   - A Completed order is read-only
//   - Shift is only meaningful for Local shipments
//
// Label strings used by the persisted layout are not known here; they live at
// the serialization boundary in the records package.
package order
