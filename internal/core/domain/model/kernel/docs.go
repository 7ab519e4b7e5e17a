// Package kernel provides value objects shared across the order desk domain.
//
// The package includes:
//   - OrderID: the human-facing order identifier in the P#### format
//
// Value objects here are immutable and safe for concurrent use.
package kernel
