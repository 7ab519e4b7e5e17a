package services

import (
	"orderdesk/internal/core/domain/model/kernel"
)

// NextOrderID returns P + the zero-padded successor of the largest P####
// sequence among ids. Identifiers that do not match P#### are ignored;
// with none matching the result is P0001.
func NextOrderID(ids []kernel.OrderID) kernel.OrderID {
	highest := 0
	for _, id := range ids {
		if seq, ok := id.Sequence(); ok && seq > highest {
			highest = seq
		}
	}
	next, _ := kernel.NewOrderID(highest + 1)
	return next
}
