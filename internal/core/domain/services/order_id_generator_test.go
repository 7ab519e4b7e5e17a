package services_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderID(t *testing.T) {
	parse := func(values ...string) []kernel.OrderID {
		out := make([]kernel.OrderID, 0, len(values))
		for _, v := range values {
			id, err := kernel.OrderIDFromString(v)
			if err == nil {
				out = append(out, id)
			}
		}
		return out
	}

	tests := []struct {
		name string
		ids  []kernel.OrderID
		want string
	}{
		{"no orders", nil, "P0001"},
		{"skips garbage", parse("P0001", "P0003", "P0099", "garbage"), "P0100"},
		{"only garbage", parse("X12", "P-7", "p0004"), "P0001"},
		{"past four digits", parse("P9999"), "P10000"},
		{"unordered input", parse("P0042", "P0007"), "P0043"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NextOrderID(tt.ids).String())
		})
	}
}
