package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDates(t *testing.T) {
	friday := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	current := services.CurrentWeek(friday, time.UTC)
	require.Len(t, current, 7)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), current[0])
	assert.Equal(t, time.Monday, current[0].Weekday())
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), current[6])

	next := services.NextWeek(friday, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), next[0])

	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, current, services.CurrentWeek(sunday, time.UTC))
}
