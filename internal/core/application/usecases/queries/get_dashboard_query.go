package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery builds every queue of the dashboard from one snapshot.
type GetDashboardQuery struct {
	shipmentType order.ShipmentType

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery narrows every queue to shipmentType unless it is
// ShipmentUnknown.
func NewGetDashboardQuery(shipmentType order.ShipmentType) GetDashboardQuery {
	return GetDashboardQuery{shipmentType: shipmentType, guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) ShipmentType() order.ShipmentType {
	return q.shipmentType
}

// QueueView is one queue with its members.
type QueueView struct {
	ID     string      `json:"id"`
	Count  int         `json:"count"`
	Orders []OrderView `json:"orders"`
}

// DateGroupView is one delivery day inside a Local shift.
type DateGroupView struct {
	Date   *time.Time  `json:"date,omitempty"`
	Orders []OrderView `json:"orders"`
}

// ShiftView is a Local shift split by delivery day.
type ShiftView struct {
	Shift  string          `json:"shift"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Groups []DateGroupView `json:"groups"`
}

// GetDashboardQueryResponse is the full dashboard.
type GetDashboardQueryResponse struct {
	Profile         string      `json:"profile"`
	GeneratedAt     time.Time   `json:"generatedAt"`
	Queues          []QueueView `json:"queues"`
	LocalShifts     []ShiftView `json:"localShifts"`
	AssigneeOptions []string    `json:"assigneeOptions"`
	CurrentWeek     []time.Time `json:"currentWeek"`
	NextWeek        []time.Time `json:"nextWeek"`
}
