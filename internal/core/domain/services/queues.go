package services

import (
	"fmt"
	"slices"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// QueueID names a displayable queue.
type QueueID string

const (
	QueueLocal        QueueID = "local"
	QueueForeign      QueueID = "foreign"
	QueueWarranty     QueueID = "warranty"
	QueueReturn       QueueID = "return"
	QueueGuideRequest QueueID = "guide-request"

	QueueLocalMorning   QueueID = "local-morning"
	QueueLocalAfternoon QueueID = "local-afternoon"
	QueueLocalSaltillo  QueueID = "local-saltillo"
	QueueLocalWarehouse QueueID = "local-warehouse"
	QueueLocalNoShift   QueueID = "local-no-shift"

	QueueInProcess   QueueID = "in-process"
	QueueTriage      QueueID = "triage"
	QueueDueToday    QueueID = "due-today"
	QueueDueTomorrow QueueID = "due-tomorrow"
	QueueOverdue     QueueID = "overdue"
	QueueHistory     QueueID = "history"
)

var shipmentQueues = map[QueueID]order.ShipmentType{
	QueueLocal:        order.Local,
	QueueForeign:      order.Foreign,
	QueueWarranty:     order.Warranty,
	QueueReturn:       order.Return,
	QueueGuideRequest: order.GuideRequest,
}

var shiftQueues = map[QueueID]order.Shift{
	QueueLocalMorning:   order.MorningLocal,
	QueueLocalAfternoon: order.AfternoonLocal,
	QueueLocalSaltillo:  order.Saltillo,
	QueueLocalWarehouse: order.Warehouse,
	QueueLocalNoShift:   order.NotApplicable,
}

// Queues lists every queue in dashboard order.
func Queues() []QueueID {
	return []QueueID{
		QueueDueToday, QueueDueTomorrow, QueueOverdue, QueueInProcess, QueueTriage,
		QueueLocal, QueueLocalMorning, QueueLocalAfternoon, QueueLocalSaltillo, QueueLocalWarehouse, QueueLocalNoShift,
		QueueForeign, QueueWarranty, QueueReturn, QueueGuideRequest,
		QueueHistory,
	}
}

// ShiftQueue returns the queue of a Local shift.
func ShiftQueue(s order.Shift) QueueID {
	for id, shift := range shiftQueues {
		if shift == s {
			return id
		}
	}
	return QueueLocalNoShift
}

// ShipmentQueue returns the queue of a shipment type.
func ShipmentQueue(t order.ShipmentType) (QueueID, bool) {
	for id, st := range shipmentQueues {
		if st == t {
			return id, true
		}
	}
	return "", false
}

// ParseQueueID checks that s names a known queue.
func ParseQueueID(s string) (QueueID, error) {
	id := QueueID(s)
	if !slices.Contains(Queues(), id) {
		return "", errs.NewObjectNotFoundError("queue", s)
	}
	return id, nil
}

// QueueRequest selects a queue and optionally narrows it to one shipment type.
type QueueRequest struct {
	ID           QueueID
	ShipmentType order.ShipmentType
}

// DateGroup is one delivery day of a shift queue. Date is nil for the
// undated group.
type DateGroup struct {
	Date   *time.Time
	Orders []*order.Order
}

// Classifier partitions and orders orders according to a workflow profile.
// Calendar buckets are computed in loc.
type Classifier struct {
	profile WorkflowProfile
	loc     *time.Location
}

// NewClassifier creates a classifier. A nil location means UTC.
func NewClassifier(profile WorkflowProfile, loc *time.Location) Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return Classifier{profile: profile, loc: loc}
}

// Profile returns the workflow profile in use.
func (c Classifier) Profile() WorkflowProfile {
	return c.profile
}

// Location is the zone calendar buckets are computed in.
func (c Classifier) Location() *time.Location {
	return c.loc
}

// Predicate returns the membership rule of a queue at now. The history queue
// has no predicate of its own; use History.
//
// Rules:
//   - Shipment, shift, date-bucket and triage queues only hold active orders
//   - The in-process queue holds every InProcess order whatever its type
//   - Triage is the residual "active and not InProcess" bucket and overlaps
//     the shipment queues
func (c Classifier) Predicate(id QueueID, now time.Time) (Predicate, error) {
	today := now.In(c.loc)
	tomorrow := today.AddDate(0, 0, 1)

	if t, ok := shipmentQueues[id]; ok {
		return All(Active(), WithShipmentType(t)), nil
	}
	if s, ok := shiftQueues[id]; ok {
		return All(Active(), WithShift(s)), nil
	}

	switch id {
	case QueueInProcess:
		return InStatus(order.InProcess), nil
	case QueueTriage:
		return All(Active(), Not(InStatus(order.InProcess))), nil
	case QueueDueToday:
		return All(Active(), DeliveredOn(today)), nil
	case QueueDueTomorrow:
		return All(Active(), DeliveredOn(tomorrow)), nil
	case QueueOverdue:
		return All(Active(), DueBefore(today)), nil
	default:
		return nil, errs.NewObjectNotFoundErrorWithCause("queue", string(id),
			fmt.Errorf("queue %q has no membership rule", id))
	}
}

// Queue returns the ordered members of the requested queue. The input slice
// is not modified.
func (c Classifier) Queue(orders []*order.Order, req QueueRequest, now time.Time) ([]*order.Order, error) {
	if req.ShipmentType != order.ShipmentUnknown {
		orders = Filter(orders, WithShipmentType(req.ShipmentType))
	}

	if req.ID == QueueHistory {
		return c.History(orders, now), nil
	}

	p, err := c.Predicate(req.ID, now)
	if err != nil {
		return nil, err
	}
	return c.profile.Ordering.Sort(Filter(orders, p)), nil
}

// History returns the history queue under the profile's policy.
func (c Classifier) History(orders []*order.Order, now time.Time) []*order.Order {
	return c.profile.History.Apply(orders, now)
}

// Counts returns the size of every queue at now.
func (c Classifier) Counts(orders []*order.Order, now time.Time) map[QueueID]int {
	counts := make(map[QueueID]int, len(Queues()))
	for _, id := range Queues() {
		if id == QueueHistory {
			counts[id] = len(c.History(orders, now))
			continue
		}
		p, err := c.Predicate(id, now)
		if err != nil {
			continue
		}
		counts[id] = len(Filter(orders, p))
	}
	return counts
}

// ShiftDateGroups splits the ordered queue of one Local shift into one group
// per distinct delivery day, ascending, with the undated group last.
func (c Classifier) ShiftDateGroups(orders []*order.Order, shift order.Shift) []DateGroup {
	members := c.profile.Ordering.Sort(Filter(orders, All(Active(), WithShift(shift))))

	byDay := make(map[time.Time][]*order.Order)
	var days []time.Time
	var undated []*order.Order
	for _, o := range members {
		d := o.DeliveryDate()
		if d == nil {
			undated = append(undated, o)
			continue
		}
		key := civilDate(*d)
		if _, seen := byDay[key]; !seen {
			days = append(days, key)
		}
		byDay[key] = append(byDay[key], o)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	groups := make([]DateGroup, 0, len(days)+1)
	for _, day := range days {
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.loc)
		groups = append(groups, DateGroup{Date: &date, Orders: byDay[day]})
	}
	if len(undated) > 0 {
		groups = append(groups, DateGroup{Orders: undated})
	}
	return groups
}
