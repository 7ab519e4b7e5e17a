package queries

import (
	"context"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// GetDashboardQueryHandler classifies one snapshot into every queue, the
// per-shift date groups and the assignee options.
//
// It never writes. Callers that want stale orders shown as Delayed run the
// sweep command first.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(repo, services.NewClassifier(profile, loc), clock)
//	dashboard, err := handler.Handle(ctx, NewGetDashboardQuery(order.Local))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d queues, %d assignees\n", len(dashboard.Queues), len(dashboard.AssigneeOptions))
type GetDashboardQueryHandler struct {
	reader     OrderReader
	classifier services.Classifier
	clock      clockwork.Clock
}

// NewGetDashboardQueryHandler creates a handler reading snapshots from reader.
func NewGetDashboardQueryHandler(reader OrderReader, classifier services.Classifier, clock clockwork.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{reader: reader, classifier: classifier, clock: clock}
}

// Handle builds every queue from one snapshot so counts and lists agree.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	snapshot, err := h.reader.Load(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	now := h.clock.Now()
	loc := h.classifier.Location()
	response := GetDashboardQueryResponse{
		Profile:         h.classifier.Profile().Name,
		GeneratedAt:     now,
		AssigneeOptions: AssigneeOptions(snapshot.Orders),
	}

	for _, id := range services.Queues() {
		members, queueErr := h.classifier.Queue(snapshot.Orders, services.QueueRequest{ID: id, ShipmentType: query.ShipmentType()}, now)
		if queueErr != nil {
			return GetDashboardQueryResponse{}, queueErr
		}
		response.Queues = append(response.Queues, QueueView{
			ID:     string(id),
			Count:  len(members),
			Orders: newOrderViews(members),
		})
	}

	if query.ShipmentType() == order.ShipmentUnknown || query.ShipmentType() == order.Local {
		for _, shift := range order.Shifts() {
			groups := h.classifier.ShiftDateGroups(snapshot.Orders, shift)
			view := ShiftView{Shift: shift.String(), Label: records.ShiftLabel(shift)}
			for _, g := range groups {
				view.Count += len(g.Orders)
				view.Groups = append(view.Groups, DateGroupView{Date: g.Date, Orders: newOrderViews(g.Orders)})
			}
			response.LocalShifts = append(response.LocalShifts, view)
		}
	}

	response.CurrentWeek = services.CurrentWeek(now, loc)
	response.NextWeek = services.NextWeek(now, loc)

	return response, nil
}

// AssigneeOptions returns the distinct salespeople sorted by name, with an
// empty first entry for "unassigned".
func AssigneeOptions(orders []*order.Order) []string {
	var names []string
	for _, o := range orders {
		name := strings.TrimSpace(o.Salesperson())
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return append([]string{""}, names...)
}
