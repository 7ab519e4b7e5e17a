package queries

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

// GetHistoryQuery lists completed orders under the workflow's history policy.
type GetHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates the query. It takes no parameters.
func NewGetHistoryQuery() GetHistoryQuery {
	return GetHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate reports a query built without its constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// GetHistoryQueryHandler returns the history queue, most recent first.
type GetHistoryQueryHandler struct {
	reader     OrderReader
	classifier services.Classifier
	clock      clockwork.Clock
}

// NewGetHistoryQueryHandler creates a handler applying the history policy
// of classifier's profile.
func NewGetHistoryQueryHandler(reader OrderReader, classifier services.Classifier, clock clockwork.Clock) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{reader: reader, classifier: classifier, clock: clock}
}

// Handle returns completed orders, most recent completion first.
func (h GetHistoryQueryHandler) Handle(ctx context.Context, query GetHistoryQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return newOrderViews(h.classifier.History(snapshot.Orders, h.clock.Now())), nil
}
