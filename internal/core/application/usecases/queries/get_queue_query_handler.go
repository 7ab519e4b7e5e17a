package queries

import (
	"context"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/domain/services"
)

// GetQueueQueryHandler resolves one queue against a fresh snapshot.
type GetQueueQueryHandler struct {
	reader     OrderReader
	classifier services.Classifier
	clock      clockwork.Clock
}

// NewGetQueueQueryHandler creates a handler reading snapshots from reader.
func NewGetQueueQueryHandler(reader OrderReader, classifier services.Classifier, clock clockwork.Clock) GetQueueQueryHandler {
	return GetQueueQueryHandler{reader: reader, classifier: classifier, clock: clock}
}

// Handle returns the members of the queue in the profile's display order.
func (h GetQueueQueryHandler) Handle(ctx context.Context, query GetQueueQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.Load(ctx)
	if err != nil {
		return nil, err
	}

	members, err := h.classifier.Queue(snapshot.Orders, query.Request(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	return newOrderViews(members), nil
}
