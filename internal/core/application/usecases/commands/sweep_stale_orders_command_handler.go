package commands

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/domain/services"
)

// SweepStaleOrdersCommandHandler runs the staleness sweep and persists all
// transitions as one batch.
//
// Handle returns the number of orders moved to Delayed. When it is non-zero
// any snapshot loaded before the call is stale and queues must be rebuilt
// from a new load.
//
// Example:
//
//	handler := NewSweepStaleOrdersCommandHandler(repo, services.NewStalenessSweep(time.Hour), clock, logger)
//	delayed, err := handler.Handle(ctx, NewSweepStaleOrdersCommand())
//	if err != nil {
//	    return err
//	}
//	if delayed > 0 {
//	    // reload before rendering queues
//	}
type SweepStaleOrdersCommandHandler struct {
	repo   OrderRepository
	sweep  services.StalenessSweep
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewSweepStaleOrdersCommandHandler creates a handler applying sweep at
// clock.Now().
func NewSweepStaleOrdersCommandHandler(
	repo OrderRepository,
	sweep services.StalenessSweep,
	clock clockwork.Clock,
	logger *slog.Logger,
) SweepStaleOrdersCommandHandler {
	return SweepStaleOrdersCommandHandler{
		repo:   repo,
		sweep:  sweep,
		clock:  clock,
		logger: logger.With("component", "sweep_stale_orders"),
	}
}

// Handle marks every overdue InProcess order Delayed in one batch write.
// A failed batch applies nothing and reports zero orders.
func (h SweepStaleOrdersCommandHandler) Handle(ctx context.Context, cmd SweepStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	snapshot, err := h.repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	planned := h.sweep.Plan(snapshot.Orders, h.clock.Now())
	if len(planned) == 0 {
		return 0, nil
	}

	changes := make([]records.Change, 0, len(planned))
	for _, p := range planned {
		changes = append(changes, records.Change{Order: p.Order, Fields: p.Fields})
	}

	if err = h.repo.SaveAll(ctx, snapshot.Handle, changes); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "stale orders delayed", "count", len(changes), "threshold", h.sweep.Threshold)
	return len(changes), nil
}
