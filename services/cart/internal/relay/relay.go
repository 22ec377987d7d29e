package relay

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Skotchmaster/storefront/pkg/mykafka"
	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
)

type Store interface {
	PendingEvents(ctx context.Context, limit int) ([]models.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, msgs ...mykafka.Message) error
}

// Relay drains the outbox into kafka. A batch is marked published only after
// the whole batch was written, so delivery is at-least-once.
type Relay struct {
	Store     Store
	Publisher Publisher
	BatchSize int
	Interval  time.Duration
	Log       *slog.Logger
	Now       func() time.Time
}

const (
	DefaultBatchSize = 100
	DefaultInterval  = time.Second
)

// New falls back to the defaults for a non-positive batch size or interval.
func New(store Store, pub Publisher, batchSize int, interval time.Duration, log *slog.Logger) *Relay {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Relay{
		Store:     store,
		Publisher: pub,
		BatchSize: batchSize,
		Interval:  interval,
		Log:       log,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for ctx.Err() == nil {
				n, err := r.Flush(ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						r.Log.Warn("outbox_flush_error", "error", err)
					}
					break
				}
				// a full batch means more rows are probably waiting
				if n == 0 || n < r.BatchSize {
					break
				}
			}
		}
	}
}

// Flush relays one batch and returns how many events were published.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	evs, err := r.Store.PendingEvents(ctx, r.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(evs) == 0 {
		return 0, nil
	}

	msgs := make([]mykafka.Message, 0, len(evs))
	ids := make([]uuid.UUID, 0, len(evs))
	for _, ev := range evs {
		msgs = append(msgs, mykafka.Message{
			Topic: ev.Topic,
			Key:   ev.Key,
			Value: []byte(ev.Payload),
			Headers: map[string]string{
				"event_type": ev.Type,
				"event_id":   ev.ID.String(),
			},
		})
		ids = append(ids, ev.ID)
	}

	if err := r.Publisher.Publish(ctx, msgs...); err != nil {
		return 0, err
	}
	if err := r.Store.MarkPublished(ctx, ids, r.Now()); err != nil {
		return 0, err
	}

	r.Log.Info("outbox_flushed", "events", len(evs))
	return len(evs), nil
}
