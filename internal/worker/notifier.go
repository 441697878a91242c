package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// NotificationSource exposes the subset of application functionality required
// by the dispatcher. Leased notifications that never get confirmed through
// MarkNotificationPublished are offered again on a later poll.
type NotificationSource interface {
	NotificationsForPublishing(ctx context.Context, limit int) ([]model.Notification, error)
	MarkNotificationPublished(ctx context.Context, notificationID int64) error
}

// EventSink receives claimed notifications, typically an AMQP publisher.
type EventSink interface {
	Publish(ctx context.Context, notification *model.Notification) error
}

// Notifier drains the notification outbox and hands each entry to the event
// sink, fanning work out across a fixed worker pool.
type Notifier struct {
	source       NotificationSource
	sink         EventSink
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs the outbox dispatcher worker pool.
func NewNotifier(source NotificationSource, sink EventSink, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Notifier{
		source:       source,
		sink:         sink,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background processing.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}

	n.wg.Add(1)
	go n.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *Notifier) dispatch(ctx context.Context) {
	defer n.wg.Done()
	defer close(n.jobs)
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.fetchAndDispatch(ctx)
		}
	}
}

func (n *Notifier) fetchAndDispatch(ctx context.Context) {
	batch, err := n.source.NotificationsForPublishing(ctx, n.batchSize)
	if err != nil {
		n.logger.Error("fetch notifications for publishing failed", slog.String("error", err.Error()))
		return
	}
	for _, notification := range batch {
		select {
		case <-ctx.Done():
			return
		case n.jobs <- notification:
		}
	}
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-n.jobs:
			if !ok {
				return
			}
			if err := n.sink.Publish(ctx, &notification); err != nil {
				n.logger.Error("publish notification failed",
					slog.Int64("notification_id", notification.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			if err := n.source.MarkNotificationPublished(ctx, notification.ID); err != nil {
				n.logger.Error("mark notification published failed",
					slog.Int64("notification_id", notification.ID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
