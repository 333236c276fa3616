package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/events"
)

// Notifier is the part of service.NotificationService the worker drives.
type Notifier interface {
	RegisterHandlers()
	WebhookEvents() []events.EventType
	Deliver(ctx context.Context, event events.Event) error
}

// NotificationWorker delivers webhook notifications off the request path.
type NotificationWorker struct {
	notifier Notifier
	logger   *zap.Logger
	queue    chan events.Event

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// StartNotificationWorker registers the notifier's handlers, subscribes a
// queueing handler for webhook events and starts workers goroutines that
// drain the queue until Stop.
func StartNotificationWorker(ctx context.Context, notifier Notifier, dispatcher events.Dispatcher, logger *zap.Logger, workers, buffer int) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	w := &NotificationWorker{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan events.Event, buffer),
	}
	if notifier == nil {
		close(w.queue)
		w.stopped = true
		return w
	}

	notifier.RegisterHandlers()
	if dispatcher != nil {
		for _, eventType := range notifier.WebhookEvents() {
			dispatcher.Subscribe(eventType, w.enqueue)
		}
	}

	for i := 0; i < workers; i++ {
		w.wg.Add(1)
		go w.run(ctx)
	}
	return w
}

// enqueue never blocks the publisher; a full queue drops the event.
func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return nil
	}
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full, dropping event",
			zap.String("event_type", string(event.Type)),
			zap.Int("employee_id", event.EmployeeID))
	}
	return nil
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer w.wg.Done()
	for event := range w.queue {
		if err := w.notifier.Deliver(ctx, event); err != nil {
			w.logger.Warn("notification delivery failed",
				zap.String("event_type", string(event.Type)),
				zap.Int("employee_id", event.EmployeeID),
				zap.Error(err))
		}
	}
}

// Stop closes the queue and waits for queued events to be delivered.
func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		w.wg.Wait()
		return
	}
	w.stopped = true
	close(w.queue)
	w.mu.Unlock()
	w.wg.Wait()
}
