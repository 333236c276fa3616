package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/events"
)

const webhookTimeout = 5 * time.Second

// NotificationService logs committed staff and lifecycle events and forwards
// them to an optional webhook.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffCreated, n.handleStaffCreated)
	n.dispatcher.Subscribe(events.EventStaffUpdated, n.handleStaffUpdated)
	n.dispatcher.Subscribe(events.EventEmployeeHired, n.handleLifecycle)
	n.dispatcher.Subscribe(events.EventEmployeeTerminated, n.handleLifecycle)
	n.dispatcher.Subscribe(events.EventEmployeeRehired, n.handleLifecycle)
}

// WebhookEvents lists the event types that are forwarded to the webhook.
func (n *NotificationService) WebhookEvents() []events.EventType {
	return []events.EventType{
		events.EventStaffCreated,
		events.EventEmployeeHired,
		events.EventEmployeeTerminated,
		events.EventEmployeeRehired,
	}
}

func (n *NotificationService) handleStaffCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffCreated", zap.Int("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStaffUpdated(ctx context.Context, event events.Event) error {
	n.logger.Debug("StaffUpdated", zap.Int("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleLifecycle(ctx context.Context, event events.Event) error {
	n.logger.Info("EmployeeLifecycle",
		zap.String("event_type", string(event.Type)),
		zap.Int("employee_id", event.EmployeeID),
		zap.Any("payload", event.Payload))
	return nil
}

// Deliver posts the event as JSON to the webhook. It is a no-op without a
// webhook URL.
func (n *NotificationService) Deliver(ctx context.Context, event events.Event) error {
	url := strings.TrimSpace(n.cfg.WebhookURL)
	if url == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.Post(url).JSON(event).Timeout(webhookTimeout)
	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("webhook %s: %w", event.Type, errs[0])
	}
	if status >= fiber.StatusBadRequest {
		return fmt.Errorf("webhook %s: unexpected status %d", event.Type, status)
	}
	n.logger.Debug("webhook delivered",
		zap.String("event_type", string(event.Type)),
		zap.Int("employee_id", event.EmployeeID),
		zap.Int("status", status))
	return nil
}
