package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/staff/:id", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/staff/:id", "GET", 200, 30*time.Millisecond)
	m.RecordError("/staff", "POST", "VALIDATION_FAILED")

	snap := m.Snapshot()
	if len(snap.Requests) != 1 || snap.Requests[0].Count != 2 {
		t.Fatalf("unexpected requests: %+v", snap.Requests)
	}
	if snap.Requests[0].AvgLatencyMs != 20 {
		t.Fatalf("expected avg 20ms, got %v", snap.Requests[0].AvgLatencyMs)
	}
	if len(snap.Errors) != 1 || snap.Errors[0].Key != "/staff|POST|VALIDATION_FAILED" {
		t.Fatalf("unexpected errors: %+v", snap.Errors)
	}

	var nilMetrics *Metrics
	nilMetrics.RecordRequest("/", "GET", 200, 0)
	if got := nilMetrics.Snapshot(); len(got.Requests) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestRequestLoggerRecordsRoute(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/staff/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/staff/12", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status=%d", resp.StatusCode)
	}

	snap := metrics.Snapshot()
	if len(snap.Requests) != 1 || snap.Requests[0].Key != "/staff/:id|GET|204" {
		t.Fatalf("unexpected snapshot: %+v", snap.Requests)
	}
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "loud"}, "production")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug to be disabled")
	}
}
