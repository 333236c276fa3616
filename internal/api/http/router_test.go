package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/api/http/handlers"
	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/observability"
	"github.com/spec-kit/staff-service/internal/repository/memory"
	"github.com/spec-kit/staff-service/internal/service"
	"github.com/spec-kit/staff-service/internal/validation"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

var now = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code       string                `json:"code"`
		Message    string                `json:"message"`
		Violations []apperrors.Violation `json:"violations"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	clock := func() time.Time { return now }
	store := memory.NewStore(memory.WithClock(clock))
	dispatcher := events.NewInMemoryDispatcher()
	policy := config.DefaultPolicy()
	metrics := observability.NewMetrics()
	logger := zap.NewNop()

	staffService := service.NewStaffService(service.StaffDependencies{
		Store:      store,
		Policy:     policy,
		Dispatcher: dispatcher,
		Logger:     logger,
		Clock:      clock,
	})
	lifecycleService := service.NewLifecycleService(service.LifecycleDependencies{
		Store:      store,
		Policy:     policy,
		Dispatcher: dispatcher,
		Logger:     logger,
		Clock:      clock,
	})

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:    handlers.NewHealthHandler("staff-service", "test", metrics, map[string]handlers.Pinger{"store": store}),
		Staff:     handlers.NewStaffHandler(staffService),
		Lifecycle: handlers.NewLifecycleHandler(lifecycleService),
	})
	return app, metrics
}

func do[T any](t *testing.T, app *fiber.App, method, path string, body any) (int, envelope[T]) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func hasViolation(violations []apperrors.Violation, rule string) bool {
	for _, v := range violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

func createRequest(login string) dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		Person: dto.PersonRequest{Title: "Ms.", FirstName: "Ana", LastName: "Trujillo"},
		Employment: dto.EmploymentRequest{
			NationalIDNumber: "NID-" + login,
			LoginID:          `adventure-works\` + login,
			JobTitle:         "Buyer",
			BirthDate:        "1990-06-15",
			MaritalStatus:    "S",
			Gender:           "F",
			HireDate:         "2024-01-15",
		},
		Phone:         dto.PhoneRequest{PhoneNumber: "425-555-0100", PhoneNumberTypeID: 1},
		Email:         dto.EmailRequest{Address: login + "@adventure-works.com"},
		Address:       dto.AddressRequest{AddressLine1: "1 Microsoft Way", City: "Redmond", StateProvinceID: 79, PostalCode: "98052"},
		AddressTypeID: 2,
	}
}

func createStaff(t *testing.T, app *fiber.App, login string) int {
	t.Helper()
	status, out := do[struct {
		ID int `json:"id"`
	}](t, app, fiber.MethodPost, "/staff", createRequest(login))
	if status != fiber.StatusCreated || out.Data.ID == 0 {
		t.Fatalf("create: status=%d body=%+v", status, out)
	}
	return out.Data.ID
}

func TestStaffEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	id := createStaff(t, app, "ana0")

	status, got := do[dto.StaffResponse](t, app, fiber.MethodGet, "/staff/"+strconv.Itoa(id), nil)
	if status != fiber.StatusOK {
		t.Fatalf("get: status=%d", status)
	}
	if got.Data.Person.FullName != "Ms. Ana Trujillo" || got.Data.Employment.HireDate != "2024-01-15" {
		t.Fatalf("unexpected staff: %+v", got.Data)
	}
	if len(got.Data.Addresses) != 1 || got.Data.Addresses[0].AddressTypeID != 2 {
		t.Fatalf("unexpected addresses: %+v", got.Data.Addresses)
	}

	title := "Senior Buyer"
	status, got = do[dto.StaffResponse](t, app, fiber.MethodPut, "/staff/"+strconv.Itoa(id), dto.UpdateStaffRequest{
		Employment: dto.EmploymentPatchRequest{JobTitle: &title},
	})
	if status != fiber.StatusOK || got.Data.Employment.JobTitle != title {
		t.Fatalf("update: status=%d body=%+v", status, got)
	}

	city := "Bothell"
	status, addr := do[dto.AddressResponse](t, app, fiber.MethodPut, "/staff/"+strconv.Itoa(id)+"/address", dto.AddressPatchRequest{City: &city})
	if status != fiber.StatusOK || addr.Data.City != city {
		t.Fatalf("update address: status=%d body=%+v", status, addr)
	}
}

func TestStaffEndpointErrors(t *testing.T) {
	app, metrics := newTestApp(t)

	t.Run("malformed body", func(t *testing.T) {
		status, out := do[any](t, app, fiber.MethodPost, "/staff", "{not json")
		if status != fiber.StatusBadRequest || out.Error == nil || out.Error.Code != apperrors.CodeValidationFailed {
			t.Fatalf("status=%d body=%+v", status, out)
		}
		if len(out.Error.Violations) != 1 || out.Error.Violations[0].Rule != validation.RuleMalformedRequest {
			t.Fatalf("unexpected violations %+v", out.Error.Violations)
		}
	})

	t.Run("bad dates", func(t *testing.T) {
		req := createRequest("dates")
		req.Employment.BirthDate = "15/06/1990"
		req.Employment.HireDate = "yesterday"
		status, out := do[any](t, app, fiber.MethodPost, "/staff", req)
		if status != fiber.StatusBadRequest || out.Error == nil || len(out.Error.Violations) != 2 {
			t.Fatalf("status=%d body=%+v", status, out)
		}
		if out.Error.Violations[0].Field != "employment.birthDate" {
			t.Fatalf("unexpected field %q", out.Error.Violations[0].Field)
		}
	})

	t.Run("business rule", func(t *testing.T) {
		req := createRequest("male")
		req.Employment.Gender = "Male"
		status, out := do[any](t, app, fiber.MethodPost, "/staff", req)
		if status != fiber.StatusBadRequest || out.Error == nil {
			t.Fatalf("status=%d body=%+v", status, out)
		}
		if !hasViolation(out.Error.Violations, validation.RuleGender) {
			t.Fatalf("unexpected violations %+v", out.Error.Violations)
		}
	})

	t.Run("unknown staff", func(t *testing.T) {
		status, out := do[any](t, app, fiber.MethodGet, "/staff/404", nil)
		if status != fiber.StatusNotFound || out.Error == nil || out.Error.Code != apperrors.CodeNotFound {
			t.Fatalf("status=%d body=%+v", status, out)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		status, _ := do[any](t, app, fiber.MethodGet, "/staff/abc", nil)
		if status != fiber.StatusBadRequest {
			t.Fatalf("status=%d", status)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		status, out := do[any](t, app, fiber.MethodGet, "/nowhere", nil)
		if status != fiber.StatusNotFound || out.Error == nil {
			t.Fatalf("status=%d body=%+v", status, out)
		}
	})

	if snap := metrics.Snapshot(); len(snap.Errors) == 0 {
		t.Fatal("expected error counters to be recorded")
	}
}

func TestLifecycleEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	id := createStaff(t, app, "life0")
	base := "/employees/" + strconv.Itoa(id)

	status, st := do[dto.LifecycleStatusResponse](t, app, fiber.MethodGet, base+"/lifecycle", nil)
	if status != fiber.StatusOK || st.Data.EmploymentStatus != "Prospective" || st.Data.HireDate != nil {
		t.Fatalf("prospective: status=%d body=%+v", status, st.Data)
	}

	status, st = do[dto.LifecycleStatusResponse](t, app, fiber.MethodPost, base+"/hire", dto.HireRequest{
		DepartmentID:  5,
		ShiftID:       1,
		HireDate:      "2024-03-01",
		PayRate:       decimal.RequireFromString("25.00"),
		PayFrequency:  "BiWeekly",
		VacationHours: 40,
		SickHours:     24,
	})
	if status != fiber.StatusOK || st.Data.EmploymentStatus != "Active" {
		t.Fatalf("hire: status=%d body=%+v", status, st)
	}
	if st.Data.CurrentDepartment == nil || st.Data.CurrentDepartment.Name != "Purchasing" {
		t.Fatalf("unexpected department %+v", st.Data.CurrentDepartment)
	}
	if st.Data.CurrentPay == nil || st.Data.CurrentPay.PayFrequency != "BiWeekly" {
		t.Fatalf("unexpected pay %+v", st.Data.CurrentPay)
	}

	status, term := do[dto.TerminationResponse](t, app, fiber.MethodPost, base+"/terminate", dto.TerminateRequest{
		TerminationDate: "2024-03-01",
		Reason:          "Reorganisation",
		TerminationType: "Layoff",
	})
	if status != fiber.StatusOK || !term.Data.PayoutApplied {
		t.Fatalf("terminate: status=%d body=%+v", status, term)
	}
	if !term.Data.PayoutAmount.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expected payout 1000, got %s", term.Data.PayoutAmount)
	}

	status, out := do[any](t, app, fiber.MethodPost, base+"/rehire", dto.RehireRequest{
		DepartmentID: 7,
		ShiftID:      2,
		RehireDate:   "2024-03-01",
		PayRate:      decimal.RequireFromString("27.50"),
		PayFrequency: "Monthly",
	})
	if status != fiber.StatusBadRequest || out.Error == nil {
		t.Fatalf("rehire inside cooling-off: status=%d body=%+v", status, out)
	}
	if !hasViolation(out.Error.Violations, validation.RuleRehireCoolingOff) {
		t.Fatalf("expected cooling-off violation, got %+v", out.Error.Violations)
	}

	status, hist := do[[]dto.LifecycleHistoryResponse](t, app, fiber.MethodGet, base+"/history", nil)
	if status != fiber.StatusOK || len(hist.Data) != 2 {
		t.Fatalf("history: status=%d body=%+v", status, hist)
	}
	if hist.Data[1].Transition != "TERMINATE" || hist.Data[1].Details["reason"] != "Reorganisation" {
		t.Fatalf("unexpected history %+v", hist.Data[1])
	}
}

func TestLifecycleEndpointFormats(t *testing.T) {
	app, _ := newTestApp(t)
	id := createStaff(t, app, "fmt0")

	status, out := do[any](t, app, fiber.MethodPost, "/employees/"+strconv.Itoa(id)+"/hire", dto.HireRequest{
		DepartmentID: 5,
		ShiftID:      1,
		HireDate:     "2024-03-01",
		PayRate:      decimal.RequireFromString("25.00"),
		PayFrequency: "Weekly",
	})
	if status != fiber.StatusBadRequest || out.Error == nil || out.Error.Violations[0].Field != "payFrequency" {
		t.Fatalf("status=%d body=%+v", status, out)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	status, live := do[any](t, app, fiber.MethodGet, "/health/live", nil)
	if status != fiber.StatusOK {
		t.Fatalf("live: status=%d body=%+v", status, live)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/health/ready", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("ready: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("ready: status=%d", resp.StatusCode)
	}

	status, metrics := do[observability.Snapshot](t, app, fiber.MethodGet, "/metrics", nil)
	if status != fiber.StatusOK || len(metrics.Data.Requests) == 0 {
		t.Fatalf("metrics: status=%d body=%+v", status, metrics)
	}
}
