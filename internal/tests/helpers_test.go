package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"drivelog/internal/app"
	"drivelog/internal/config"
	"drivelog/internal/handler"
	"drivelog/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testEnv wires the full router over in-memory repositories.
type testEnv struct {
	router   *gin.Engine
	trips    *MockTripRepository
	expenses *MockExpenseRepository
	profiles *MockProfileRepository
	pinger   *MockPinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		trips:    NewMockTripRepository(),
		expenses: NewMockExpenseRepository(),
		profiles: NewMockProfileRepository(),
		pinger:   &MockPinger{},
	}

	normalizer := service.NewNormalizer(service.NumberPolicyLenient, "dad",
		service.WithClock(func() time.Time { return fixedNow }))
	tripService := service.NewTripService(env.trips, normalizer, 100)
	expenseService := service.NewExpenseService(env.expenses, normalizer, 100)
	profileService := service.NewProfileService(env.profiles, normalizer)
	summaryService := service.NewSummaryService(tripService, expenseService, normalizer)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env.router = app.NewRouter(app.RouterDeps{
		TripHandler:    handler.NewTripHandler(tripService),
		ExpenseHandler: handler.NewExpenseHandler(expenseService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		ReportHandler:  handler.NewReportHandler(summaryService, tripService, expenseService),
		HealthHandler:  handler.NewHealthHandler(env.pinger, "test"),
		Logger:         logger,
		CORS:           config.CORSConfig{},
	})
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("Expected status %d, got %d: %s", code, w.Code, w.Body.String())
	}
}

