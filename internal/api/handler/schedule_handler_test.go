package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/service"
)

// stubScheduleService lets each test script the service layer.
type stubScheduleService struct {
	listFn   func(ctx context.Context, userID string) ([]dto.ScheduleResponse, error)
	createFn func(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	updateFn func(ctx context.Context, id string, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubScheduleService) List(ctx context.Context, userID string) ([]dto.ScheduleResponse, error) {
	return s.listFn(ctx, userID)
}

func (s *stubScheduleService) Create(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	return s.createFn(ctx, payload)
}

func (s *stubScheduleService) Update(ctx context.Context, id string, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	return s.updateFn(ctx, id, payload)
}

func (s *stubScheduleService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func scheduleRouter(svc service.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(svc)
	r := gin.New()
	r.GET("/api/v1/schedules", h.ListSchedules)
	r.POST("/api/v1/schedules", h.CreateSchedule)
	r.PUT("/api/v1/schedules", h.UpdateSchedule)
	r.DELETE("/api/v1/schedules", h.DeleteSchedule)
	return r
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details string          `json:"details"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response not an envelope: %v\n%s", err, w.Body.String())
	}
	return w, env
}

func TestListSchedules(t *testing.T) {
	svc := &stubScheduleService{
		listFn: func(_ context.Context, userID string) ([]dto.ScheduleResponse, error) {
			if userID == "" {
				return nil, service.ErrUserIDRequired
			}
			return []dto.ScheduleResponse{{ID: "sched-001", UserID: userID, Title: "Morning Meditation"}}, nil
		},
	}
	r := scheduleRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/schedules?userId=user-1", "")
	if w.Code != http.StatusOK || env.Code != 0 {
		t.Fatalf("status %d, code %d", w.Code, env.Code)
	}
	var list []dto.ScheduleResponse
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(list) != 1 || list[0].ID != "sched-001" {
		t.Errorf("list = %+v", list)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/schedules", "")
	if w.Code != http.StatusBadRequest || env.Code != 11001 {
		t.Errorf("missing userId: status %d, code %d", w.Code, env.Code)
	}
	if env.Message != "User ID is required" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateSchedule(t *testing.T) {
	svc := &stubScheduleService{
		createFn: func(_ context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
			return &dto.ScheduleResponse{
				ID:              "sched-001",
				UserID:          payload.UserID,
				Title:           payload.Title,
				DayOfWeek:       payload.DayOfWeek,
				Time:            payload.Time,
				Duration:        *payload.Duration,
				ReminderEnabled: *payload.ReminderEnabled,
				DaysLabel:       "Monday, Wednesday, Friday",
				DisplayTime:     "7:00 AM",
			}, nil
		},
	}
	r := scheduleRouter(svc)

	body := `{"userId":"user-1","title":"Morning Meditation","dayOfWeek":["Monday","Wednesday","Friday"],"time":"07:00","duration":15,"reminderEnabled":true}`
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/schedules", body)
	if w.Code != http.StatusCreated || env.Code != 0 {
		t.Fatalf("status %d, code %d: %s", w.Code, env.Code, w.Body.String())
	}

	var created dto.ScheduleResponse
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data: %v", err)
	}
	if created.ID != "sched-001" {
		t.Errorf("id = %q", created.ID)
	}
	// no videoId supplied, so the key must not appear at all
	if strings.Contains(string(env.Data), "videoId") {
		t.Errorf("videoId leaked into the response: %s", env.Data)
	}
}

func TestCreateSchedule_ValidationErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing fields", service.ErrMissingFields, 11003, "Missing required fields"},
		{"bad day", service.ErrInvalidDayOfWeek, 11004, "Invalid dayOfWeek values"},
		{"bad time", service.ErrInvalidTimeFormat, 11005, "Time must be in HH:MM format"},
		{"bad duration", service.ErrInvalidDuration, 11006, "Duration must be a positive number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubScheduleService{
				createFn: func(context.Context, *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
					return nil, tc.err
				},
			}
			r := scheduleRouter(svc)

			w, env := doJSON(t, r, http.MethodPost, "/api/v1/schedules", `{"userId":"user-1"}`)
			if w.Code != http.StatusBadRequest || env.Code != tc.wantCode {
				t.Errorf("status %d, code %d", w.Code, env.Code)
			}
			if env.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tc.wantMsg)
			}
		})
	}
}

func TestCreateSchedule_MalformedJSON(t *testing.T) {
	svc := &stubScheduleService{
		createFn: func(context.Context, *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
			t.Fatal("service must not be reached on malformed JSON")
			return nil, nil
		},
	}
	r := scheduleRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/schedules", `{"userId":`)
	if w.Code != http.StatusBadRequest || env.Code != 10001 {
		t.Errorf("status %d, code %d", w.Code, env.Code)
	}
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	svc := &stubScheduleService{
		updateFn: func(_ context.Context, id string, _ *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
			return nil, service.ErrScheduleNotFound
		},
	}
	r := scheduleRouter(svc)

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/schedules", `{"id":"nope","userId":"user-1"}`)
	if w.Code != http.StatusNotFound || env.Code != 11007 {
		t.Errorf("status %d, code %d", w.Code, env.Code)
	}
	if env.Message != "Schedule not found" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestDeleteSchedule(t *testing.T) {
	svc := &stubScheduleService{
		deleteFn: func(_ context.Context, id string) error {
			switch id {
			case "":
				return service.ErrScheduleIDRequired
			case "sched-001":
				return nil
			default:
				return service.ErrScheduleNotFound
			}
		},
	}
	r := scheduleRouter(svc)

	w, env := doJSON(t, r, http.MethodDelete, "/api/v1/schedules?id=sched-001", "")
	if w.Code != http.StatusOK || env.Code != 0 {
		t.Fatalf("status %d, code %d", w.Code, env.Code)
	}
	var msg dto.DeleteScheduleResponse
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatalf("data: %v", err)
	}
	if msg.Message != "Schedule deleted successfully" {
		t.Errorf("message = %q", msg.Message)
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/v1/schedules", "")
	if w.Code != http.StatusBadRequest || env.Code != 11002 {
		t.Errorf("missing id: status %d, code %d", w.Code, env.Code)
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/v1/schedules?id=ghost", "")
	if w.Code != http.StatusNotFound || env.Code != 11007 {
		t.Errorf("unknown id: status %d, code %d", w.Code, env.Code)
	}
}

func TestScheduleStoreFailure(t *testing.T) {
	svc := &stubScheduleService{
		listFn: func(context.Context, string) ([]dto.ScheduleResponse, error) {
			return nil, errors.New("pq: connection refused")
		},
	}
	r := scheduleRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/schedules?userId=user-1", "")
	if w.Code != http.StatusInternalServerError || env.Code != 50001 {
		t.Fatalf("status %d, code %d", w.Code, env.Code)
	}
	if env.Details != "pq: connection refused" {
		t.Errorf("details = %q", env.Details)
	}
}
