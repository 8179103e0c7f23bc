// Package client is a typed Go client for the stillmind schedule API.
//
// It deliberately fixes the two web-client defects: Create returns only
// the server-confirmed record (no optimistic duplicate), and every
// failure comes back as a typed error instead of being swallowed.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Schedule is a schedule record as returned by the API.
type Schedule struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	DayOfWeek       []string `json:"dayOfWeek"`
	Time            string   `json:"time"`
	Duration        float64  `json:"duration"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	VideoID         string   `json:"videoId,omitempty"`
	DaysLabel       string   `json:"daysLabel"`
	DisplayTime     string   `json:"displayTime"`
}

// NewSchedule is the body for Create and the payload part of Update.
type NewSchedule struct {
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	DayOfWeek       []string `json:"dayOfWeek"`
	Time            string   `json:"time"`
	Duration        float64  `json:"duration"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	VideoID         string   `json:"videoId,omitempty"`
}

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d (code %d): %s: %s", e.StatusCode, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's unified response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details string          `json:"details"`
}

// Client calls the schedule API.
type Client struct {
	http *resty.Client
}

// New creates a Client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// ListSchedules fetches every schedule owned by userID.
func (c *Client) ListSchedules(ctx context.Context, userID string) ([]Schedule, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		Get("/api/v1/schedules")
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	var schedules []Schedule
	if err := decode(resp, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// CreateSchedule submits a new schedule and returns the stored record,
// including its server-assigned id.
func (c *Client) CreateSchedule(ctx context.Context, payload *NewSchedule) (*Schedule, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/api/v1/schedules")
	if err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	var schedule Schedule
	if err := decode(resp, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateSchedule replaces the schedule identified by id.
func (c *Client) UpdateSchedule(ctx context.Context, id string, payload *NewSchedule) (*Schedule, error) {
	body := struct {
		ID string `json:"id"`
		NewSchedule
	}{ID: id, NewSchedule: *payload}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put("/api/v1/schedules")
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	var schedule Schedule
	if err := decode(resp, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// DeleteSchedule removes the schedule identified by id.
func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		Delete("/api/v1/schedules")
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return decode(resp, nil)
}

// decode unwraps the envelope, turning non-2xx replies into *APIError.
func decode(resp *resty.Response, dest interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)
	}

	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Code:       env.Code,
			Message:    env.Message,
			Details:    env.Details,
		}
	}

	if dest == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
